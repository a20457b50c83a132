package menu

var wifiScanningCommands = []Descriptor{
	{
		Label:         "Scan WiFi APs",
		Command:       "scanap\n",
		DetailsHeader: "WiFi AP Scanner",
		DetailsBody: "Scans for WiFi APs:\n" +
			"- SSID names\n" +
			"- Signal levels\n" +
			"- Security type\n" +
			"- Channel info\n",
	},
	{
		Label:         "Scan WiFi Stations",
		Command:       "scansta\n",
		DetailsHeader: "Station Scanner",
		DetailsBody: "Scans for clients:\n" +
			"- MAC addresses\n" +
			"- Network SSID\n" +
			"- Signal level\n" +
			"Range: ~50-100m\n",
	},
	{
		Label:         "Scan All (AP+STA)",
		Command:       "scanall\n",
		DetailsHeader: "Scan All",
		DetailsBody:   "Combined AP/Station scan\nand display results.\n",
	},
	{
		Label:         "List APs",
		Command:       "list -a\n",
		DetailsHeader: "List Access Points",
		DetailsBody: "Shows list of APs found\n" +
			"during last scan with:\n" +
			"- Network details\n" +
			"- Channel info\n" +
			"- Security type\n",
	},
	{
		Label:         "List Stations",
		Command:       "list -s\n",
		DetailsHeader: "List Stations",
		DetailsBody: "Shows list of clients\n" +
			"found during last scan:\n" +
			"- Device MAC address\n" +
			"- Connected network\n" +
			"- Signal strength\n",
	},
	{
		Label:         "Select AP",
		Command:       "select -a",
		NeedsInput:    true,
		InputPrompt:   "AP Number",
		DetailsHeader: "Select Access Point",
		DetailsBody: "Select an AP by number\n" +
			"from the scanned list\n" +
			"for targeting with\n" +
			"other commands.\n",
	},
	{
		Label:         "Select Station",
		Command:       "select -s",
		NeedsInput:    true,
		InputPrompt:   "Station Number",
		DetailsHeader: "Select Station",
		DetailsBody:   "Target a station by number\nfrom the scan list for attacks.",
	},
	{
		Label:         "Pineapple Detect",
		Command:       "pineap\n",
		DetailsHeader: "Pineapple Detection",
		DetailsBody:   "Detects WiFi Pineapple devices\n",
	},
	{
		Label:         "Channel Congestion",
		Command:       "congestion\n",
		DetailsHeader: "Channel Congestion",
		DetailsBody:   "Display Wi-Fi channel\ncongestion chart.\n",
	},
	{
		Label:         "Scan Ports",
		Command:       "scanports",
		NeedsInput:    true,
		InputPrompt:   "local or IP [options]",
		DetailsHeader: "Port Scanner",
		DetailsBody: "Scan ports on local net\n" +
			"or specific IP.\n" +
			"Options: -C, -A, range\n" +
			"Ex: local -C\n" +
			"Ex: 192.168.1.1 80-1000",
	},
	{
		Label:         "Listen Probes (Hop)",
		Command:       "listenprobes\n",
		DetailsHeader: "Listen for Probes",
		DetailsBody:   "Listen for and log probe requests\nwhile hopping channels.",
	},
	{
		Label:         "Listen Probes (Chan)",
		Command:       "listenprobes",
		NeedsInput:    true,
		InputPrompt:   "Channel (1-165)",
		DetailsHeader: "Listen on Channel",
		DetailsBody:   "Listen for probe requests on a\nspecific channel.",
	},
	{
		Label:         "Stop Listen Probes",
		Command:       "listenprobes stop\n",
		DetailsHeader: "Stop Listening",
		DetailsBody:   "Stops the probe listener.",
	},
	{
		Label:         "Stop Scan",
		Command:       "stopscan\n",
		DetailsHeader: "Stop Scan",
		DetailsBody:   "Stops AP or Station scan.",
	},
}

var wifiCaptureCommands = []Descriptor{
	{
		Label:         "< Sniff WPS >",
		Command:       "capture -wps\n",
		Capture:       pcapCapture("wps_capture"),
		DetailsHeader: "Variable Sniff",
		DetailsBody: "Use Left/Right to change:\n" +
			"- WPS traffic\n" +
			"- Raw packets\n" +
			"- Probe requests\n" +
			"- Deauth frames\n" +
			"- Beacon frames\n" +
			"- EAPOL/Handshakes\n",
	},
}

var wifiAttackCommands = []Descriptor{
	{
		Label:         "< Beacon Spam (List) >",
		Command:       "beaconspam -l\n",
		InputPrompt:   "SSID Name",
		DetailsHeader: "Variable Beacon Spam",
		DetailsBody: "Use Left/Right to change:\n" +
			"- List mode\n" +
			"- Random names\n" +
			"- Rickroll mode\n" +
			"- Custom SSID\n" +
			"Range: ~50-100m\n",
	},
	{
		Label:         "Deauth",
		Command:       "attack -d\n",
		DetailsHeader: "Deauth Attack",
		DetailsBody: "Sends deauth frames to\n" +
			"disconnect clients from\n" +
			"selected network.\n" +
			"Range: ~50-100m\n",
	},
	{
		Label:         "EAPOL Logoff",
		Command:       "attack -e\n",
		DetailsHeader: "EAPOL Logoff Attack",
		DetailsBody:   "Sends EAPOL logoff frames to\ndisconnect clients.",
	},
	{
		Label:         "SAE Handshake Flood",
		Command:       "attack -s\n",
		DetailsHeader: "SAE Flood Attack",
		DetailsBody:   "Floods WPA3 networks with\nSAE handshakes. Select a WPA3 AP first.",
	},
	{
		Label:         "DHCP Starve Start",
		Command:       "dhcpstarve",
		NeedsInput:    true,
		InputPrompt:   "start [threads]",
		DetailsHeader: "DHCP Starve Attack",
		DetailsBody: "Exhausts DHCP server's IP pool.\n" +
			"Input: start [threads]\n" +
			"e.g., 'start' or 'start 5'",
	},
	{
		Label:         "DHCP Starve Stop",
		Command:       "dhcpstarve stop\n",
		DetailsHeader: "Stop DHCP Starve",
		DetailsBody:   "Stops the DHCP starvation attack.",
	},
	{
		Label:         "Stop Deauth/SAE/EAPOL",
		Command:       "stopdeauth\n",
		DetailsHeader: "Stop Attacks",
		DetailsBody:   "Stops Deauth, SAE Flood,\nand EAPOL Logoff attacks.",
	},
	{
		Label:         "Add SSID to Beacon List",
		Command:       "beaconadd",
		NeedsInput:    true,
		InputPrompt:   "SSID",
		DetailsHeader: "Add to Beacon List",
		DetailsBody:   "Add an SSID to the list used\nby Beacon List Spam.",
	},
	{
		Label:         "Remove SSID from Beacon List",
		Command:       "beaconremove",
		NeedsInput:    true,
		InputPrompt:   "SSID",
		DetailsHeader: "Remove from Beacon List",
		DetailsBody:   "Remove an SSID from the\nbeacon spam list.",
	},
	{
		Label:         "Clear Beacon List",
		Command:       "beaconclear\n",
		DetailsHeader: "Clear Beacon List",
		DetailsBody:   "Clears all SSIDs from the\nbeacon spam list.",
	},
	{
		Label:         "Show Beacon List",
		Command:       "beaconshow\n",
		DetailsHeader: "Show Beacon List",
		DetailsBody:   "Displays all SSIDs in the\nbeacon spam list.",
	},
	{
		Label:         "Start Beacon List Spam",
		Command:       "beaconspamlist\n",
		DetailsHeader: "Beacon List Spam",
		DetailsBody:   "Starts beacon spam using the\ncustom list of SSIDs.",
	},
	{
		Label:         "Stop Beacon Spam",
		Command:       "stopspam\n",
		DetailsHeader: "Stop Beacon Spam",
		DetailsBody:   "Stops any active beacon spam.",
	},
}

var wifiNetworkCommands = []Descriptor{
	{
		Label:         "Evil Portal",
		Command:       "startportal",
		NeedsInput:    true,
		InputPrompt:   "<filepath> <SSID> <PSK (leave blank for open)>",
		DetailsHeader: "Evil Portal",
		DetailsBody: "Captive portal for\n" +
			"credential harvest.\n" +
			"Configure in WebUI:\n" +
			"- Portal settings\n" +
			"- Landing page\n",
	},
	{
		Label:         "List Portals",
		Command:       "listportals\n",
		DetailsHeader: "List Portals",
		DetailsBody:   "Show all available HTML portals\non the SD card.",
	},
	{
		Label:         "Connect To WiFi",
		Command:       ConnectCommand,
		NeedsInput:    true,
		InputPrompt:   "SSID",
		DetailsHeader: "WiFi Connect",
		DetailsBody:   "Connect ESP to WiFi:\nEnter SSID followed by password.\n",
	},
	{
		Label:             "Cast Random Video",
		Command:           "dialconnect\n",
		NeedsConfirmation: true,
		ConfirmHeader:     "Cast Video",
		ConfirmBody:       "Make sure you've connected\nto WiFi first via the\n'Connect to WiFi' option.\n",
		DetailsHeader:     "Video Cast",
		DetailsBody: "Casts random videos\n" +
			"to nearby Cast/DIAL\n" +
			"enabled devices.\n" +
			"Range: ~50m\n",
	},
	{
		Label:             "Printer Power",
		Command:           "powerprinter\n",
		NeedsConfirmation: true,
		ConfirmHeader:     "Printer Power",
		ConfirmBody:       "You need to configure\n settings in the WebUI\n for this command.\n",
		DetailsHeader:     "WiFi Printer",
		DetailsBody: "Control power state\n" +
			"of network printers.\n" +
			"Configure in WebUI:\n" +
			"- Printer IP/Port\n" +
			"- Protocol type\n",
	},
	{
		Label:             "Scan Local Network",
		Command:           "scanlocal\n",
		NeedsConfirmation: true,
		ConfirmHeader:     "Local Network Scan",
		ConfirmBody:       "Make sure you've connected\nto WiFi first via the\n'Connect to WiFi' option.\n",
		DetailsHeader:     "Network Scanner",
		DetailsBody: "Scans local network for:\n" +
			"- Printers\n" +
			"- Smart devices\n" +
			"- Cast devices\n" +
			"- Requires WiFi connection\n",
	},
	{
		Label:         "Set WebUI Creds",
		Command:       "apcred",
		NeedsInput:    true,
		InputPrompt:   "MySSID MyPassword",
		DetailsHeader: "Set AP Credentials",
		DetailsBody: "Set custom WebUI AP:\n" +
			"Format:\nMySSID MyPassword\n" +
			"Example: GhostNet,spooky123\n",
	},
	{
		Label:             "Reset WebUI Creds",
		Command:           "apcred -r\n",
		NeedsConfirmation: true,
		ConfirmHeader:     "Reset AP Credentials",
		ConfirmBody: "Reset WebUI AP to\n" +
			"default credentials?\n" +
			"SSID: GhostNet\n" +
			"Password: GhostNet\n",
		DetailsHeader: "Reset AP Credentials",
		DetailsBody: "Restores default WebUI AP:\n" +
			"SSID: GhostNet\n" +
			"Password: GhostNet\n" +
			"Requires ESP reboot\n",
	},
	{
		Label:         "Stop Evil Portal",
		Command:       "stopportal\n",
		DetailsHeader: "Stop Evil Portal",
		DetailsBody:   "Stops the Evil Portal.",
	},
	{
		Label:         "TP-Link Smart Plug",
		Command:       "tplinktest",
		NeedsInput:    true,
		InputPrompt:   "on | off | loop",
		DetailsHeader: "TP-Link Control",
		DetailsBody:   "Control TP-Link smart plugs\non the local network.",
	},
}

var wifiSettingsCommands = []Descriptor{
	{
		Label:         "< LED: Rainbow >",
		Command:       "rgbmode rainbow\n",
		ConfirmHeader: "LED Effects",
		DetailsHeader: "LED Effects",
		DetailsBody: "Control LED effects:\n" +
			"- rainbow, police, strobe, off, or fixed colors\n" +
			"Cycle with Left/Right to select an effect\n",
	},
	{
		Label:         "Set RGB Pins",
		Command:       "setrgbpins",
		NeedsInput:    true,
		InputPrompt:   "<red> <green> <blue>",
		DetailsHeader: "Set RGB Pins",
		DetailsBody: "Change RGB LED pins.\n" +
			"Requires restart.\n" +
			"Use same value for all\n" +
			"pins for single-pin LED.",
	},
	{
		Label:         "Show SD Pin Config",
		Command:       "sd_config\n",
		DetailsHeader: "SD Pin Config",
		DetailsBody: "Show current SD GPIO\n" +
			"pin configuration for\n" +
			"MMC and SPI modes.",
	},
	{
		Label:         "Set SD Pins (MMC)",
		Command:       "sd_pins_mmc",
		NeedsInput:    true,
		InputPrompt:   "<clk> <cmd> <d0..d3>",
		DetailsHeader: "Set SD Pins (MMC)",
		DetailsBody: "Set GPIO pins for SDMMC.\n" +
			"Requires restart.\n" +
			"Only if firmware built\n" +
			"for SDMMC mode.",
	},
	{
		Label:         "Set SD Pins (SPI)",
		Command:       "sd_pins_spi",
		NeedsInput:    true,
		InputPrompt:   "<cs> <clk> <miso> <mosi>",
		DetailsHeader: "Set SD Pins (SPI)",
		DetailsBody: "Set GPIO pins for SPI.\n" +
			"Requires restart.\n" +
			"Only if firmware built\n" +
			"for SPI mode.",
	},
	{
		Label:             "Save SD Pin Config",
		Command:           "sd_save_config\n",
		NeedsConfirmation: true,
		ConfirmHeader:     "Save SD Config",
		ConfirmBody: "Save current SD pin\n" +
			"config to SD card?\n" +
			"Requires SD mounted.",
		DetailsHeader: "Save SD Pin Config",
		DetailsBody: "Save current SD pin\n" +
			"config (both modes) to\n" +
			"SD card (sd_config.conf).",
	},
	{
		Label:         "Set Timezone",
		Command:       "timezone",
		NeedsInput:    true,
		InputPrompt:   "TZ String",
		DetailsHeader: "Set Timezone",
		DetailsBody:   "Set timezone for the clock.\ne.g. 'EST5EDT,M3.2.0,M11.1.0'",
	},
	{
		Label:         "Set Web Auth",
		Command:       "webauth",
		NeedsInput:    true,
		InputPrompt:   "on | off",
		DetailsHeader: "Set Web Auth",
		DetailsBody:   "Enable or disable Web\nUI authentication.",
	},
	{
		Label:         "Set WiFi Country",
		Command:       "setcountry",
		NeedsInput:    true,
		InputPrompt:   "Country Code (e.g. US)",
		DetailsHeader: "Set WiFi Country",
		DetailsBody:   "Set the WiFi country code.\nMay require ESP32-C5.",
	},
	{
		Label:         "Show Help",
		Command:       "help\n",
		DetailsHeader: "Help",
		DetailsBody:   "Show complete command list.",
	},
	{
		Label:             "Reboot Device",
		Command:           "reboot\n",
		NeedsConfirmation: true,
		ConfirmHeader:     "Reboot Device",
		ConfirmBody:       "Are you sure you want to reboot?",
		DetailsHeader:     "Reboot",
		DetailsBody:       "Restart the ESP device.",
	},
	{
		Label:         "Enable/Disable AP",
		Command:       "apenable",
		NeedsInput:    true,
		InputPrompt:   "on | off",
		DetailsHeader: "AP Enable/Disable",
		DetailsBody:   "Enable or disable the Access Point\nacross reboots.",
	},
	{
		Label:         "Show Chip Info",
		Command:       "chipinfo\n",
		DetailsHeader: "Chip Info",
		DetailsBody:   "Show chip and memory info.",
	},
}

var wifiStopCommand = Descriptor{
	Label:         "Stop All WiFi",
	Command:       StopCommand,
	DetailsHeader: "Stop WiFi Operations",
	DetailsBody: "Stops all active WiFi\n" +
		"operations including:\n" +
		"- Scanning\n" +
		"- Beacon Spam\n" +
		"- Deauth Attacks\n" +
		"- Packet Captures\n" +
		"- Evil Portal\n",
}
