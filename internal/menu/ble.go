package menu

var bleScanningCommands = []Descriptor{
	{
		Label:         "Skimmer Detection",
		Command:       "capture -skimmer\n",
		Capture:       pcapCapture("skimmer_scan"),
		DetailsHeader: "Skimmer Scanner",
		DetailsBody: "Detects potential\n" +
			"card skimmers by\n" +
			"analyzing BLE\n" +
			"signatures and\n" +
			"known patterns.\n",
	},
	{
		Label:         "Find the Flippers",
		Command:       "blescan -f\n",
		DetailsHeader: "Flipper Scanner",
		DetailsBody: "Scans for Flippers:\n" +
			"- Device name\n" +
			"- BT address\n" +
			"- Signal level\n" +
			"Range: ~50m\n",
	},
	{
		Label:         "AirTag Scanner",
		Command:       "blescan -a\n",
		DetailsHeader: "AirTag Scanner",
		DetailsBody: "Detects nearby Apple\n" +
			"AirTags and shows:\n" +
			"- Device ID\n" +
			"- Signal strength\n" +
			"- Last seen time\n",
	},
	{
		Label:         "List AirTags",
		Command:       "listairtags\n",
		DetailsHeader: "List AirTags",
		DetailsBody:   "List discovered AirTags.",
	},
	{
		Label:         "Select AirTag",
		Command:       "select -airtag",
		NeedsInput:    true,
		InputPrompt:   "AirTag Number",
		DetailsHeader: "Select AirTag",
		DetailsBody:   "Target an AirTag by number\nfrom the scan list.",
	},
	{
		Label:         "List Flippers",
		Command:       "listflippers\n",
		DetailsHeader: "List Flippers",
		DetailsBody:   "List discovered Flipper Devices\nin range.",
	},
	{
		Label:         "Select Flipper",
		Command:       "selectflipper",
		NeedsInput:    true,
		InputPrompt:   "Flipper Number",
		DetailsHeader: "Select Flipper",
		DetailsBody:   "Select a Flipper by number.",
	},
	{
		Label:         "Detect BLE Spam",
		Command:       "blescan -ds\n",
		DetailsHeader: "BLE Spam Detection",
		DetailsBody:   "Detects Bluetooth spam devices\nin the area.",
	},
	{
		Label:         "View All BLE Traffic",
		Command:       "blescan -r\n",
		DetailsHeader: "BLE Raw Traffic",
		DetailsBody:   "View all Bluetooth Low Energy\ntraffic in range.",
	},
	{
		Label:         "Stop BLE Scanning",
		Command:       "blescan -s\n",
		DetailsHeader: "Stop BLE Scan",
		DetailsBody:   "Stops any active BLE scanning.",
	},
}

var bleCaptureCommands = []Descriptor{
	{
		Label:         "BLE Raw Capture",
		Command:       "capture -ble\n",
		Capture:       pcapCapture("ble_raw_capture"),
		DetailsHeader: "BLE Raw Capture",
		DetailsBody: "Captures raw BLE\n" +
			"traffic and data.\n" +
			"Range: ~10-30m\n",
	},
}

var bleAttackCommands = []Descriptor{
	{
		Label:         "< BLE Spam (Apple) >",
		Command:       "blespam -apple\n",
		DetailsHeader: "Variable BLE Spam",
		DetailsBody: "Use Left/Right to change:\n" +
			"- Apple device spam\n" +
			"- Microsoft Swift Pair\n" +
			"- Samsung Galaxy Watch\n" +
			"- Google Fast Pair\n" +
			"- Random spam (all types)\n" +
			"Range: ~50m\n",
	},
	{
		Label:         "Spoof Selected AirTag",
		Command:       "spoofairtag\n",
		DetailsHeader: "Spoof AirTag",
		DetailsBody:   "Spoof the selected AirTag.",
	},
	{
		Label:         "Stop BLE Spam",
		Command:       "blespam -s\n",
		DetailsHeader: "Stop BLE Spam",
		DetailsBody:   "Stops BLE advertisement\nspam attacks.",
	},
	{
		Label:         "Stop AirTag Spoof",
		Command:       "stopspoof\n",
		DetailsHeader: "Stop Spoofing",
		DetailsBody:   "Stops AirTag spoofing.",
	},
}

// Chameleon Ultra commands are relayed by the ESP over Bluetooth.
var bleChameleonCommands = []Descriptor{
	{
		Label:         "Connect",
		Command:       "chameleon connect\n",
		DetailsHeader: "Connect to Chameleon",
		DetailsBody: "Scan and connect to\n" +
			"Chameleon Ultra device\n" +
			"via Bluetooth.\n" +
			"Must be done first.",
	},
	{
		Label:         "Device Status",
		Command:       "chameleon status\n",
		DetailsHeader: "Device Status",
		DetailsBody: "Show connection status,\n" +
			"device info, firmware\n" +
			"version, and current\n" +
			"operating mode.",
	},
	{
		Label:         "Battery Level",
		Command:       "chameleon battery\n",
		DetailsHeader: "Battery Check",
		DetailsBody: "Display current battery\n" +
			"level and charging\n" +
			"status of Chameleon\n" +
			"Ultra device.",
	},
	{
		Label:         "Reader Mode",
		Command:       "chameleon reader\n",
		DetailsHeader: "Reader Mode",
		DetailsBody: "Switch to reader mode\n" +
			"for scanning and\n" +
			"analyzing cards.\n" +
			"Required for scanning.",
	},
	{
		Label:         "Scan HF (13.56MHz)",
		Command:       "chameleon scanhf\n",
		DetailsHeader: "HF Card Scanner",
		DetailsBody: "Quick scan for 13.56MHz\n" +
			"cards (MIFARE, NTAG,\n" +
			"ISO14443 Type A/B).\n" +
			"Shows basic card info.",
	},
	{
		Label:         "Read HF Card",
		Command:       "chameleon readhf\n",
		DetailsHeader: "Full HF Analysis",
		DetailsBody: "Comprehensive card\n" +
			"analysis with automated\n" +
			"attacks for MIFARE\n" +
			"Classic and NTAG cards.",
	},
	{
		Label:         "NTAG Detect",
		Command:       "chameleon ntagdetect\n",
		DetailsHeader: "NTAG Detection",
		DetailsBody: "Identify NTAG card type\n" +
			"(213/215/216) and\n" +
			"check protection\n" +
			"status and memory.",
	},
	{
		Label:         "Save Card Dump",
		Command:       "chameleon savedump",
		NeedsInput:    true,
		InputPrompt:   "Filename",
		DetailsHeader: "Save Card Data",
		DetailsBody: "Save scanned card data\n" +
			"to SD card with custom\n" +
			"filename for later\n" +
			"analysis.",
	},
	{
		Label:         "Emulator Mode",
		Command:       "chameleon emulator\n",
		DetailsHeader: "Emulator Mode",
		DetailsBody: "Switch to emulator mode\n" +
			"for card simulation\n" +
			"and tag emulation.\n" +
			"Load cards first.",
	},
	{
		Label:         "Disconnect",
		Command:       "chameleon disconnect\n",
		DetailsHeader: "Disconnect",
		DetailsBody: "Safely disconnect from\n" +
			"Chameleon Ultra device\n" +
			"and free Bluetooth\n" +
			"connection.",
	},
}

var bleStopCommand = Descriptor{
	Label:         "Stop All BLE",
	Command:       StopCommand,
	DetailsHeader: "Stop BLE Operations",
	DetailsBody: "Stops all active BLE\n" +
		"operations including:\n" +
		"- BLE Scanning\n" +
		"- Skimmer Detection\n" +
		"- Packet Captures\n" +
		"- Device Detection\n",
}
