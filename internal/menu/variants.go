package menu

// Variant table identifiers, used as keys for the per-table cycle cursors.
const (
	VariantsSniff    = "sniff"
	VariantsBeacon   = "beacon"
	VariantsBLESpam  = "ble-spam"
	VariantsRGB      = "rgb"
	beaconCustomSlot = 3
)

var sniffVariants = &VariantTable{
	ID: VariantsSniff,
	Variants: []Variant{
		{Label: "< Sniff WPS >", Command: "capture -wps\n", Capture: pcapCapture("wps_capture")},
		{Label: "< Sniff Raw Packets >", Command: "capture -raw\n", Capture: pcapCapture("raw_capture")},
		{Label: "< Sniff Probes >", Command: "capture -p\n", Capture: pcapCapture("probe_capture")},
		{Label: "< Sniff Deauth >", Command: "capture -deauth\n", Capture: pcapCapture("deauth_capture")},
		{Label: "< Sniff Beacons >", Command: "capture -beacon\n", Capture: pcapCapture("beacon_capture")},
		{Label: "< Sniff EAPOL >", Command: "capture -eapol\n", Capture: pcapCapture("eapol_capture")},
		{Label: "< Sniff Pwn >", Command: "capture -pwn\n", Capture: pcapCapture("pwn_capture")},
	},
	Custom: -1,
}

var beaconVariants = &VariantTable{
	ID: VariantsBeacon,
	Variants: []Variant{
		{Label: "< Beacon Spam (List) >", Command: "beaconspam -l\n"},
		{Label: "< Beacon Spam (Random) >", Command: "beaconspam -r\n"},
		{Label: "< Beacon Spam (Rickroll) >", Command: "beaconspam -rr\n"},
		{Label: "< Beacon Spam (Custom) >", Command: "beaconspam"},
	},
	Custom:       beaconCustomSlot,
	CustomPrompt: "SSID Name",
}

var bleSpamVariants = &VariantTable{
	ID: VariantsBLESpam,
	Variants: []Variant{
		{Label: "< BLE Spam (Apple) >", Command: "blespam -apple\n"},
		{Label: "< BLE Spam (Microsoft) >", Command: "blespam -ms\n"},
		{Label: "< BLE Spam (Samsung) >", Command: "blespam -samsung\n"},
		{Label: "< BLE Spam (Google) >", Command: "blespam -google\n"},
		{Label: "< BLE Spam (Random) >", Command: "blespam -random\n"},
	},
	Custom: -1,
}

var rgbVariants = &VariantTable{
	ID: VariantsRGB,
	Variants: []Variant{
		{Label: "< LED: Rainbow >", Command: "rgbmode rainbow\n"},
		{Label: "< LED: Police >", Command: "rgbmode police\n"},
		{Label: "< LED: Strobe >", Command: "rgbmode strobe\n"},
		{Label: "< LED: Off >", Command: "rgbmode off\n"},
		{Label: "< LED: Red >", Command: "rgbmode red\n"},
		{Label: "< LED: Green >", Command: "rgbmode green\n"},
		{Label: "< LED: Blue >", Command: "rgbmode blue\n"},
		{Label: "< LED: Yellow >", Command: "rgbmode yellow\n"},
		{Label: "< LED: Purple >", Command: "rgbmode purple\n"},
		{Label: "< LED: Cyan >", Command: "rgbmode cyan\n"},
		{Label: "< LED: Orange >", Command: "rgbmode orange\n"},
		{Label: "< LED: White >", Command: "rgbmode white\n"},
		{Label: "< LED: Pink >", Command: "rgbmode pink\n"},
	},
	Custom: -1,
}

// VariantTables returns the four cyclable tables keyed by ID.
func VariantTables() map[string]*VariantTable {
	return map[string]*VariantTable{
		VariantsSniff:   sniffVariants,
		VariantsBeacon:  beaconVariants,
		VariantsBLESpam: bleSpamVariants,
		VariantsRGB:     rgbVariants,
	}
}
