package menu

import (
	"fmt"
	"strings"
)

// View identifies one screen of the navigation state machine. The numeric
// values are stable and double as the persisted selection-memory keys.
type View int

const (
	// ViewNone marks an entry that does not navigate.
	ViewNone          View = -1
	ViewMain          View = 0
	ViewWiFi          View = 1
	ViewBLE           View = 2
	ViewGPS           View = 3
	ViewConfiguration View = 4
	ViewTerminal      View = 5
	ViewTextInput     View = 6
	ViewModal         View = 7
	ViewSettings      View = 8
	ViewWiFiScanning  View = 10
	ViewWiFiCapture   View = 11
	ViewWiFiAttack    View = 12
	ViewWiFiNetwork   View = 13
	ViewWiFiSettings  View = 14
	ViewBLEScanning   View = 20
	ViewBLECapture    View = 21
	ViewBLEAttack     View = 22
	ViewBLEChameleon  View = 23
)

var viewNames = map[View]string{
	ViewMain:          "main",
	ViewWiFi:          "wifi",
	ViewBLE:           "ble",
	ViewGPS:           "gps",
	ViewConfiguration: "configuration",
	ViewTerminal:      "terminal",
	ViewTextInput:     "text-input",
	ViewModal:         "modal",
	ViewSettings:      "settings",
	ViewWiFiScanning:  "wifi:scanning",
	ViewWiFiCapture:   "wifi:capture",
	ViewWiFiAttack:    "wifi:attack",
	ViewWiFiNetwork:   "wifi:network",
	ViewWiFiSettings:  "wifi:settings",
	ViewBLEScanning:   "ble:scanning",
	ViewBLECapture:    "ble:capture",
	ViewBLEAttack:     "ble:attack",
	ViewBLEChameleon:  "ble:chameleon",
}

func (v View) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return fmt.Sprintf("view(%d)", int(v))
}

// IsWiFiPage reports whether v is one of the WiFi command pages.
func (v View) IsWiFiPage() bool {
	return v >= ViewWiFiScanning && v <= ViewWiFiSettings
}

// IsBLEPage reports whether v is one of the BLE command pages.
func (v View) IsBLEPage() bool {
	return v >= ViewBLEScanning && v <= ViewBLEChameleon
}

// Category returns the top-level list that owns v: the WiFi or BLE category
// list for their command pages, the GPS list for itself, otherwise the main
// menu.
func (v View) Category() View {
	switch {
	case v == ViewWiFi || v.IsWiFiPage():
		return ViewWiFi
	case v == ViewBLE || v.IsBLEPage():
		return ViewBLE
	case v == ViewGPS:
		return ViewGPS
	default:
		return ViewMain
	}
}

// Capture names the sink a capture command streams into. The three fields
// always travel together.
type Capture struct {
	Prefix    string
	Extension string
	Folder    string
}

// Descriptor is one command row in a catalog table.
type Descriptor struct {
	Label   string
	Command string
	Capture *Capture

	NeedsInput  bool
	InputPrompt string

	NeedsConfirmation bool
	ConfirmHeader     string
	ConfirmBody       string

	DetailsHeader string
	DetailsBody   string
}

// HasCapture reports whether executing the descriptor opens a capture sink.
func (d Descriptor) HasCapture() bool {
	return d.Capture != nil
}

// HasDetails reports whether long-press help is available.
func (d Descriptor) HasDetails() bool {
	return d.DetailsHeader != "" && d.DetailsBody != ""
}

// IsConnect reports whether the descriptor starts the two-stage SSID/password
// capture instead of a single prompt.
func (d Descriptor) IsConnect() bool {
	return d.NeedsInput && strings.TrimSpace(d.Command) == ConnectCommand
}

// Variant is one alternate command selectable in place on a cyclable row.
type Variant struct {
	Label   string
	Command string
	Capture *Capture
}

// VariantTable is a fixed list of variants hosted at row 0 of a page.
type VariantTable struct {
	ID       string
	Variants []Variant
	// Custom is the index of the variant that prompts for free text before
	// sending, or -1.
	Custom       int
	CustomPrompt string
}

// Len returns the number of variants.
func (t *VariantTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Variants)
}

// At returns the variant at index i, wrapping out-of-range values.
func (t *VariantTable) At(i int) Variant {
	n := t.Len()
	if n == 0 {
		return Variant{}
	}
	i %= n
	if i < 0 {
		i += n
	}
	return t.Variants[i]
}

// IsCustom reports whether index i is the free-text variant.
func (t *VariantTable) IsCustom(i int) bool {
	return t != nil && t.Custom >= 0 && i == t.Custom
}

const (
	// ConnectCommand is the verb of the two-stage WiFi connect flow.
	ConnectCommand = "connect"
	// StopCommand is the global stop emitted by "Stop All" rows and by the
	// stop-on-back policy.
	StopCommand = "stop\n"

	FolderPcaps    = "pcaps"
	FolderWardrive = "wardrive"

	pcapExtension = "pcap"
)

func pcapCapture(prefix string) *Capture {
	return &Capture{Prefix: prefix, Extension: pcapExtension, Folder: FolderPcaps}
}
