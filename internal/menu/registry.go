package menu

import "fmt"

// Entry is one row of a list page. Rows either navigate to Target or carry a
// Descriptor that the dispatcher executes; settings rows carry neither and are
// resolved by ID.
type Entry struct {
	ID         string
	Label      string
	Target     View
	Descriptor *Descriptor
}

// Navigates reports whether selecting the entry switches to another page.
func (e Entry) Navigates() bool {
	return e.Target != ViewNone
}

// Page describes one list view.
type Page struct {
	View    View
	Title   string
	Parent  View
	Entries []Entry
	// Variants is the cyclable table hosted at row 0, if any.
	Variants *VariantTable
	// Remember marks pages whose highlighted row is kept in selection memory.
	Remember bool
}

// Descriptor returns the descriptor at row i, or false when the row is out of
// range or does not execute a command.
func (p *Page) Descriptor(i int) (*Descriptor, bool) {
	if p == nil || i < 0 || i >= len(p.Entries) {
		return nil, false
	}
	d := p.Entries[i].Descriptor
	return d, d != nil
}

// Entry IDs of rows that are not plain commands.
const (
	EntrySettingsConfiguration = "settings:configuration"
	EntrySettingsHardware      = "settings:hardware"
	EntrySettingsESPHelp       = "settings:esp-help"
	EntrySettingsAbout         = "settings:about"
	EntryConfigStopOnBack      = "config:stop-on-back"
	EntryConfigConnectionCheck = "config:connection-check"
	EntryConfigStop            = "config:stop"
)

var espHelpCommand = Descriptor{
	Label:   "Show ESP Help",
	Command: "help\n",
}

var stopTasksCommand = Descriptor{
	Label:   "Stop ESP Tasks",
	Command: StopCommand,
}

// Registry exposes the catalog as pages keyed by view.
type Registry struct {
	pages map[View]*Page
	order []View
}

// BuildRegistry assembles every list page of the catalog.
func BuildRegistry() *Registry {
	r := &Registry{pages: make(map[View]*Page)}

	r.add(&Page{
		View:   ViewMain,
		Parent: ViewNone,
		Entries: []Entry{
			pageEntry("main:wifi", "WiFi", ViewWiFi),
			pageEntry("main:ble", "BLE", ViewBLE),
			pageEntry("main:gps", "GPS", ViewGPS),
			pageEntry("main:settings", " SET", ViewSettings),
		},
	})
	r.add(&Page{
		View:   ViewWiFi,
		Title:  "WiFi Commands",
		Parent: ViewMain,
		Entries: []Entry{
			pageEntry("wifi:scanning", "Scanning & Probing", ViewWiFiScanning),
			pageEntry("wifi:capture", "Packet Capture", ViewWiFiCapture),
			pageEntry("wifi:attack", "Attacks", ViewWiFiAttack),
			pageEntry("wifi:network", "Evil Portal & Network", ViewWiFiNetwork),
			commandEntry("wifi:stop", &wifiStopCommand),
		},
		Remember: true,
	})
	r.add(&Page{
		View:   ViewBLE,
		Title:  "BLE Commands",
		Parent: ViewMain,
		Entries: []Entry{
			pageEntry("ble:scanning", "Scanning & Detection >", ViewBLEScanning),
			pageEntry("ble:capture", "Packet Capture >", ViewBLECapture),
			pageEntry("ble:attack", "Attacks & Spoofing >", ViewBLEAttack),
			pageEntry("ble:chameleon", "Chameleon RFID/NFC >", ViewBLEChameleon),
			commandEntry("ble:stop", &bleStopCommand),
		},
		Remember: true,
	})
	r.add(commandPage(ViewGPS, "GPS Commands:", ViewMain, gpsCommands, nil))

	r.add(commandPage(ViewWiFiScanning, "Scanning & Probing", ViewWiFi, wifiScanningCommands, nil))
	r.add(commandPage(ViewWiFiCapture, "Packet Capture", ViewWiFi, wifiCaptureCommands, sniffVariants))
	r.add(commandPage(ViewWiFiAttack, "Attacks", ViewWiFi, wifiAttackCommands, beaconVariants))
	r.add(commandPage(ViewWiFiNetwork, "Portal & Network", ViewWiFi, wifiNetworkCommands, nil))
	r.add(commandPage(ViewWiFiSettings, "Settings & Hardware", ViewWiFi, wifiSettingsCommands, rgbVariants))

	r.add(commandPage(ViewBLEScanning, "Scanning & Detection", ViewBLE, bleScanningCommands, nil))
	r.add(commandPage(ViewBLECapture, "Packet Capture", ViewBLE, bleCaptureCommands, nil))
	r.add(commandPage(ViewBLEAttack, "Attacks & Spoofing", ViewBLE, bleAttackCommands, bleSpamVariants))
	r.add(commandPage(ViewBLEChameleon, "Chameleon RFID/NFC", ViewBLE, bleChameleonCommands, nil))

	r.add(&Page{
		View:   ViewSettings,
		Title:  "Settings",
		Parent: ViewMain,
		Entries: []Entry{
			pageEntry(EntrySettingsConfiguration, "Configuration", ViewConfiguration),
			pageEntry(EntrySettingsHardware, "ESP Settings & Hardware", ViewWiFiSettings),
			commandEntry(EntrySettingsESPHelp, &espHelpCommand),
			{ID: EntrySettingsAbout, Label: "App Info", Target: ViewNone},
		},
	})
	r.add(&Page{
		View:   ViewConfiguration,
		Title:  "Configuration",
		Parent: ViewSettings,
		Entries: []Entry{
			{ID: EntryConfigStopOnBack, Label: "Stop On Back", Target: ViewNone},
			{ID: EntryConfigConnectionCheck, Label: "Connection Check", Target: ViewNone},
			commandEntry(EntryConfigStop, &stopTasksCommand),
		},
	})

	return r
}

func (r *Registry) add(p *Page) {
	r.pages[p.View] = p
	r.order = append(r.order, p.View)
}

// Page returns the list page for v.
func (r *Registry) Page(v View) (*Page, bool) {
	p, ok := r.pages[v]
	return p, ok
}

// Pages returns every page in declaration order.
func (r *Registry) Pages() []*Page {
	out := make([]*Page, 0, len(r.order))
	for _, v := range r.order {
		out = append(out, r.pages[v])
	}
	return out
}

// RememberedViews lists the views that own a selection-memory slot.
func (r *Registry) RememberedViews() []View {
	var out []View
	for _, v := range r.order {
		if r.pages[v].Remember {
			out = append(out, v)
		}
	}
	return out
}

func pageEntry(id, label string, target View) Entry {
	return Entry{ID: id, Label: label, Target: target}
}

func commandEntry(id string, d *Descriptor) Entry {
	return Entry{ID: id, Label: d.Label, Target: ViewNone, Descriptor: d}
}

func commandPage(v View, title string, parent View, commands []Descriptor, variants *VariantTable) *Page {
	entries := make([]Entry, len(commands))
	for i := range commands {
		entries[i] = commandEntry(fmt.Sprintf("%s:%d", v, i), &commands[i])
	}
	return &Page{
		View:     v,
		Title:    title,
		Parent:   parent,
		Entries:  entries,
		Variants: variants,
		Remember: true,
	}
}
