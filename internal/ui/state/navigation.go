package state

import "github.com/atomicstack/ghost-esp-control/internal/menu"

// Navigation is the process-wide navigation state. It is created once and
// mutated only by the navigation controller and command dispatcher.
type Navigation struct {
	Current  menu.View
	Previous menu.View
	// CurrentIndex is the row last activated in the active list.
	CurrentIndex int
	// CameFromSettings routes Back from WiFi pages to the settings root.
	CameFromSettings bool
	// PendingCommand is the verb combined with text when input completes.
	PendingCommand string
	Connect        ConnectFlow

	Memory   *SelectionMemory
	Variants *VariantCursors
}

// NewNavigation starts on the main menu with empty selection memory for the
// given views.
func NewNavigation(remembered []menu.View) *Navigation {
	return &Navigation{
		Current:  menu.ViewMain,
		Previous: menu.ViewMain,
		Memory:   NewSelectionMemory(remembered),
		Variants: NewVariantCursors(),
	}
}

// Switch makes v the current view and returns the view it replaced.
func (n *Navigation) Switch(v menu.View) menu.View {
	from := n.Current
	n.Current = v
	return from
}

// SavePrevious records the current view as the one to return to. It must run
// before Switch overwrites Current.
func (n *Navigation) SavePrevious() {
	n.Previous = n.Current
}

// ClearInput drops the pending verb and any partial connect flow.
func (n *Navigation) ClearInput() {
	n.PendingCommand = ""
	n.Connect.Reset()
}
