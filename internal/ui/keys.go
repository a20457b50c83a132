package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// inputEvent is a handheld button press decoded from a key.
type inputEvent int

const (
	eventNone inputEvent = iota
	eventUp
	eventDown
	eventLeft
	eventRight
	eventOK
	eventLongOK
	eventBack
	eventHome
	eventEnd
)

func (e inputEvent) String() string {
	switch e {
	case eventUp:
		return "up"
	case eventDown:
		return "down"
	case eventLeft:
		return "left"
	case eventRight:
		return "right"
	case eventOK:
		return "ok"
	case eventLongOK:
		return "long-ok"
	case eventBack:
		return "back"
	case eventHome:
		return "home"
	case eventEnd:
		return "end"
	default:
		return "none"
	}
}

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	OK      key.Binding
	Details key.Binding
	Back    key.Binding
	Home    key.Binding
	End     key.Binding
	Quit    key.Binding

	Submit    key.Binding
	InputBack key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "cycle")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "cycle")),
		OK:        key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Details:   key.NewBinding(key.WithKeys("i", "?", "ctrl+o"), key.WithHelp("?", "details")),
		Back:      key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Home:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		End:       key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		InputBack: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
	}
}

// event decodes msg into a button press.
func (k keyMap) event(msg tea.KeyMsg) inputEvent {
	switch {
	case key.Matches(msg, k.Up):
		return eventUp
	case key.Matches(msg, k.Down):
		return eventDown
	case key.Matches(msg, k.Left):
		return eventLeft
	case key.Matches(msg, k.Right):
		return eventRight
	case key.Matches(msg, k.OK):
		return eventOK
	case key.Matches(msg, k.Details):
		return eventLongOK
	case key.Matches(msg, k.Back):
		return eventBack
	case key.Matches(msg, k.Home):
		return eventHome
	case key.Matches(msg, k.End):
		return eventEnd
	default:
		return eventNone
	}
}

// ShortHelp implements help.KeyMap for list views.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Right, k.OK, k.Details, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Home, k.End},
		{k.OK, k.Details, k.Back, k.Quit},
	}
}

type inputKeyMap struct{ k keyMap }

func (i inputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{i.k.Submit, i.k.InputBack, i.k.Quit}
}

func (i inputKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{i.ShortHelp()}
}

type terminalKeyMap struct{ k keyMap }

func (t terminalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{t.k.Up, t.k.Down, t.k.PageUp, t.k.Back, t.k.Quit}
}

func (t terminalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{t.ShortHelp()}
}

type modalKeyMap struct{}

func (m modalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ok")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (m modalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}
