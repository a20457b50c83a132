package ui

import (
	"github.com/atomicstack/ghost-esp-control/internal/logging/events"
	"github.com/atomicstack/ghost-esp-control/internal/menu"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// showTerminal switches to an empty console view under header. Entering from
// a list records that list as the Back target.
func (m *Model) showTerminal(header string) {
	if m.isListView(m.nav.Current) {
		m.nav.SavePrevious()
	}
	m.terminal.Reset()
	m.viewport.SetContent("")
	m.terminal.SetHeader(header)
	m.switchView(menu.ViewTerminal)
	m.layout()
}

// refreshTerminal loads the buffered output into the viewport, following
// the tail unless the user scrolled up.
func (m *Model) refreshTerminal() {
	follow := m.viewport.AtBottom() || m.viewport.TotalLineCount() == 0
	m.viewport.SetContent(m.terminal.Text())
	if follow {
		m.viewport.GotoBottom()
	}
}

func (m *Model) handleTerminalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m.backFromTerminal()
	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
	}
	return nil
}

// backFromTerminal optionally stops the running command, closes any capture
// sink, empties the buffer and returns to the view the command ran from.
func (m *Model) backFromTerminal() tea.Cmd {
	events.UI.Back(menu.ViewTerminal.String(), m.nav.Previous.String())
	cmd := m.stopOnBack()
	m.closeCapture()
	m.terminal.Reset()
	m.viewport.SetContent("")
	m.errMsg = ""
	m.restorePrevious()
	return cmd
}

func (m *Model) capturePath() string {
	if m.transport == nil {
		return ""
	}
	return m.transport.CapturePath()
}
