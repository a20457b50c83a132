package ui

import (
	"github.com/atomicstack/ghost-esp-control/internal/backend"
	"github.com/atomicstack/ghost-esp-control/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent folds received output and link changes into the stores
// and the visible widgets.
func (m *Model) applyBackendEvent(evt backend.Event) {
	res := m.dispatcher.Handle(evt)
	if res.OutputUpdated && m.nav.Current == menu.ViewTerminal {
		m.refreshTerminal()
	}
	if res.Disconnected {
		if err := m.link.LastError(); err != nil {
			m.errMsg = "link lost: " + err.Error()
		} else {
			m.errMsg = "link lost"
		}
	} else if res.LinkUpdated && m.link.Connected() {
		m.errMsg = ""
	}
}
