package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/ghost-esp-control/internal/logging"
	"github.com/atomicstack/ghost-esp-control/internal/menu"
	"github.com/atomicstack/ghost-esp-control/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// execute runs descriptor d selected at row of page. Gates are checked in
// order: liveness, connect flow, free text, confirmation, variant slot,
// capture.
func (m *Model) execute(page *menu.Page, row int, d menu.Descriptor) tea.Cmd {
	if !m.connected() {
		m.nav.SavePrevious()
		m.showModal(&modal{
			kind:   modalConnectionError,
			header: menu.ConnectionErrorHeader,
			body:   menu.ConnectionErrorBody,
		})
		return nil
	}
	if d.IsConnect() {
		m.nav.PendingCommand = ""
		m.nav.Connect.Begin()
		m.showInput(m.nav.Connect.Prompt())
		return nil
	}
	if d.NeedsInput {
		m.nav.Connect.Reset()
		m.nav.PendingCommand = strings.TrimSpace(d.Command)
		m.showInput(d.InputPrompt)
		return nil
	}
	if d.NeedsConfirmation {
		m.nav.SavePrevious()
		m.showConfirm(d)
		return nil
	}
	if row == 0 && page.Variants.Len() > 0 {
		idx := m.nav.Variants.Index(page.Variants)
		if page.Variants.IsCustom(idx) {
			m.nav.Connect.Reset()
			m.nav.PendingCommand = strings.TrimSpace(page.Variants.At(idx).Command)
			m.showInput(page.Variants.CustomPrompt)
			return nil
		}
		d = menu.ResolveVariant(d, page.Variants, idx)
	}
	return m.run(commandID(page.View, row), d, d.Label)
}

// run opens the descriptor's capture sink if it has one, then switches to
// the terminal and sends. A failed open aborts without sending or leaving
// the current view.
func (m *Model) run(id string, d menu.Descriptor, header string) tea.Cmd {
	if d.HasCapture() && !m.openCapture(d.Capture) {
		return nil
	}
	m.showTerminal(header)
	return m.send(id, d.Label, d.Command)
}

func (m *Model) connected() bool {
	if !m.settings.Load().CheckConnection {
		return true
	}
	return m.transport != nil && m.transport.IsConnected()
}

func (m *Model) openCapture(c *menu.Capture) bool {
	if m.transport == nil {
		logging.Error(fmt.Errorf("open capture %s: no transport", c.Prefix))
		return false
	}
	if err := m.transport.OpenCaptureSink(c.Prefix, c.Extension, c.Folder); err != nil {
		logging.Error(fmt.Errorf("open capture %s/%s: %w", c.Folder, c.Prefix, err))
		return false
	}
	return true
}

func (m *Model) closeCapture() {
	if m.transport == nil {
		return
	}
	if err := m.transport.CloseCaptureSink(); err != nil {
		logging.Error(err)
	}
}

func (m *Model) send(id, label, line string) tea.Cmd {
	return m.bus.Execute(command.Request{ID: id, Label: label, Line: line})
}

// stopOnBack emits the global stop when the setting asks for it.
func (m *Model) stopOnBack() tea.Cmd {
	if !m.settings.Load().StopOnBack {
		return nil
	}
	return m.send("stop-on-back", "Stop", menu.StopCommand)
}

func commandID(v menu.View, row int) string {
	return fmt.Sprintf("%s:%d", v, row)
}

func trimLine(line string) string {
	return strings.TrimSpace(line)
}
