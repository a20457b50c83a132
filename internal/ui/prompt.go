package ui

import (
	"github.com/atomicstack/ghost-esp-control/internal/logging/events"
	"github.com/atomicstack/ghost-esp-control/internal/menu"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// showInput opens the text input with header as its prompt. The buffer is
// cleared on every entry.
func (m *Model) showInput(header string) {
	if m.isListView(m.nav.Current) {
		m.nav.SavePrevious()
	}
	m.prompt = header
	m.input.Reset()
	m.input.Placeholder = header
	m.input.Focus()
	events.Input.Prompt(m.nav.Current.String(), header, m.nav.Connect.Stage().String())
	m.switchView(menu.ViewTextInput)
}

func (m *Model) updateInputModel(msg tea.Msg) tea.Cmd {
	if m.nav.Current != menu.ViewTextInput {
		return nil
	}
	if _, ok := msg.(tea.KeyMsg); ok {
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.InputBack):
		return m.cancelInput()
	case key.Matches(msg, m.keys.Submit):
		return m.submitInput(m.input.Value())
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// submitInput completes the text input. The first connect stage re-prompts
// for the password; every other completion sends and shows the terminal.
func (m *Model) submitInput(text string) tea.Cmd {
	stage := m.nav.Connect.Stage()
	events.Input.Submit(stage.String(), len(text))
	if m.nav.Connect.Active() {
		line, done := m.nav.Connect.Submit(text)
		if !done {
			m.showInput(m.nav.Connect.Prompt())
			return nil
		}
		m.input.Blur()
		m.showTerminal("")
		return m.send("connect", "Connect To WiFi", line)
	}
	verb := m.nav.PendingCommand
	m.nav.PendingCommand = ""
	m.input.Blur()
	if verb == "" {
		m.restorePrevious()
		return nil
	}
	m.showTerminal("")
	return m.send("input:"+verb, verb, menu.FormatCommand(verb, text))
}

// cancelInput leaves the text input with Back.
func (m *Model) cancelInput() tea.Cmd {
	events.Input.Cancel(m.nav.Connect.Stage().String())
	cmd := m.stopOnBack()
	m.nav.ClearInput()
	m.input.Blur()
	m.input.Reset()
	m.restorePrevious()
	return cmd
}
