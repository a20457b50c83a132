package ui

import (
	"strings"

	"github.com/atomicstack/ghost-esp-control/internal/logging/events"
	"github.com/atomicstack/ghost-esp-control/internal/menu"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

type modalKind int

const (
	modalInfo modalKind = iota
	modalConnectionError
	modalConfirm
)

// pendingConfirm pairs a modal invocation with the descriptor it guards. It
// is consumed by exactly one of OK or Cancel.
type pendingConfirm struct {
	descriptor menu.Descriptor
}

// modal is the state of view 7.
type modal struct {
	kind    modalKind
	token   uuid.UUID
	header  string
	body    string
	pending *pendingConfirm
}

// take hands over the pending confirmation and leaves the modal empty, so a
// second resolution finds nothing.
func (md *modal) take() *pendingConfirm {
	if md == nil {
		return nil
	}
	p := md.pending
	md.pending = nil
	return p
}

// modalResultMsg resolves the modal identified by token.
type modalResultMsg struct {
	token uuid.UUID
	ok    bool
}

func (m *Model) showModal(md *modal) {
	md.token = uuid.New()
	m.modal = md
	m.switchView(menu.ViewModal)
	m.layout()
	m.viewport.SetContent(md.body)
	m.viewport.GotoTop()
}

// showInfo shows a text modal whose OK and Cancel both resume the view it
// was opened from.
func (m *Model) showInfo(header, body string) {
	m.nav.SavePrevious()
	m.showModal(&modal{kind: modalInfo, header: header, body: body})
}

func (m *Model) showConfirm(d menu.Descriptor) {
	m.showModal(&modal{
		kind:    modalConfirm,
		header:  d.ConfirmHeader,
		body:    d.ConfirmBody,
		pending: &pendingConfirm{descriptor: d},
	})
	events.Confirm.Show(m.modal.token.String(), d.ConfirmHeader)
}

func (m *Model) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	if m.modal == nil {
		return nil
	}
	token := m.modal.token
	switch {
	case key.Matches(msg, m.keys.OK):
		return resolveModal(token, true)
	case key.Matches(msg, m.keys.Back):
		return resolveModal(token, false)
	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
	}
	return nil
}

func resolveModal(token uuid.UUID, ok bool) tea.Cmd {
	return func() tea.Msg {
		return modalResultMsg{token: token, ok: ok}
	}
}

func (m *Model) handleModalResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(modalResultMsg)
	if !ok {
		return nil
	}
	if m.modal == nil || m.modal.token != res.token || m.nav.Current != menu.ViewModal {
		events.Confirm.Stale(res.token.String())
		return nil
	}
	md := m.modal
	m.modal = nil
	switch md.kind {
	case modalConfirm:
		events.Confirm.Resolve(res.token.String(), res.ok)
		pending := md.take()
		if res.ok {
			return m.confirmOK(pending)
		}
		m.confirmCancel()
		return nil
	default:
		m.resume(m.nav.Previous)
		return nil
	}
}

// confirmOK sends the confirmed descriptor. Capture commands open their sink
// first and are dropped if that fails; plain commands run under an empty
// terminal header.
func (m *Model) confirmOK(p *pendingConfirm) tea.Cmd {
	if p == nil {
		m.resume(m.nav.Previous)
		return nil
	}
	d := p.descriptor
	id := "confirm:" + strings.ToLower(strings.ReplaceAll(d.Label, " ", "-"))
	if d.HasCapture() {
		if !m.openCapture(d.Capture) {
			m.resume(m.nav.Previous)
			return nil
		}
		m.showTerminal(d.Label)
		return m.send(id, d.Label, d.Command)
	}
	m.showTerminal("")
	return m.send(id, d.Label, d.Command)
}

// confirmCancel returns to the top-level list owning the view the modal was
// opened from.
func (m *Model) confirmCancel() {
	m.showPage(m.nav.Previous.Category())
}
