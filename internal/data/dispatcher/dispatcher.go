package dispatcher

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/ghost-esp-control/internal/backend"
	"github.com/atomicstack/ghost-esp-control/internal/state"
)

type Result struct {
	OutputUpdated bool
	LinkUpdated   bool
	// Disconnected is set when the link dropped with this event.
	Disconnected bool
}

type Dispatcher struct {
	terminal state.TerminalStore
	link     state.LinkStore
}

func New(t state.TerminalStore, l state.LinkStore) *Dispatcher {
	return &Dispatcher{terminal: t, link: l}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	switch evt.Kind {
	case backend.KindOutput:
		if evt.Err != nil {
			return res
		}
		if text, ok := evt.Data.(string); ok && text != "" {
			d.terminal.Append(ansi.Strip(text))
			res.OutputUpdated = true
		}
	case backend.KindLink:
		connected, _ := evt.Data.(bool)
		if evt.Err != nil {
			d.link.SetLastError(evt.Err)
			connected = false
		}
		if d.link.Connected() && !connected {
			res.Disconnected = true
		}
		if d.link.Connected() != connected || evt.Err != nil {
			res.LinkUpdated = true
		}
		d.link.SetConnected(connected)
		if connected {
			d.link.SetLastError(nil)
		}
	}
	return res
}
