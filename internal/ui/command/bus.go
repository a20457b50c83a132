package command

import (
	"github.com/atomicstack/ghost-esp-control/internal/logging"
	"github.com/atomicstack/ghost-esp-control/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Sender writes one outbound line to the ESP.
type Sender interface {
	Send(line string) error
}

// Request encapsulates one outbound command.
type Request struct {
	ID    string
	Label string
	Line  string
}

// Result reports the outcome of a request back into the UI loop.
type Result struct {
	ID    string
	Label string
	Line  string
	Err   error
}

// Bus serialises outbound commands.
type Bus struct {
	sender Sender
}

// New initialises a command bus writing to sender.
func New(sender Sender) *Bus {
	return &Bus{sender: sender}
}

// Execute writes the request before returning, so lines leave in the order
// they were issued. The returned command delivers the Result.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	if b == nil || b.sender == nil {
		events.Command.Skip(req.ID, req.Label)
		return nil
	}
	if req.Line == "" {
		events.Command.NoOp(req.ID, req.Label)
		return nil
	}
	err := b.sender.Send(req.Line)
	outcome := "sent"
	if err != nil {
		outcome = "error"
		logging.Error(err)
	} else {
		events.Command.Sent(req.ID, req.Line)
	}
	res := Result{ID: req.ID, Label: req.Label, Line: req.Line, Err: err}
	return func() tea.Msg {
		events.Command.Result(req.ID, req.Label, outcome)
		return res
	}
}
