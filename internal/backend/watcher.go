package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/ghost-esp-control/internal/uart"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	// KindOutput carries a batch of console text as a string.
	KindOutput Kind = iota
	// KindLink carries the session liveness as a bool.
	KindLink
)

// Event conveys console output, a liveness update or a receive error.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Source is the receive side of an ESP session.
type Source interface {
	Events() <-chan uart.Event
	IsConnected() bool
}

// outputInterval bounds how often output batches reach the UI.
const outputInterval = 50 * time.Millisecond

// Watcher pumps received output and polls link state, publishing both on a
// single channel.
type Watcher struct {
	source   Source
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher over source that polls liveness every
// interval.
func NewWatcher(source Source, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		source:   source,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.startOutputPump()
	w.startLinkPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all goroutines have exited and the events channel is
// closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) send(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}

func (w *Watcher) startOutputPump() {
	pace := newPacer(outputInterval)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		in := w.source.Events()
		for {
			select {
			case <-w.ctx.Done():
				return
			case evt, ok := <-in:
				if !ok {
					return
				}
				if evt.Err != nil {
					if !w.send(Event{Kind: KindLink, Data: false, Err: evt.Err}) {
						return
					}
					continue
				}
				if !pace.wait(w.ctx) {
					return
				}
				batch, open, rerr := drain(in, string(evt.Data))
				if batch != "" && !w.send(Event{Kind: KindOutput, Data: batch}) {
					return
				}
				if rerr != nil && !w.send(Event{Kind: KindLink, Data: false, Err: rerr}) {
					return
				}
				if !open {
					return
				}
			}
		}
	}()
}

// drain appends every chunk already queued on in. A receive error ends the
// batch.
func drain(in <-chan uart.Event, batch string) (string, bool, error) {
	for {
		select {
		case evt, ok := <-in:
			if !ok {
				return batch, false, nil
			}
			if evt.Err != nil {
				return batch, true, evt.Err
			}
			batch += string(evt.Data)
		default:
			return batch, true, nil
		}
	}
}

func (w *Watcher) startLinkPoller() {
	w.wg.Add(1)
	go w.poll(KindLink, func(context.Context) (interface{}, error) {
		return w.source.IsConnected(), nil
	})
}

func (w *Watcher) poll(kind Kind, fetch func(context.Context) (interface{}, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, err := fetch(w.ctx)
		return w.send(Event{Kind: kind, Data: data, Err: err})
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
