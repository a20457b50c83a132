package backend

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/ghost-esp-control/internal/uart"
)

type fakeSource struct {
	events    chan uart.Event
	connected atomic.Bool
}

func (f *fakeSource) Events() <-chan uart.Event { return f.events }
func (f *fakeSource) IsConnected() bool         { return f.connected.Load() }

func collect(t *testing.T, w *Watcher, want func([]Event) bool) []Event {
	t.Helper()
	var got []Event
	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt, ok := <-w.Events():
			if !ok {
				return got
			}
			got = append(got, evt)
			if want(got) {
				return got
			}
		case <-deadline:
			t.Fatalf("timed out, got %d events", len(got))
		}
	}
}

func outputText(events []Event) string {
	var out string
	for _, evt := range events {
		if evt.Kind == KindOutput {
			out += evt.Data.(string)
		}
	}
	return out
}

func TestWatcherBatchesOutput(t *testing.T) {
	src := &fakeSource{events: make(chan uart.Event, 8)}
	src.connected.Store(true)
	src.events <- uart.Event{Data: []byte("scan ")}
	src.events <- uart.Event{Data: []byte("started\n")}

	w := NewWatcher(src, time.Hour)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	got := collect(t, w, func(evts []Event) bool {
		return outputText(evts) == "scan started\n"
	})
	assert.Equal(t, "scan started\n", outputText(got))
}

func TestWatcherReportsLink(t *testing.T) {
	src := &fakeSource{events: make(chan uart.Event)}
	src.connected.Store(true)

	w := NewWatcher(src, time.Hour)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	got := collect(t, w, func(evts []Event) bool {
		return len(evts) > 0 && evts[len(evts)-1].Kind == KindLink
	})
	last := got[len(got)-1]
	require.NoError(t, last.Err)
	assert.Equal(t, true, last.Data)
}

func TestWatcherPublishesReceiveError(t *testing.T) {
	src := &fakeSource{events: make(chan uart.Event, 1)}
	boom := errors.New("device unplugged")
	src.events <- uart.Event{Err: boom}

	w := NewWatcher(src, time.Hour)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	got := collect(t, w, func(evts []Event) bool {
		for _, evt := range evts {
			if evt.Err != nil {
				return true
			}
		}
		return false
	})
	var found bool
	for _, evt := range got {
		if evt.Err != nil {
			found = true
			assert.ErrorIs(t, evt.Err, boom)
			assert.Equal(t, KindLink, evt.Kind)
		}
	}
	assert.True(t, found)
}

func TestWatcherClosesWhenStopped(t *testing.T) {
	src := &fakeSource{events: make(chan uart.Event)}
	w := NewWatcher(src, 10*time.Millisecond)
	w.Stop()
	w.Wait()
	for range w.Events() {
	}
}

func TestPacerSpacesBatches(t *testing.T) {
	p := newPacer(20 * time.Millisecond)
	start := time.Now()
	require.True(t, p.wait(context.Background()))
	require.True(t, p.wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)

	var unpaced *pacer
	assert.True(t, unpaced.wait(context.Background()))
}

func TestPacerStopsOnCancel(t *testing.T) {
	p := newPacer(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	require.True(t, p.wait(ctx))
	cancel()
	assert.False(t, p.wait(ctx))
}
