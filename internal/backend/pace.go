package backend

import (
	"context"
	"time"
)

// pacer spaces console batches so the terminal redraws at most once per
// interval. Chunks that arrive while it waits join the next batch.
type pacer struct {
	interval time.Duration
	last     time.Time
}

func newPacer(interval time.Duration) *pacer {
	return &pacer{interval: interval}
}

// wait blocks until interval has passed since the previous batch. It reports
// false once ctx is done.
func (p *pacer) wait(ctx context.Context) bool {
	if p == nil || p.interval <= 0 {
		return ctx.Err() == nil
	}
	if d := time.Until(p.last.Add(p.interval)); d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
		}
	}
	p.last = time.Now()
	return true
}
