package countdown

import (
	"context"
	"time"
)

// Run drives run runID of e from the emitter's clock until the countdown
// stops, the run is superseded, or ctx is cancelled. The first tick is
// delivered immediately, then one every interval. On cancellation the
// countdown is cleared before Run returns ctx.Err().
//
// Run must be the only goroutine using e while it runs.
func Run(ctx context.Context, e *Emitter, runID int, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := e.clock.NewTicker(interval)
	defer ticker.Stop()

	if !e.Tick(runID) {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			if e.Running() && e.RunID() == runID {
				e.Clear()
			}
			return ctx.Err()
		case <-ticker.C():
			if !e.Tick(runID) {
				return nil
			}
		}
	}
}

// Countdown starts a countdown of d on e and blocks until it ends.
func Countdown(ctx context.Context, e *Emitter, d time.Duration, l Listener) error {
	id := e.Start(d, l)
	return Run(ctx, e, id, DefaultInterval)
}
