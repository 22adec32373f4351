// Package refresh provides the periodic update plumbing: context-scoped
// tickers for the live dashboard pushes and a trailing-edge debouncer for
// coalescing bursts of triggers. Everything here stops cleanly when its
// context is cancelled, so repeated service restarts never leak timers.
package refresh

import (
	"context"
	"sync"
	"time"
)

// Default cadences for the live refresh loops.
const (
	DefaultLiveInterval    = 5 * time.Second
	DefaultSummaryInterval = 10 * time.Second
)

// Tick runs fn every interval until ctx is cancelled. It returns
// immediately; the loop runs on its own goroutine. The done channel closes
// once the loop has fully stopped.
func Tick(ctx context.Context, interval time.Duration, fn func()) (done <-chan struct{}) {
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				fn()
			}
		}
	}()
	return stopped
}

// Debouncer coalesces bursts of Trigger calls into a single fn invocation
// after the quiet period elapses. Trailing-edge: the last trigger in a
// burst wins, and fn runs once per burst.
type Debouncer struct {
	quiet time.Duration
	fn    func()

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer that runs fn after quiet has elapsed
// since the most recent Trigger.
func NewDebouncer(quiet time.Duration, fn func()) *Debouncer {
	return &Debouncer{quiet: quiet, fn: fn}
}

// Trigger schedules (or reschedules) the pending invocation.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, d.fn)
}

// Stop cancels any pending invocation.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
