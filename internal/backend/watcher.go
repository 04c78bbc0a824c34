// Package backend polls the options file so externally edited entries reach
// the live widget without a restart.
package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/popup-select/internal/options"
	"github.com/atomicstack/popup-select/internal/widget"
)

// Event conveys a freshly loaded option list or an error from a poll.
type Event struct {
	Options []widget.Option
	Err     error
}

// Watcher polls the options file at a fixed interval and publishes events.
type Watcher struct {
	path     string
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// DefaultLoadGap is the minimum spacing between file loads callers should
// use unless they have a reason to poll harder.
const DefaultLoadGap = 250 * time.Millisecond

// NewWatcher creates a watcher that reloads path every interval, never
// loading more often than minGap allows. A non-positive minGap disables the
// floor.
func NewWatcher(path string, interval, minGap time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	gate := newLoadGate(minGap)
	w.wg.Add(1)
	go w.poll(func() ([]widget.Option, error) {
		gate.wait()
		return options.LoadFile(w.path)
	})

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of watcher events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current load
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller goroutine has exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll(load func() ([]widget.Option, error)) {
	defer w.wg.Done()

	emit := func() bool {
		opts, err := load()
		evt := Event{Options: opts, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
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
