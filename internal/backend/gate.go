package backend

import "time"

// loadGate enforces a minimum spacing between consecutive loads so a short
// poll interval cannot hammer the filesystem. Only the poller goroutine
// calls wait, so no locking is needed.
type loadGate struct {
	min  time.Duration
	last time.Time
}

func newLoadGate(min time.Duration) *loadGate {
	return &loadGate{min: min}
}

// wait sleeps until at least min has elapsed since the previous call. The
// first call and a non-positive min pass through immediately.
func (g *loadGate) wait() {
	if g == nil || g.min <= 0 {
		return
	}
	if !g.last.IsZero() {
		if d := g.min - time.Since(g.last); d > 0 {
			time.Sleep(d)
		}
	}
	g.last = time.Now()
}
