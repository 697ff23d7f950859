package views

import (
	"sync"
	"time"
)

// timerGroup tracks the scheduled callbacks owned by a view so they can be
// cancelled together when the view is closed. A callback firing after Stop is
// a no-op because views re-check their closed flag before applying state.
type timerGroup struct {
	mu      sync.Mutex
	timers  []*time.Timer
	stopped bool
}

func (g *timerGroup) After(d time.Duration, fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.stopped {
		return
	}
	g.timers = append(g.timers, time.AfterFunc(d, fn))
}

func (g *timerGroup) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stopped = true
	for _, t := range g.timers {
		t.Stop()
	}
	g.timers = nil
}
