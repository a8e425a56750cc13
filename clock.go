package main

import (
	"sync/atomic"
	"time"
)

// frameClock tracks elapsed simulation time and carries the explicit stop
// signal for the frame loop. Time is wall-clock based so the visualization
// stays correct under variable tick intervals.
type frameClock struct {
	now     func() time.Time
	start   time.Time
	stopped atomic.Bool
}

// newFrameClock starts a clock at the current instant. The time source is
// injectable for tests.
func newFrameClock(now func() time.Time) *frameClock {
	if now == nil {
		now = time.Now
	}
	return &frameClock{now: now, start: now()}
}

// elapsed returns seconds since the clock started.
func (c *frameClock) elapsed() float64 {
	return c.now().Sub(c.start).Seconds()
}

// requestStop signals the frame loop to terminate on its next tick.
func (c *frameClock) requestStop() {
	c.stopped.Store(true)
}

// stopRequested reports whether the loop should terminate.
func (c *frameClock) stopRequested() bool {
	return c.stopped.Load()
}
