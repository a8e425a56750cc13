package main

import (
	"testing"
	"time"
)

func TestFrameClockElapsed(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	current := base
	c := newFrameClock(func() time.Time { return current })

	if got := c.elapsed(); got != 0 {
		t.Errorf("elapsed at start = %v, want 0", got)
	}
	current = base.Add(1500 * time.Millisecond)
	if got := c.elapsed(); got != 1.5 {
		t.Errorf("elapsed = %v, want 1.5", got)
	}
	// Variable tick intervals only shift how often the clock is read, never
	// what it reads.
	current = base.Add(1700 * time.Millisecond)
	if got := c.elapsed(); got != 1.7 {
		t.Errorf("elapsed = %v, want 1.7", got)
	}
}

func TestFrameClockStopSignal(t *testing.T) {
	c := newFrameClock(nil)
	if c.stopRequested() {
		t.Error("fresh clock already stopped")
	}
	c.requestStop()
	if !c.stopRequested() {
		t.Error("stop signal not observed")
	}
}
