package main

import (
	"time"

	"github.com/mbellows/notestrike/common"
)

// FixedClock converts wall-clock frame deltas into a whole number of
// simulation steps. Leftover time stays in the accumulator so long-run
// tick counts depend only on total elapsed time, not on how the frames
// happened to slice it.
type FixedClock struct {
	last        time.Time
	accumulator float64
	started     bool
}

func NewFixedClock() *FixedClock {
	return &FixedClock{}
}

// Advance folds the delta since the previous call into the accumulator
// and returns how many fixed steps to run. A single frame delta is
// capped so a stall or debugger break cannot trigger a catch-up spiral.
func (c *FixedClock) Advance(now time.Time) int {
	if !c.started {
		c.last = now
		c.started = true
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return c.AdvanceBy(dt)
}

// AdvanceBy is Advance with an explicit delta in seconds.
func (c *FixedClock) AdvanceBy(dt float64) int {
	if dt < 0 {
		dt = 0
	}
	if dt > common.MaxFrameSeconds {
		dt = common.MaxFrameSeconds
	}
	c.accumulator += dt
	steps := 0
	for c.accumulator >= common.StepSeconds {
		c.accumulator -= common.StepSeconds
		steps++
	}
	return steps
}

// Rebase resets the reference point without accumulating the time that
// passed. Called when leaving a pause so paused wall time is discarded.
func (c *FixedClock) Rebase(now time.Time) {
	c.last = now
	c.started = true
}
