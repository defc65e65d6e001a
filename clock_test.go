package main

import (
	"testing"
	"time"

	"github.com/mbellows/notestrike/common"
)

func TestFixedClockChunkingInvariance(t *testing.T) {
	// The same total elapsed time must yield the same tick count no matter
	// how the frames sliced it, as long as no single frame hits the cap.
	const total = 0.96

	chunkings := []struct {
		name   string
		deltas []float64
	}{
		{"sixty_fps", repeat(0.016, 60)},
		{"eight_fps", repeat(0.12, 8)},
		{"uneven", []float64{0.2, 0.01, 0.24, 0.05, 0.24, 0.22}},
	}

	step := common.StepSeconds
	want := int(total / step)
	for _, c := range chunkings {
		t.Run(c.name, func(t *testing.T) {
			sum := 0.0
			for _, d := range c.deltas {
				sum += d
			}
			if diff := sum - total; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("chunking does not sum to %v: %v", total, sum)
			}

			clock := NewFixedClock()
			ticks := 0
			for _, d := range c.deltas {
				ticks += clock.AdvanceBy(d)
			}
			if ticks != want {
				t.Fatalf("got %d ticks, want %d", ticks, want)
			}
		})
	}
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestFixedClockFrameCap(t *testing.T) {
	clock := NewFixedClock()
	got := clock.AdvanceBy(5.0)
	want := int(common.MaxFrameSeconds / common.StepSeconds)
	if got != want {
		t.Fatalf("capped frame produced %d ticks, want %d", got, want)
	}
}

func TestFixedClockNegativeDelta(t *testing.T) {
	clock := NewFixedClock()
	if got := clock.AdvanceBy(-1); got != 0 {
		t.Fatalf("negative delta produced %d ticks", got)
	}
}

func TestFixedClockFirstAdvancePrimes(t *testing.T) {
	clock := NewFixedClock()
	now := time.Now()
	if got := clock.Advance(now); got != 0 {
		t.Fatalf("first Advance produced %d ticks", got)
	}
	if got := clock.Advance(now.Add(100 * time.Millisecond)); got != 6 {
		t.Fatalf("100ms produced %d ticks, want 6", got)
	}
}

func TestFixedClockRebaseDiscardsPause(t *testing.T) {
	clock := NewFixedClock()
	now := time.Now()
	clock.Advance(now)

	// A long pause, then Rebase: the paused span must not become ticks.
	resumed := now.Add(30 * time.Second)
	clock.Rebase(resumed)
	if got := clock.Advance(resumed.Add(17 * time.Millisecond)); got != 1 {
		t.Fatalf("post-rebase frame produced %d ticks, want 1", got)
	}
}
