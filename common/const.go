package common

// Arena dimensions. The original tuning (enemy speeds, the 600px bomb splash
// radius, boss anchor points) is against a fixed 1920x1080 canvas, so the
// arena keeps those absolute units and the window scales the view.
const (
	ArenaWidth  = 1920.0
	ArenaHeight = 1080.0
)

// Simulation tick rate. Every timer in the core counts ticks, never wall
// clock, so a run is deterministic for a given input schedule.
const (
	TickRate    = 60
	StepSeconds = 1.0 / TickRate
	StepMillis  = 1000.0 / TickRate
)

// MaxFrameSeconds caps how much real time a single frame may contribute to
// the tick accumulator. Without the cap, resuming a suspended process would
// drain a burst of catch-up ticks.
const MaxFrameSeconds = 0.25

// TicksFromMillis converts a millisecond duration into whole ticks, rounding
// to nearest and never below one tick for a positive duration.
func TicksFromMillis(ms float64) int {
	if ms <= 0 {
		return 0
	}
	t := int(ms/StepMillis + 0.5)
	if t < 1 {
		t = 1
	}
	return t
}

// TicksFromSeconds converts seconds into whole ticks.
func TicksFromSeconds(s float64) int {
	return TicksFromMillis(s * 1000)
}
