package component

import "github.com/jakecoffman/cp"

// BossPhase is the boss lifecycle. Phases only ever advance in order; the
// Active charge/interrupt sub-cycle repeats but never leaves Active except
// into Dying.
type BossPhase int

const (
	BossEntering BossPhase = iota
	BossCountdown
	BossRevealing
	BossActive
	BossDying
)

func (p BossPhase) String() string {
	switch p {
	case BossEntering:
		return "entering"
	case BossCountdown:
		return "countdown"
	case BossRevealing:
		return "revealing"
	case BossActive:
		return "active"
	case BossDying:
		return "dying"
	}
	return "unknown"
}

// MovePattern is the closed set of Active-phase movement rules.
type MovePattern int

const (
	PatternWander MovePattern = iota
	PatternAggressive
	PatternSlow
	PatternErratic
	PatternTeleport
	PatternCircular
	// PatternScripted defers target picking to a tengo hook.
	PatternScripted
)

var patternNames = map[MovePattern]string{
	PatternWander:     "wander",
	PatternAggressive: "aggressive",
	PatternSlow:       "slow",
	PatternErratic:    "erratic",
	PatternTeleport:   "teleport",
	PatternCircular:   "circular",
	PatternScripted:   "scripted",
}

func (p MovePattern) String() string {
	if name, ok := patternNames[p]; ok {
		return name
	}
	return "wander"
}

// MovePatterns is the selectable set (scripted excluded; that one is opted
// into explicitly via a script file).
var MovePatterns = []MovePattern{
	PatternWander, PatternAggressive, PatternSlow,
	PatternErratic, PatternTeleport, PatternCircular,
}

// Boss is the encounter adversary. At most one exists.
type Boss struct {
	Phase  BossPhase
	Health int

	Challenge Challenge
	// Challenge regeneration shape: how many notes (music) or words
	// (typing) each fresh set carries.
	NoteCount int
	WordCount int

	// Entrance path and Active-phase movement.
	Anchor        cp.Vector
	Speed         float64
	Pattern       MovePattern
	MoveTarget    cp.Vector
	MoveTimer     int
	CircleAngle   float64
	MinCenterDist float64

	// Countdown/reveal/dying bookkeeping. PhaseTimer counts down within
	// the current phase; CountdownValue is the visible 3..1 digit.
	PhaseTimer     int
	CountdownValue int
	TokensVisible  bool

	// Charge/interrupt cycle. Charge accumulates per tick while not
	// frozen; firing resets it. FreezeTicks is the post-interrupt recovery
	// window during which charge is halted and movement throttled.
	Charge      int
	ChargeTicks int
	FreezeTicks int

	// Hard-difficulty token rotation of the unconsumed remainder.
	RotateEnabled bool
	RotateTicks   int
	RotateTimer   int

	// Attack tuning resolved from config at creation.
	AttackDamage     int
	AttackRadius     float64
	AttackDelayTicks int
	AttackVariant    string
}

// Frozen reports whether the post-interrupt recovery window is active.
func (b *Boss) Frozen() bool {
	return b.FreezeTicks > 0
}

var BossComponent = NewComponent[Boss]()
