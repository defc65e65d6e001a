package component

// Enemy is a regular wave enemy. It carries one note token or a short
// ordered letter sequence; Progress is the consumed prefix.
type Enemy struct {
	Tokens   []string
	Progress int

	// SpawnSeq orders enemies for input arbitration: the first spawned
	// matching enemy takes the hit.
	SpawnSeq int

	Speed         float64
	ZigAmplitude  float64
	ZigPhase      float64
	ContactDamage int

	// Dying enemies no longer move or match input; they are a timer
	// counting toward removal (see TTL).
	Dying bool
}

// CurrentToken returns the next required token, or "" once defeated.
func (e *Enemy) CurrentToken() string {
	if e.Progress >= len(e.Tokens) {
		return ""
	}
	return e.Tokens[e.Progress]
}

// Hittable reports whether the enemy can still take input.
func (e *Enemy) Hittable() bool {
	return !e.Dying && e.Progress < len(e.Tokens)
}

// AdvanceHit consumes one letter and reports whether that defeated the
// enemy (full sequence consumed).
func (e *Enemy) AdvanceHit() bool {
	if !e.Hittable() {
		return false
	}
	e.Progress++
	return e.Progress >= len(e.Tokens)
}

var EnemyComponent = NewComponent[Enemy]()
