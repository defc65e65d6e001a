package component

import "github.com/jakecoffman/cp"

// Attack is one telegraphed boss shot. It resolves deterministically after
// DelayTicks: the player is hit when its point lies within HitRadius of the
// origin→target segment. Variant is a cosmetic tag only; the core never
// branches on it.
type Attack struct {
	Origin     cp.Vector
	Target     cp.Vector
	DelayTicks int
	HitRadius  float64
	Damage     int
	Variant    string
}

var AttackComponent = NewComponent[Attack]()
