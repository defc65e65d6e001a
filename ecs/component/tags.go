package component

// PlayerTag marks the player entity. The player carries a Transform and a
// hit radius; everything else about the player lives on the session.
type PlayerTag struct {
	HitRadius float64
}

var PlayerTagComponent = NewComponent[PlayerTag]()
