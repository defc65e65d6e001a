package component

import "github.com/jakecoffman/cp"

// Transform is an entity's position in arena units.
type Transform struct {
	Pos cp.Vector
}

var TransformComponent = NewComponent[Transform]()
