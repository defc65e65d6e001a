package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/mbellows/notestrike/common"
	"github.com/mbellows/notestrike/ecs"
	"github.com/mbellows/notestrike/ecs/component"
)

// HomingSystem moves live enemies toward the player at constant speed with
// a lateral zigzag. Dying enemies do not move.
type HomingSystem struct{}

func NewHomingSystem() *HomingSystem { return &HomingSystem{} }

func (s *HomingSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	playerPos, ok := playerPosition(w)
	if !ok {
		return
	}

	ecs.ForEach2(w,
		component.EnemyComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, enemy *component.Enemy, tf *component.Transform) {
			if enemy == nil || tf == nil || enemy.Dying {
				return
			}

			dir := common.Direction(tf.Pos, playerPos)
			if dir.Length() == 0 {
				// Already at the player; the contact system handles it.
				return
			}

			enemy.ZigPhase += 0.1
			// Zigzag drifts perpendicular to the homing direction.
			perp := cp.Vector{X: -dir.Y, Y: dir.X}
			lateral := math.Sin(enemy.ZigPhase) * enemy.ZigAmplitude * common.StepSeconds

			step := dir.Mult(enemy.Speed * common.StepSeconds).Add(perp.Mult(lateral))
			tf.Pos = tf.Pos.Add(step)
		})
}

func playerPosition(w *ecs.World) (cp.Vector, bool) {
	playerEnt, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return cp.Vector{}, false
	}
	tf, ok := ecs.Get(w, playerEnt, component.TransformComponent.Kind())
	if !ok || tf == nil {
		return cp.Vector{}, false
	}
	return tf.Pos, true
}
