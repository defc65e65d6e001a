package system

import (
	"github.com/mbellows/notestrike/common"
	"github.com/mbellows/notestrike/ecs"
	"github.com/mbellows/notestrike/ecs/component"
)

// AttackSystem resolves telegraphed boss attacks. After the delay elapses
// the check is purely geometric: the player is hit when its point is within
// the attack's radius of the origin→target segment. There is no miss path
// on the boss's side.
type AttackSystem struct{}

func NewAttackSystem() *AttackSystem { return &AttackSystem{} }

func (s *AttackSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	playerPos, ok := playerPosition(w)
	if !ok {
		return
	}
	sessionEnt, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return
	}
	session, _ := ecs.Get(w, sessionEnt, component.SessionComponent.Kind())
	if session == nil {
		return
	}

	var resolved []ecs.Entity
	ecs.ForEach(w, component.AttackComponent.Kind(), func(e ecs.Entity, attack *component.Attack) {
		if attack == nil {
			return
		}
		attack.DelayTicks--
		if attack.DelayTicks > 0 {
			return
		}

		if common.PointSegmentDistance(playerPos, attack.Origin, attack.Target) <= attack.HitRadius {
			session.Damage(attack.Damage)
			w.Events().Emit(ecs.EventPlayerHurt)
			if lost := session.Combo.Break(); lost > 0 {
				w.Events().Push(ecs.Event{Type: ecs.EventComboBroken, Data: lost})
			}
		}
		resolved = append(resolved, e)
	})

	for _, e := range resolved {
		ecs.DestroyEntity(w, e)
	}
}
