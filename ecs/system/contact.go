package system

import (
	"github.com/mbellows/notestrike/ecs"
	"github.com/mbellows/notestrike/ecs/component"
)

// ContactSystem applies enemy contact damage. An enemy that reaches the
// player's hitbox damages the session, breaks the combo, and is removed on
// the spot — a distinct "expired by contact" path that skips the dying
// grace period and does not count toward the defeated quota.
type ContactSystem struct{}

func NewContactSystem() *ContactSystem { return &ContactSystem{} }

func (s *ContactSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	playerEnt, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	playerTag, _ := ecs.Get(w, playerEnt, component.PlayerTagComponent.Kind())
	playerTf, _ := ecs.Get(w, playerEnt, component.TransformComponent.Kind())
	if playerTag == nil || playerTf == nil {
		return
	}

	sessionEnt, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return
	}
	session, _ := ecs.Get(w, sessionEnt, component.SessionComponent.Kind())
	if session == nil || session.GameOver {
		return
	}

	var expired []ecs.Entity
	ecs.ForEach2(w,
		component.EnemyComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, enemy *component.Enemy, tf *component.Transform) {
			if enemy == nil || tf == nil || enemy.Dying {
				return
			}
			if tf.Pos.Distance(playerTf.Pos) > playerTag.HitRadius {
				return
			}

			session.Damage(enemy.ContactDamage)
			w.Events().Emit(ecs.EventPlayerHurt)
			if lost := session.Combo.Break(); lost > 0 {
				w.Events().Push(ecs.Event{Type: ecs.EventComboBroken, Data: lost})
			}
			expired = append(expired, e)
		})

	for _, e := range expired {
		ecs.DestroyEntity(w, e)
	}
}
