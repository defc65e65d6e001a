package system

import (
	"github.com/mbellows/notestrike/ecs"
	"github.com/mbellows/notestrike/ecs/component"
)

// TTLSystem decrements tick-based TTL components and destroys entities when
// the countdown reaches zero. Dying-enemy grace periods use it.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var expired []ecs.Entity
	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		if ttl == nil {
			return
		}
		ttl.Ticks--
		if ttl.Ticks <= 0 {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		ecs.DestroyEntity(w, e)
	}
}
