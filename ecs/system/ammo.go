package system

import (
	"github.com/mbellows/notestrike/ecs"
	"github.com/mbellows/notestrike/ecs/component"
)

// AmmoSystem refills the miss budget: one point back per recharge interval
// while below max. Misses reset the interval timer (in Ammo.SpendMiss).
type AmmoSystem struct {
	tuning *Tuning
}

func NewAmmoSystem(tuning *Tuning) *AmmoSystem {
	return &AmmoSystem{tuning: tuning}
}

func (s *AmmoSystem) Update(w *ecs.World) {
	if w == nil {
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

	ammo := &session.Ammo
	if ammo.Current >= ammo.Max {
		ammo.Timer = 0
		return
	}
	ammo.Timer++
	if ammo.Timer >= s.tuning.RechargeTicks() {
		ammo.Timer = 0
		ammo.Current++
	}
}
