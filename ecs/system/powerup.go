package system

import (
	"math/rand"

	"github.com/mbellows/notestrike/ecs"
	"github.com/mbellows/notestrike/ecs/component"
)

// PowerupSystem spawns at most one concurrent powerup challenge on a timed
// interval (never during a boss fight), expires it on timeout, and winds
// down active effect windows.
type PowerupSystem struct {
	tuning *Tuning
	tokens *TokenSource
	rng    *rand.Rand
}

func NewPowerupSystem(tuning *Tuning, tokens *TokenSource, rng *rand.Rand) *PowerupSystem {
	return &PowerupSystem{tuning: tuning, tokens: tokens, rng: rng}
}

var powerupEffects = []component.PowerupEffect{
	component.PowerupMultishot,
	component.PowerupSplash,
	component.PowerupHeal,
}

func (s *PowerupSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	sessionEnt, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return
	}
	session, _ := ecs.Get(w, sessionEnt, component.SessionComponent.Kind())
	if session == nil || session.GameOver || session.LevelComplete {
		return
	}

	// Effect windows count down regardless of what else is live.
	if session.MultishotTicks > 0 {
		session.MultishotTicks--
	}
	if session.SplashTicks > 0 {
		session.SplashTicks--
	}

	if powerupEnt, ok := ecs.First(w, component.PowerupComponent.Kind()); ok {
		powerup, _ := ecs.Get(w, powerupEnt, component.PowerupComponent.Kind())
		if powerup != nil {
			powerup.TimeoutTicks--
			if powerup.TimeoutTicks <= 0 {
				ecs.DestroyEntity(w, powerupEnt)
			}
		}
		return
	}

	// Spawning is suppressed for the whole boss portion of a level.
	if session.BossSpawned {
		session.PowerupTimer = 0
		return
	}

	session.PowerupTimer++
	if session.PowerupTimer < s.tuning.PowerupIntervalTicks() {
		return
	}
	session.PowerupTimer = 0

	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.PowerupComponent.Kind(), &component.Powerup{
		Challenge:    s.tokens.PowerupChallenge(session.Level),
		TimeoutTicks: s.tuning.PowerupTimeoutTicks(),
		Effect:       powerupEffects[s.rng.Intn(len(powerupEffects))],
	})
}
