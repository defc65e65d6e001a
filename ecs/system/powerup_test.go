package system

import (
	"testing"

	"github.com/mbellows/notestrike/ecs"
	"github.com/mbellows/notestrike/ecs/component"
)

func (f *fixture) newPowerup() *PowerupSystem {
	return NewPowerupSystem(f.tuning, f.tokens, f.rng)
}

func TestPowerupSpawnsOnInterval(t *testing.T) {
	f := newFixture(t, component.ModeMusic)
	sys := f.newPowerup()

	interval := f.tuning.PowerupIntervalTicks()
	runTicks(sys, f.w, interval-1)
	if ecs.Count(f.w, component.PowerupComponent.Kind()) != 0 {
		t.Fatalf("powerup spawned early")
	}

	sys.Update(f.w)
	if ecs.Count(f.w, component.PowerupComponent.Kind()) != 1 {
		t.Fatalf("powerup should spawn at the interval")
	}

	// At most one concurrent powerup.
	runTicks(sys, f.w, interval)
	if got := ecs.Count(f.w, component.PowerupComponent.Kind()); got != 1 {
		t.Fatalf("powerup count = %d, want 1", got)
	}
}

func TestPowerupTimesOut(t *testing.T) {
	f := newFixture(t, component.ModeMusic)
	sys := f.newPowerup()

	e := ecs.CreateEntity(f.w)
	_ = ecs.Add(f.w, e, component.PowerupComponent.Kind(), &component.Powerup{
		Challenge:    component.NewMusicChallenge([]string{"C4"}),
		TimeoutTicks: 5,
		Effect:       component.PowerupSplash,
	})

	runTicks(sys, f.w, 4)
	if !ecs.IsAlive(f.w, e) {
		t.Fatalf("powerup expired early")
	}
	sys.Update(f.w)
	if ecs.IsAlive(f.w, e) {
		t.Fatalf("powerup should expire at its timeout")
	}
}

func TestPowerupSuppressedDuringBoss(t *testing.T) {
	f := newFixture(t, component.ModeMusic)
	sys := f.newPowerup()
	f.session.BossSpawned = true
	f.session.PowerupTimer = f.tuning.PowerupIntervalTicks() - 1

	runTicks(sys, f.w, 10)

	if ecs.Count(f.w, component.PowerupComponent.Kind()) != 0 {
		t.Fatalf("powerup spawned during a boss fight")
	}
	if f.session.PowerupTimer != 0 {
		t.Fatalf("interval progress should reset during the boss, got %d", f.session.PowerupTimer)
	}
}

func TestPowerupEffectWindowsCountDown(t *testing.T) {
	f := newFixture(t, component.ModeMusic)
	sys := f.newPowerup()
	f.session.MultishotTicks = 3
	f.session.SplashTicks = 1

	sys.Update(f.w)
	if f.session.MultishotTicks != 2 || f.session.SplashTicks != 0 {
		t.Fatalf("windows = %d/%d, want 2/0", f.session.MultishotTicks, f.session.SplashTicks)
	}

	runTicks(sys, f.w, 5)
	if f.session.MultishotTicks != 0 || f.session.SplashTicks != 0 {
		t.Fatalf("windows should bottom out at zero")
	}
}

func TestTTLRemovesExpired(t *testing.T) {
	f := newFixture(t, component.ModeMusic)
	sys := NewTTLSystem()

	e := ecs.CreateEntity(f.w)
	_ = ecs.Add(f.w, e, component.TTLComponent.Kind(), &component.TTL{Ticks: 3})

	runTicks(sys, f.w, 2)
	if !ecs.IsAlive(f.w, e) {
		t.Fatalf("entity removed before its timer ran out")
	}
	sys.Update(f.w)
	if ecs.IsAlive(f.w, e) {
		t.Fatalf("expired entity should be removed")
	}
}
