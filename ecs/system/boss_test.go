package system

import (
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/mbellows/notestrike/ecs"
	"github.com/mbellows/notestrike/ecs/component"
)

func runTicks(sys ecs.System, w *ecs.World, n int) {
	for i := 0; i < n; i++ {
		sys.Update(w)
	}
}

func TestBossPhaseOrdering(t *testing.T) {
	f := newFixture(t, component.ModeMusic)
	sys := NewBossSystem(f.tuning, f.tokens)
	bossEnt, boss := f.spawnBoss(t, component.BossEntering, component.NewMusicChallenge([]string{"C4"}))

	// Spawned at the anchor, so the first tick finishes the entrance.
	sys.Update(f.w)
	if boss.Phase != component.BossCountdown {
		t.Fatalf("phase = %v, want countdown", boss.Phase)
	}
	if boss.CountdownValue != 3 {
		t.Fatalf("countdown starts at %d, want 3", boss.CountdownValue)
	}

	// Three full countdown steps: 3, 2, 1, then the reveal.
	step := f.tuning.CountdownStepTicks()
	runTicks(sys, f.w, step)
	if boss.CountdownValue != 2 {
		t.Fatalf("after one step countdown = %d, want 2", boss.CountdownValue)
	}
	runTicks(sys, f.w, 2*step)
	if boss.Phase != component.BossRevealing {
		t.Fatalf("phase = %v, want revealing", boss.Phase)
	}
	if boss.TokensVisible {
		t.Fatalf("tokens visible too early")
	}

	// Tokens appear partway through the reveal; charging arms at the end.
	runTicks(sys, f.w, f.tuning.RevealTokensAtTicks())
	if !boss.TokensVisible {
		t.Fatalf("tokens should be visible by the reveal midpoint")
	}
	if boss.Phase != component.BossRevealing {
		t.Fatalf("reveal ended early")
	}

	runTicks(sys, f.w, f.tuning.RevealTicks()-f.tuning.RevealTokensAtTicks())
	if boss.Phase != component.BossActive {
		t.Fatalf("phase = %v, want active", boss.Phase)
	}
	if boss.Charge != 0 {
		t.Fatalf("charge should arm at zero, got %d", boss.Charge)
	}
	if !ecs.IsAlive(f.w, bossEnt) {
		t.Fatalf("boss vanished during its own intro")
	}
}

func TestBossChargeFiresOnce(t *testing.T) {
	f := newFixture(t, component.ModeMusic)
	sys := NewBossSystem(f.tuning, f.tokens)
	_, boss := f.spawnBoss(t, component.BossActive, component.NewMusicChallenge([]string{"C4"}))

	// A full uninterrupted charge window: exactly one attack launches and
	// the charge resets, staying in Active.
	runTicks(sys, f.w, boss.ChargeTicks)

	if got := ecs.Count(f.w, component.AttackComponent.Kind()); got != 1 {
		t.Fatalf("attack entities = %d, want 1", got)
	}
	if f.eventCount(ecs.EventBossAttackFired) != 1 {
		t.Fatalf("attack events = %d, want 1", f.eventCount(ecs.EventBossAttackFired))
	}
	if boss.Charge != 0 {
		t.Fatalf("charge = %d, want 0 after firing", boss.Charge)
	}
	if boss.Phase != component.BossActive {
		t.Fatalf("firing must not leave the active phase")
	}

	// The cycle repeats.
	runTicks(sys, f.w, boss.ChargeTicks)
	if f.eventCount(ecs.EventBossAttackFired) != 2 {
		t.Fatalf("second window should fire again")
	}
}

func TestBossFreezeHaltsCharging(t *testing.T) {
	f := newFixture(t, component.ModeMusic)
	sys := NewBossSystem(f.tuning, f.tokens)
	_, boss := f.spawnBoss(t, component.BossActive, component.NewMusicChallenge([]string{"C4"}))
	boss.FreezeTicks = 30

	runTicks(sys, f.w, 30)
	if boss.Charge != 0 {
		t.Fatalf("frozen boss charged to %d", boss.Charge)
	}

	runTicks(sys, f.w, 10)
	if boss.Charge != 10 {
		t.Fatalf("charge should resume after the freeze, got %d", boss.Charge)
	}
}

func TestBossTokenRotationPreservesProgress(t *testing.T) {
	f := newFixture(t, component.ModeMusic)
	sys := NewBossSystem(f.tuning, f.tokens)
	_, boss := f.spawnBoss(t, component.BossActive, component.NewMusicChallenge([]string{"C4", "D4", "E4"}))
	boss.Challenge.Apply("D4")
	boss.RotateEnabled = true
	boss.RotateTicks = 5
	boss.RotateTimer = 5

	runTicks(sys, f.w, 5)

	if boss.Challenge.Tokens[1] != "D4" {
		t.Fatalf("cleared token rotated away: %v", boss.Challenge.Tokens)
	}
	if boss.Challenge.Consumed() != 1 {
		t.Fatalf("rotation changed progress: %d", boss.Challenge.Consumed())
	}
	if boss.RotateTimer != boss.RotateTicks {
		t.Fatalf("rotation timer should rewind, got %d", boss.RotateTimer)
	}
}

func TestBossDyingRemoval(t *testing.T) {
	f := newFixture(t, component.ModeMusic)
	sys := NewBossSystem(f.tuning, f.tokens)
	bossEnt, boss := f.spawnBoss(t, component.BossDying, component.NewMusicChallenge([]string{"C4"}))
	boss.PhaseTimer = 4

	runTicks(sys, f.w, 3)
	if !ecs.IsAlive(f.w, bossEnt) {
		t.Fatalf("boss removed before its death timer ran out")
	}
	sys.Update(f.w)
	if ecs.IsAlive(f.w, bossEnt) {
		t.Fatalf("boss should be removed when the death timer expires")
	}
}

func TestBossEnteringWalksToAnchor(t *testing.T) {
	f := newFixture(t, component.ModeMusic)
	sys := NewBossSystem(f.tuning, f.tokens)
	bossEnt, boss := f.spawnBoss(t, component.BossEntering, component.NewMusicChallenge([]string{"C4"}))
	tf, _ := ecs.Get(f.w, bossEnt, component.TransformComponent.Kind())
	tf.Pos = cp.Vector{X: boss.Anchor.X, Y: -120}

	start := tf.Pos.Distance(boss.Anchor)
	sys.Update(f.w)
	if boss.Phase != component.BossEntering {
		t.Fatalf("boss teleported through its entrance")
	}
	if d := tf.Pos.Distance(boss.Anchor); d >= start {
		t.Fatalf("boss did not approach the anchor: %v -> %v", start, d)
	}

	// Enough ticks to cover the whole path.
	runTicks(sys, f.w, 10000)
	if boss.Phase == component.BossEntering {
		t.Fatalf("boss never arrived")
	}
	if tf.Pos != boss.Anchor {
		t.Fatalf("arrival should snap to the anchor, got %v", tf.Pos)
	}
}
