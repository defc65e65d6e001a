package system

import (
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/mbellows/notestrike/common"
	"github.com/mbellows/notestrike/ecs"
	"github.com/mbellows/notestrike/ecs/component"
)

func TestBossMoveRespectsCenterExclusion(t *testing.T) {
	f := newFixture(t, component.ModeMusic)
	sys := NewBossMoveSystem(f.tuning, f.rng)
	bossEnt, boss := f.spawnBoss(t, component.BossActive, component.NewMusicChallenge([]string{"C4"}))
	boss.Pattern = component.PatternAggressive

	tf, _ := ecs.Get(f.w, bossEnt, component.TransformComponent.Kind())
	center := cp.Vector{X: common.ArenaWidth / 2, Y: common.ArenaHeight / 2}

	// Aggressive chases the player, who sits at the center; the exclusion
	// ring must keep the boss out no matter how long it chases.
	runTicks(sys, f.w, 2000)

	if d := tf.Pos.Distance(center); d < boss.MinCenterDist-1e-6 {
		t.Fatalf("boss inside the exclusion ring: %v < %v", d, boss.MinCenterDist)
	}
}

func TestBossMoveStaysInArena(t *testing.T) {
	f := newFixture(t, component.ModeMusic)
	sys := NewBossMoveSystem(f.tuning, f.rng)
	bossEnt, boss := f.spawnBoss(t, component.BossActive, component.NewMusicChallenge([]string{"C4"}))
	boss.Pattern = component.PatternTeleport
	tf, _ := ecs.Get(f.w, bossEnt, component.TransformComponent.Kind())

	for i := 0; i < 1000; i++ {
		sys.Update(f.w)
		if tf.Pos.X < 0 || tf.Pos.X > common.ArenaWidth || tf.Pos.Y < 0 || tf.Pos.Y > common.ArenaHeight {
			t.Fatalf("boss left the arena at %v", tf.Pos)
		}
	}
}

func TestBossMoveOnlyWhileActive(t *testing.T) {
	f := newFixture(t, component.ModeMusic)
	sys := NewBossMoveSystem(f.tuning, f.rng)
	bossEnt, boss := f.spawnBoss(t, component.BossCountdown, component.NewMusicChallenge([]string{"C4"}))
	boss.Pattern = component.PatternWander
	tf, _ := ecs.Get(f.w, bossEnt, component.TransformComponent.Kind())
	start := tf.Pos

	runTicks(sys, f.w, 100)
	if tf.Pos != start {
		t.Fatalf("boss moved outside the active phase: %v -> %v", start, tf.Pos)
	}
}

func TestBossMoveFreezeThrottle(t *testing.T) {
	f := newFixture(t, component.ModeMusic)
	sys := NewBossMoveSystem(f.tuning, f.rng)
	bossEnt, boss := f.spawnBoss(t, component.BossActive, component.NewMusicChallenge([]string{"C4"}))
	boss.Pattern = component.PatternAggressive
	tf, _ := ecs.Get(f.w, bossEnt, component.TransformComponent.Kind())

	// Park the boss far from the player so every step moves full distance.
	tf.Pos = cp.Vector{X: 50, Y: 50}
	start := tf.Pos
	sys.Update(f.w)
	freeStep := tf.Pos.Distance(start)

	tf.Pos = start
	boss.FreezeTicks = 10
	sys.Update(f.w)
	frozenStep := tf.Pos.Distance(start)

	if frozenStep >= freeStep {
		t.Fatalf("freeze did not slow movement: %v vs %v", frozenStep, freeStep)
	}
	if frozenStep == 0 {
		t.Fatalf("freeze should throttle, not stop, movement")
	}
}

func TestHomingMovesTowardPlayer(t *testing.T) {
	f := newFixture(t, component.ModeMusic)
	sys := NewHomingSystem()
	enemyEnt, enemy := f.spawnEnemy(t, []string{"C4"}, 1, cp.Vector{X: 100, Y: 100})
	enemy.Speed = 120
	tf, _ := ecs.Get(f.w, enemyEnt, component.TransformComponent.Kind())

	start := tf.Pos.Distance(f.playerPos())
	runTicks(sys, f.w, 60)
	if d := tf.Pos.Distance(f.playerPos()); d >= start {
		t.Fatalf("enemy did not close on the player: %v -> %v", start, d)
	}
}

func TestHomingSkipsDyingEnemies(t *testing.T) {
	f := newFixture(t, component.ModeMusic)
	sys := NewHomingSystem()
	enemyEnt, enemy := f.spawnEnemy(t, []string{"C4"}, 1, cp.Vector{X: 100, Y: 100})
	enemy.Speed = 120
	enemy.Dying = true
	tf, _ := ecs.Get(f.w, enemyEnt, component.TransformComponent.Kind())

	start := tf.Pos
	runTicks(sys, f.w, 60)
	if tf.Pos != start {
		t.Fatalf("dying enemy moved: %v -> %v", start, tf.Pos)
	}
}
