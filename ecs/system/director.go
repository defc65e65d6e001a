package system

import (
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/mbellows/notestrike/common"
	"github.com/mbellows/notestrike/ecs"
	"github.com/mbellows/notestrike/ecs/component"
)

// DirectorSystem is the top-level orchestration: it decides when the wave
// may spawn, when the boss fight starts, when the level is complete, and
// when the run ends. It runs first each tick.
type DirectorSystem struct {
	tuning *Tuning
	tokens *TokenSource
	rng    *rand.Rand
}

func NewDirectorSystem(tuning *Tuning, tokens *TokenSource, rng *rand.Rand) *DirectorSystem {
	return &DirectorSystem{tuning: tuning, tokens: tokens, rng: rng}
}

func (s *DirectorSystem) Update(w *ecs.World) {
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

	// End-of-run check. The summary is produced exactly once, here, no
	// matter which subsystem drove health to zero this tick.
	if session.Health <= 0 {
		session.GameOver = true
		session.Summary = &component.Summary{
			FinalScore:   session.Score,
			LevelReached: session.Level,
			MaxCombo:     session.Combo.Max,
			Difficulty:   session.Difficulty,
			Mode:         session.Mode,
		}
		w.Events().Push(ecs.Event{Type: ecs.EventGameOver, Data: session.Summary})
		return
	}

	aliveEnemies := ecs.Count(w, component.EnemyComponent.Kind())
	_, bossAlive := ecs.First(w, component.BossComponent.Kind())

	// Quota met, field clear, no boss yet: start the boss fight. This
	// happens exactly once per level.
	if !session.BossSpawned && session.WaveDefeated >= session.WaveQuota && aliveEnemies == 0 {
		s.spawnBoss(w, session)
		session.BossSpawned = true
		return
	}

	// The boss existed and is now gone: the level is done. The session
	// freezes here until the shell requests the next level.
	if session.BossSpawned && !bossAlive {
		session.LevelComplete = true
		w.Events().Emit(ecs.EventLevelComplete)
	}
}

func (s *DirectorSystem) spawnBoss(w *ecs.World, session *component.Session) {
	boss := ecs.CreateEntity(w)

	spec := s.tuning.Game.Boss
	pattern := component.MovePatterns[s.rng.Intn(len(component.MovePatterns))]

	// Off-field spawn above the arena, anchored to the upper third.
	spawn := cp.Vector{X: common.ArenaWidth / 2, Y: -120}
	anchor := cp.Vector{X: common.ArenaWidth / 2, Y: common.ArenaHeight * 0.3}

	_ = ecs.Add(w, boss, component.TransformComponent.Kind(), &component.Transform{Pos: spawn})
	_ = ecs.Add(w, boss, component.BossComponent.Kind(), &component.Boss{
		Phase:  component.BossEntering,
		Health: s.tuning.BossHealth(session.Level),

		Challenge: s.tokens.BossChallenge(session.Level, spec.NoteCount, spec.WordCount),
		NoteCount: spec.NoteCount,
		WordCount: spec.WordCount,

		Anchor:        anchor,
		Speed:         spec.Speed,
		Pattern:       pattern,
		MinCenterDist: spec.MinCenterDist,

		ChargeTicks: s.tuning.ChargeTicks(),

		RotateEnabled: s.tuning.Difficulty.RotateTokens && s.tuning.RotateTicks() > 0,
		RotateTicks:   s.tuning.RotateTicks(),
		RotateTimer:   s.tuning.RotateTicks(),

		AttackDamage:     spec.AttackDamage,
		AttackRadius:     spec.AttackRadius,
		AttackDelayTicks: s.tuning.AttackDelayTicks(),
		AttackVariant:    bossAttackVariants[s.rng.Intn(len(bossAttackVariants))],
	})
}

// Cosmetic attack variant tags. Presentation picks visuals/sound per tag;
// the core treats every variant identically.
var bossAttackVariants = []string{
	"bolt", "shard", "wave", "spiral", "lance", "burst", "rain", "beam",
}

// AdvanceLevel moves a frozen, level-complete session into the next level.
// Wave and boss state reset; health deliberately does not.
func (s *DirectorSystem) AdvanceLevel(w *ecs.World) {
	sessionEnt, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return
	}
	session, _ := ecs.Get(w, sessionEnt, component.SessionComponent.Kind())
	if session == nil || !session.LevelComplete {
		return
	}

	session.Level++
	session.LevelComplete = false
	session.BossSpawned = false
	session.WaveDefeated = 0
	session.WaveQuota = s.tuning.WaveQuota(session.Level)
	session.SpawnTimer = s.tuning.SpawnCadenceTicks(session.Level)
	session.PowerupTimer = 0

	// Clear leftover transient entities (stray attacks, dying enemies,
	// powerups). The player and session entities stay.
	clearTransient(w)
}

func clearTransient(w *ecs.World) {
	var doomed []ecs.Entity
	ecs.ForEach(w, component.EnemyComponent.Kind(), func(e ecs.Entity, _ *component.Enemy) {
		doomed = append(doomed, e)
	})
	ecs.ForEach(w, component.AttackComponent.Kind(), func(e ecs.Entity, _ *component.Attack) {
		doomed = append(doomed, e)
	})
	ecs.ForEach(w, component.PowerupComponent.Kind(), func(e ecs.Entity, _ *component.Powerup) {
		doomed = append(doomed, e)
	})
	for _, e := range doomed {
		ecs.DestroyEntity(w, e)
	}
}
