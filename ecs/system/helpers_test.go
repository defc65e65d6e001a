package system

import (
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/mbellows/notestrike/common"
	"github.com/mbellows/notestrike/ecs"
	"github.com/mbellows/notestrike/ecs/component"
)

// fixture is a minimal playable world: one session, one player at the arena
// center, and shared tuning. Tests call systems directly so events are never
// flushed between assertions.
type fixture struct {
	w       *ecs.World
	tuning  *Tuning
	tokens  *TokenSource
	rng     *rand.Rand
	session *component.Session
	player  ecs.Entity
}

func newFixture(t *testing.T, mode component.Mode) *fixture {
	t.Helper()

	tuning := NewTuning("normal")
	rng := rand.New(rand.NewSource(1))
	tokens := NewTokenSource(mode, tuning, rng)

	w := ecs.NewWorld()

	session := &component.Session{
		Mode:       mode,
		Difficulty: "normal",
		Level:      1,
		Health:     tuning.Game.Player.MaxHealth,
		MaxHealth:  tuning.Game.Player.MaxHealth,
		Ammo: component.Ammo{
			Current:       tuning.Game.Ammo.Max,
			Max:           tuning.Game.Ammo.Max,
			RechargeTicks: tuning.RechargeTicks(),
		},
		WaveQuota:  tuning.WaveQuota(1),
		SpawnTimer: tuning.SpawnCadenceTicks(1),
	}
	sessionEnt := ecs.CreateEntity(w)
	if err := ecs.Add(w, sessionEnt, component.SessionComponent.Kind(), session); err != nil {
		t.Fatalf("session: %v", err)
	}

	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{
		Pos: cp.Vector{X: common.ArenaWidth / 2, Y: common.ArenaHeight / 2},
	}); err != nil {
		t.Fatalf("player transform: %v", err)
	}
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{
		HitRadius: tuning.Game.Player.HitRadius,
	}); err != nil {
		t.Fatalf("player tag: %v", err)
	}

	return &fixture{w: w, tuning: tuning, tokens: tokens, rng: rng, session: session, player: player}
}

func (f *fixture) spawnEnemy(t *testing.T, tokens []string, seq int, pos cp.Vector) (ecs.Entity, *component.Enemy) {
	t.Helper()
	e := ecs.CreateEntity(f.w)
	enemy := &component.Enemy{
		Tokens:        tokens,
		SpawnSeq:      seq,
		Speed:         f.tuning.EnemySpeed(),
		ContactDamage: f.tuning.Game.Wave.ContactDamage,
	}
	if err := ecs.Add(f.w, e, component.EnemyComponent.Kind(), enemy); err != nil {
		t.Fatalf("enemy: %v", err)
	}
	if err := ecs.Add(f.w, e, component.TransformComponent.Kind(), &component.Transform{Pos: pos}); err != nil {
		t.Fatalf("enemy transform: %v", err)
	}
	if seq > f.session.SpawnSeq {
		f.session.SpawnSeq = seq
	}
	return e, enemy
}

func (f *fixture) spawnBoss(t *testing.T, phase component.BossPhase, challenge component.Challenge) (ecs.Entity, *component.Boss) {
	t.Helper()
	spec := f.tuning.Game.Boss
	e := ecs.CreateEntity(f.w)
	boss := &component.Boss{
		Phase:     phase,
		Health:    f.tuning.BossHealth(f.session.Level),
		Challenge: challenge,
		NoteCount: spec.NoteCount,
		WordCount: spec.WordCount,

		Anchor:        cp.Vector{X: common.ArenaWidth / 2, Y: common.ArenaHeight * 0.3},
		Speed:         spec.Speed,
		Pattern:       component.PatternWander,
		MinCenterDist: spec.MinCenterDist,

		ChargeTicks: f.tuning.ChargeTicks(),

		AttackDamage:     spec.AttackDamage,
		AttackRadius:     spec.AttackRadius,
		AttackDelayTicks: f.tuning.AttackDelayTicks(),
		AttackVariant:    "bolt",
	}
	if err := ecs.Add(f.w, e, component.BossComponent.Kind(), boss); err != nil {
		t.Fatalf("boss: %v", err)
	}
	if err := ecs.Add(f.w, e, component.TransformComponent.Kind(), &component.Transform{Pos: boss.Anchor}); err != nil {
		t.Fatalf("boss transform: %v", err)
	}
	f.session.BossSpawned = true
	return e, boss
}

// eventCount tallies pending events of one type without draining.
func (f *fixture) eventCount(eventType string) int {
	n := 0
	for _, evt := range f.w.Events().Pending() {
		if evt.Type == eventType {
			n++
		}
	}
	return n
}

func (f *fixture) playerPos() cp.Vector {
	tf, _ := ecs.Get(f.w, f.player, component.TransformComponent.Kind())
	return tf.Pos
}
