package system

import (
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/mbellows/notestrike/common"
	"github.com/mbellows/notestrike/ecs"
	"github.com/mbellows/notestrike/ecs/component"
)

// SpawnSystem runs the enemy wave: one enemy per cadence interval until the
// level's defeated quota is met, never during a boss fight.
type SpawnSystem struct {
	tuning *Tuning
	tokens *TokenSource
	rng    *rand.Rand
}

func NewSpawnSystem(tuning *Tuning, tokens *TokenSource, rng *rand.Rand) *SpawnSystem {
	return &SpawnSystem{tuning: tuning, tokens: tokens, rng: rng}
}

func (s *SpawnSystem) Update(w *ecs.World) {
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
	if session.BossSpawned || session.WaveDefeated >= session.WaveQuota {
		return
	}

	if session.SpawnTimer > 0 {
		session.SpawnTimer--
		return
	}
	session.SpawnTimer = s.tuning.SpawnCadenceTicks(session.Level)

	s.spawnEnemy(w, session)
}

func (s *SpawnSystem) spawnEnemy(w *ecs.World, session *component.Session) {
	e := ecs.CreateEntity(w)
	session.SpawnSeq++

	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Pos: s.edgePosition(),
	})
	_ = ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{
		Tokens:        s.tokens.EnemyTokens(session.Level),
		SpawnSeq:      session.SpawnSeq,
		Speed:         s.tuning.EnemySpeed(),
		ZigAmplitude:  s.tuning.Game.Wave.ZigAmplitude,
		ZigPhase:      s.rng.Float64() * 6.28318,
		ContactDamage: s.tuning.Game.Wave.ContactDamage,
	})
}

// edgePosition picks a random point just outside one of the four arena
// edges, so enemies drift in from off-screen.
func (s *SpawnSystem) edgePosition() cp.Vector {
	const margin = 60.0
	switch s.rng.Intn(4) {
	case 0:
		return cp.Vector{X: s.rng.Float64() * common.ArenaWidth, Y: -margin}
	case 1:
		return cp.Vector{X: s.rng.Float64() * common.ArenaWidth, Y: common.ArenaHeight + margin}
	case 2:
		return cp.Vector{X: -margin, Y: s.rng.Float64() * common.ArenaHeight}
	default:
		return cp.Vector{X: common.ArenaWidth + margin, Y: s.rng.Float64() * common.ArenaHeight}
	}
}
