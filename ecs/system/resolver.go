package system

import (
	"github.com/mbellows/notestrike/ecs"
	"github.com/mbellows/notestrike/ecs/component"
)

// ResolverSystem arbitrates played tokens against the live target set.
// Priority for each token: live powerup pre-check, then an Active boss
// whose challenge requires the token, then the first matching regular enemy
// in spawn order, else a miss. All consequences (combo, ammo, score,
// boss interrupt) apply synchronously in the tick that consumes the token.
type ResolverSystem struct {
	tuning *Tuning
	tokens *TokenSource

	queue []string
}

func NewResolverSystem(tuning *Tuning, tokens *TokenSource) *ResolverSystem {
	return &ResolverSystem{tuning: tuning, tokens: tokens}
}

// Enqueue feeds one normalized input token (a note name or an uppercase
// letter) into the next tick.
func (s *ResolverSystem) Enqueue(token string) {
	if token == "" {
		return
	}
	s.queue = append(s.queue, token)
}

func (s *ResolverSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pending := s.queue
	s.queue = nil
	if len(pending) == 0 {
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

	for _, token := range pending {
		s.resolve(w, session, token)
	}
}

func (s *ResolverSystem) resolve(w *ecs.World, session *component.Session, token string) {
	// Powerup pre-check. In typing mode a matching letter is consumed by
	// the powerup alone (ammo-free, no enemy targeting); in music mode
	// the note progresses the powerup and then resolves normally too.
	// The asymmetry is the original behavior, kept on purpose.
	if consumed := s.tryPowerup(w, session, token); consumed {
		return
	}

	if s.tryBoss(w, session, token) {
		return
	}
	if s.tryEnemy(w, session, token) {
		return
	}
	s.miss(w, session)
}

func (s *ResolverSystem) tryPowerup(w *ecs.World, session *component.Session, token string) bool {
	powerupEnt, ok := ecs.First(w, component.PowerupComponent.Kind())
	if !ok {
		return false
	}
	powerup, _ := ecs.Get(w, powerupEnt, component.PowerupComponent.Kind())
	if powerup == nil || !powerup.Challenge.Matches(token) {
		return false
	}

	outcome := powerup.Challenge.Apply(token)
	if outcome == component.ChallengeCompleted {
		s.activatePowerup(w, session, powerup)
		ecs.DestroyEntity(w, powerupEnt)
	}

	// Typing mode: the powerup consumes the input outright.
	return session.Mode == component.ModeTyping
}

func (s *ResolverSystem) activatePowerup(w *ecs.World, session *component.Session, powerup *component.Powerup) {
	switch powerup.Effect {
	case component.PowerupMultishot:
		session.MultishotTicks = s.tuning.MultishotTicks()
	case component.PowerupSplash:
		session.SplashTicks = s.tuning.SplashTicks()
	case component.PowerupHeal:
		session.HealFull()
	}
	w.Events().Push(ecs.Event{Type: ecs.EventPowerupActivated, Data: powerup.Effect.String()})
}

func (s *ResolverSystem) tryBoss(w *ecs.World, session *component.Session, token string) bool {
	bossEnt, ok := ecs.First(w, component.BossComponent.Kind())
	if !ok {
		return false
	}
	boss, _ := ecs.Get(w, bossEnt, component.BossComponent.Kind())
	if boss == nil || boss.Phase != component.BossActive || !boss.Challenge.Matches(token) {
		return false
	}

	outcome := boss.Challenge.Apply(token)
	s.award(w, session, s.tuning.Game.Score.BossToken)
	w.Events().Push(ecs.Event{Type: ecs.EventNoteHit, Data: token})

	if outcome != component.ChallengeCompleted {
		return true
	}

	// Full clear: one health decrement, charge interrupt, recovery
	// freeze, and a fresh challenge of the same shape.
	session.AddScore(s.tuning.Game.Score.ChallengeClear)
	boss.Health--
	boss.Charge = 0
	w.Events().Emit(ecs.EventBossHurt)

	if boss.Health <= 0 {
		boss.Phase = component.BossDying
		boss.PhaseTimer = s.tuning.BossDyingTicks()
		w.Events().Emit(ecs.EventBossDied)
		return true
	}

	boss.FreezeTicks = s.tuning.FreezeTicks()
	boss.Challenge = s.tokens.BossChallenge(session.Level, boss.NoteCount, boss.WordCount)
	boss.RotateTimer = boss.RotateTicks
	return true
}

func (s *ResolverSystem) tryEnemy(w *ecs.World, session *component.Session, token string) bool {
	target, enemy := s.findEnemy(w, token, 0)
	if enemy == nil {
		return false
	}

	firstSeq := enemy.SpawnSeq
	s.hitEnemy(w, session, target, enemy, token)

	// Multishot: one extra matching target per press while the effect
	// window is open.
	if session.MultishotTicks > 0 {
		if extraEnt, extra := s.findEnemy(w, token, firstSeq); extra != nil {
			s.hitEnemy(w, session, extraEnt, extra, token)
		}
	}
	return true
}

// findEnemy returns the hittable enemy with the lowest spawn sequence above
// afterSeq whose current required token matches.
func (s *ResolverSystem) findEnemy(w *ecs.World, token string, afterSeq int) (ecs.Entity, *component.Enemy) {
	var bestEnt ecs.Entity
	var best *component.Enemy
	ecs.ForEach(w, component.EnemyComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy) {
		if enemy == nil || !enemy.Hittable() || enemy.SpawnSeq <= afterSeq {
			return
		}
		if enemy.CurrentToken() != token {
			return
		}
		if best == nil || enemy.SpawnSeq < best.SpawnSeq {
			bestEnt, best = e, enemy
		}
	})
	return bestEnt, best
}

func (s *ResolverSystem) hitEnemy(w *ecs.World, session *component.Session, e ecs.Entity, enemy *component.Enemy, token string) {
	defeated := enemy.AdvanceHit()
	w.Events().Push(ecs.Event{Type: ecs.EventNoteHit, Data: token})

	if defeated {
		s.award(w, session, s.tuning.Game.Score.NoteHit+s.tuning.Game.Score.EnemyDefeated)
		s.killEnemy(w, session, e, enemy)
		if session.SplashTicks > 0 {
			s.splash(w, session, e)
		}
		return
	}
	s.award(w, session, s.tuning.Game.Score.LetterProgress)
}

// killEnemy moves an enemy into its dying grace period: it stops moving and
// matching input and counts toward the defeated quota.
func (s *ResolverSystem) killEnemy(w *ecs.World, session *component.Session, e ecs.Entity, enemy *component.Enemy) {
	enemy.Dying = true
	session.WaveDefeated++
	_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Ticks: s.tuning.EnemyDyingTicks()})
}

// splash defeats every other live enemy within the splash radius of the
// defeated one. Splash kills score but do not grow the combo.
func (s *ResolverSystem) splash(w *ecs.World, session *component.Session, around ecs.Entity) {
	centerTf, ok := ecs.Get(w, around, component.TransformComponent.Kind())
	if !ok || centerTf == nil {
		return
	}
	radius := s.tuning.Game.Powerup.SplashRadius

	ecs.ForEach2(w,
		component.EnemyComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, enemy *component.Enemy, tf *component.Transform) {
			if e == around || enemy == nil || tf == nil || !enemy.Hittable() {
				return
			}
			if tf.Pos.Distance(centerTf.Pos) > radius {
				return
			}
			enemy.Progress = len(enemy.Tokens)
			session.AddScore(s.tuning.Game.Score.EnemyDefeated)
			s.killEnemy(w, session, e, enemy)
		})
}

// award adds multiplied score and grows the combo for one successful
// partial or full hit.
func (s *ResolverSystem) award(w *ecs.World, session *component.Session, base int) {
	session.AddScore(base)
	if session.Combo.Increment() {
		w.Events().Push(ecs.Event{Type: ecs.EventMultiplierUp, Data: session.Combo.Multiplier()})
	}
}

func (s *ResolverSystem) miss(w *ecs.World, session *component.Session) {
	if !session.Ammo.SpendMiss() {
		// Empty chamber: the attempt is rejected with no combo or ammo
		// consequence.
		w.Events().Emit(ecs.EventEmptyChamber)
		return
	}

	w.Events().Emit(ecs.EventMiss)
	if lost := session.Combo.Break(); lost > 0 {
		w.Events().Push(ecs.Event{Type: ecs.EventComboBroken, Data: lost})
	}

	// Typing mode: a wrong letter wipes the boss's typed progress, not
	// its health.
	if session.Mode == component.ModeTyping {
		if bossEnt, ok := ecs.First(w, component.BossComponent.Kind()); ok {
			if boss, ok := ecs.Get(w, bossEnt, component.BossComponent.Kind()); ok && boss.Phase == component.BossActive {
				boss.Challenge.ResetProgress()
			}
		}
	}
}
