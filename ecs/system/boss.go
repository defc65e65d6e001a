package system

import (
	"github.com/mbellows/notestrike/common"
	"github.com/mbellows/notestrike/ecs"
	"github.com/mbellows/notestrike/ecs/component"
)

// BossSystem advances the encounter phase machine. Phases run strictly
// Entering → Countdown → Revealing → Active → Dying → removed; the only
// repetition is the Active charge/interrupt sub-cycle. Health decrements
// (and the Active→Dying transition they cause) happen in the resolver at
// the moment a challenge clears; this system owns all timer-driven
// transitions.
type BossSystem struct {
	tuning *Tuning
	tokens *TokenSource
}

func NewBossSystem(tuning *Tuning, tokens *TokenSource) *BossSystem {
	return &BossSystem{tuning: tuning, tokens: tokens}
}

func (s *BossSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	bossEnt, ok := ecs.First(w, component.BossComponent.Kind())
	if !ok {
		return
	}
	boss, _ := ecs.Get(w, bossEnt, component.BossComponent.Kind())
	tf, _ := ecs.Get(w, bossEnt, component.TransformComponent.Kind())
	if boss == nil || tf == nil {
		return
	}

	sessionEnt, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return
	}
	session, _ := ecs.Get(w, sessionEnt, component.SessionComponent.Kind())
	if session == nil {
		return
	}

	switch boss.Phase {
	case component.BossEntering:
		s.updateEntering(boss, tf)
	case component.BossCountdown:
		s.updateCountdown(boss)
	case component.BossRevealing:
		s.updateRevealing(boss)
	case component.BossActive:
		s.updateActive(w, boss, tf, session)
	case component.BossDying:
		boss.PhaseTimer--
		if boss.PhaseTimer <= 0 {
			ecs.DestroyEntity(w, bossEnt)
		}
	}
}

// arrivalEpsilon is how close "reached the anchor" is, in arena units.
const arrivalEpsilon = 2.0

// updateEntering walks the boss from its off-field spawn to the anchor.
func (s *BossSystem) updateEntering(boss *component.Boss, tf *component.Transform) {
	step := boss.Speed * common.StepSeconds
	tf.Pos = common.MoveTowards(tf.Pos, boss.Anchor, step)
	if tf.Pos.Distance(boss.Anchor) <= arrivalEpsilon {
		tf.Pos = boss.Anchor
		boss.Phase = component.BossCountdown
		boss.CountdownValue = 3
		boss.PhaseTimer = s.tuning.CountdownStepTicks()
	}
}

// updateCountdown holds each 3-2-1 digit for a fixed duration.
func (s *BossSystem) updateCountdown(boss *component.Boss) {
	boss.PhaseTimer--
	if boss.PhaseTimer > 0 {
		return
	}
	boss.CountdownValue--
	if boss.CountdownValue <= 0 {
		boss.Phase = component.BossRevealing
		boss.PhaseTimer = s.tuning.RevealTicks()
		boss.TokensVisible = false
		return
	}
	boss.PhaseTimer = s.tuning.CountdownStepTicks()
}

// updateRevealing runs the telegraph window. Challenge tokens become
// visible partway through; the charge timer arms only at the very end.
func (s *BossSystem) updateRevealing(boss *component.Boss) {
	boss.PhaseTimer--
	elapsed := s.tuning.RevealTicks() - boss.PhaseTimer
	if !boss.TokensVisible && elapsed >= s.tuning.RevealTokensAtTicks() {
		boss.TokensVisible = true
	}
	if boss.PhaseTimer <= 0 {
		boss.Phase = component.BossActive
		boss.Charge = 0
		boss.FreezeTicks = 0
	}
}

// updateActive runs the charge/interrupt sub-cycle and the hard-tier token
// rotation. Firing is repeating: reaching chargeTime launches one attack
// and resets the timer, staying in Active.
func (s *BossSystem) updateActive(w *ecs.World, boss *component.Boss, tf *component.Transform, session *component.Session) {
	if boss.Frozen() {
		boss.FreezeTicks--
	} else {
		boss.Charge++
		if boss.Charge >= boss.ChargeTicks {
			s.fireAttack(w, boss, tf)
			boss.Charge = 0
		}
	}

	if boss.RotateEnabled && !boss.Challenge.Done() {
		boss.RotateTimer--
		if boss.RotateTimer <= 0 {
			boss.RotateTimer = boss.RotateTicks
			boss.Challenge.ReplaceRemainder(s.tokens.Replacement(session.Level))
		}
	}
}

func (s *BossSystem) fireAttack(w *ecs.World, boss *component.Boss, tf *component.Transform) {
	playerPos, ok := playerPosition(w)
	if !ok {
		return
	}
	attack := ecs.CreateEntity(w)
	_ = ecs.Add(w, attack, component.AttackComponent.Kind(), &component.Attack{
		Origin:     tf.Pos,
		Target:     playerPos,
		DelayTicks: boss.AttackDelayTicks,
		HitRadius:  boss.AttackRadius,
		Damage:     boss.AttackDamage,
		Variant:    boss.AttackVariant,
	})
	w.Events().Push(ecs.Event{Type: ecs.EventBossAttackFired, Data: boss.AttackVariant})
}
