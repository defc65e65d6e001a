package system

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/mbellows/notestrike/common"
	"github.com/mbellows/notestrike/ecs"
	"github.com/mbellows/notestrike/ecs/component"
)

// freezeThrottle is the movement speed factor during the post-interrupt
// recovery window.
const freezeThrottle = 0.15

// BossMoveSystem repositions an Active boss per its movement pattern. Every
// pattern is pushed back out of the arena-center exclusion zone and clamped
// to the arena.
type BossMoveSystem struct {
	tuning *Tuning
	rng    *rand.Rand
	script *PatternScript
}

func NewBossMoveSystem(tuning *Tuning, rng *rand.Rand) *BossMoveSystem {
	return &BossMoveSystem{tuning: tuning, rng: rng}
}

// SetPatternScript installs a scripted pattern hook; bosses then ignore
// their built-in pattern and follow the script.
func (s *BossMoveSystem) SetPatternScript(ps *PatternScript) {
	s.script = ps
}

func (s *BossMoveSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	bossEnt, ok := ecs.First(w, component.BossComponent.Kind())
	if !ok {
		return
	}
	boss, _ := ecs.Get(w, bossEnt, component.BossComponent.Kind())
	tf, _ := ecs.Get(w, bossEnt, component.TransformComponent.Kind())
	if boss == nil || tf == nil || boss.Phase != component.BossActive {
		return
	}

	playerPos, _ := playerPosition(w)
	center := cp.Vector{X: common.ArenaWidth / 2, Y: common.ArenaHeight / 2}

	speed := boss.Speed
	if boss.Frozen() {
		speed *= freezeThrottle
	}

	pattern := boss.Pattern
	if s.script != nil {
		pattern = component.PatternScripted
	}

	switch pattern {
	case component.PatternWander:
		s.stepWander(boss, tf, speed)
	case component.PatternSlow:
		s.stepWander(boss, tf, speed*0.5)
	case component.PatternAggressive:
		boss.MoveTarget = playerPos
		tf.Pos = common.MoveTowards(tf.Pos, boss.MoveTarget, speed*1.25*common.StepSeconds)
	case component.PatternErratic:
		boss.MoveTimer--
		if boss.MoveTimer <= 0 {
			jitter := cp.Vector{
				X: (s.rng.Float64() - 0.5) * 200,
				Y: (s.rng.Float64() - 0.5) * 200,
			}
			boss.MoveTarget = s.randomPoint().Add(jitter)
			boss.MoveTimer = common.TicksFromMillis(300 + s.rng.Float64()*500)
		}
		tf.Pos = common.MoveTowards(tf.Pos, boss.MoveTarget, speed*1.1*common.StepSeconds)
	case component.PatternTeleport:
		boss.MoveTimer--
		if boss.MoveTimer <= 0 {
			tf.Pos = s.randomPoint()
			boss.MoveTimer = common.TicksFromSeconds(2.5)
		}
	case component.PatternCircular:
		// Sweep an ellipse around the center. Angular rate scales with
		// linear speed so the freeze throttle still applies.
		rx, ry := common.ArenaWidth*0.32, common.ArenaHeight*0.3
		boss.CircleAngle = common.WrapAngle(boss.CircleAngle + speed/rx*common.StepSeconds)
		tf.Pos = cp.Vector{
			X: center.X + rx*math.Cos(boss.CircleAngle),
			Y: center.Y + ry*math.Sin(boss.CircleAngle),
		}
	case component.PatternScripted:
		boss.MoveTimer--
		if boss.MoveTimer <= 0 {
			if target, err := s.script.PickTarget(tf.Pos, playerPos, w.Tick()); err == nil {
				boss.MoveTarget = target
			}
			boss.MoveTimer = s.script.Interval()
		}
		tf.Pos = common.MoveTowards(tf.Pos, boss.MoveTarget, speed*common.StepSeconds)
	}

	tf.Pos = common.PushOutFromCenter(tf.Pos, center, boss.MinCenterDist)
	tf.Pos.X = common.Clamp(tf.Pos.X, 0, common.ArenaWidth)
	tf.Pos.Y = common.Clamp(tf.Pos.Y, 0, common.ArenaHeight)
}

func (s *BossMoveSystem) stepWander(boss *component.Boss, tf *component.Transform, speed float64) {
	boss.MoveTimer--
	if boss.MoveTimer <= 0 || tf.Pos.Distance(boss.MoveTarget) <= arrivalEpsilon {
		boss.MoveTarget = s.randomPoint()
		boss.MoveTimer = common.TicksFromSeconds(2)
	}
	tf.Pos = common.MoveTowards(tf.Pos, boss.MoveTarget, speed*common.StepSeconds)
}

// randomPoint picks a destination inside the arena, biased away from the
// exact edges.
func (s *BossMoveSystem) randomPoint() cp.Vector {
	const inset = 100.0
	return cp.Vector{
		X: inset + s.rng.Float64()*(common.ArenaWidth-2*inset),
		Y: inset + s.rng.Float64()*(common.ArenaHeight-2*inset),
	}
}
