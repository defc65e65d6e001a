package system

import (
	"github.com/mbellows/notestrike/common"
	"github.com/mbellows/notestrike/prefabs"
)

// Tuning bundles the resolved game spec and difficulty tier. Systems hold a
// shared pointer so a debug-mode YAML reload takes effect between ticks.
type Tuning struct {
	Game       prefabs.GameSpec
	Difficulty prefabs.DifficultySpec
	Tier       string
}

// NewTuning loads the spec and resolves one difficulty tier, falling back
// to the default tier on a miss.
func NewTuning(tier string) *Tuning {
	t := &Tuning{Tier: tier}
	t.Reload()
	return t
}

// Reload re-reads the tuning YAML (disk copies win over embedded defaults).
func (t *Tuning) Reload() {
	t.Game = prefabs.LoadGameSpec()
	t.Difficulty = prefabs.LoadDifficulty(t.Tier)
}

// ChargeTicks is the boss charge window, scaled by difficulty.
func (t *Tuning) ChargeTicks() int {
	return common.TicksFromMillis(t.Game.Boss.ChargeMS * t.Difficulty.ChargeTimeScale)
}

func (t *Tuning) FreezeTicks() int {
	return common.TicksFromMillis(t.Game.Boss.FreezeMS)
}

func (t *Tuning) CountdownStepTicks() int {
	return common.TicksFromMillis(t.Game.Boss.CountdownStepMS)
}

func (t *Tuning) RevealTicks() int {
	return common.TicksFromMillis(t.Game.Boss.RevealMS)
}

func (t *Tuning) RevealTokensAtTicks() int {
	return common.TicksFromMillis(t.Game.Boss.RevealTokensMS)
}

func (t *Tuning) BossDyingTicks() int {
	return common.TicksFromMillis(t.Game.Boss.DyingMS)
}

func (t *Tuning) AttackDelayTicks() int {
	return common.TicksFromMillis(t.Game.Boss.AttackDelayMS)
}

func (t *Tuning) RotateTicks() int {
	return common.TicksFromMillis(t.Difficulty.RotateMS)
}

func (t *Tuning) RechargeTicks() int {
	return common.TicksFromMillis(t.Game.Ammo.RechargeMS)
}

func (t *Tuning) EnemyDyingTicks() int {
	return common.TicksFromMillis(t.Game.Wave.DyingMS)
}

// SpawnCadenceTicks shrinks with level, with a floor.
func (t *Tuning) SpawnCadenceTicks(level int) int {
	ms := t.Game.Wave.CadenceMS - t.Game.Wave.CadenceStepMS*float64(level-1)
	if ms < t.Game.Wave.CadenceFloor {
		ms = t.Game.Wave.CadenceFloor
	}
	return common.TicksFromMillis(ms)
}

// WaveQuota is the per-level count of defeated enemies required.
func (t *Tuning) WaveQuota(level int) int {
	return t.Game.Wave.BaseQuota + t.Game.Wave.QuotaPerLevel*(level-1)
}

// BossHealth grows slowly with level.
func (t *Tuning) BossHealth(level int) int {
	per := t.Game.Boss.HealthPerLevels
	if per <= 0 {
		return t.Game.Boss.BaseHealth
	}
	return t.Game.Boss.BaseHealth + (level-1)/per
}

func (t *Tuning) EnemySpeed() float64 {
	return t.Game.Wave.EnemySpeed * t.Difficulty.EnemySpeedScale
}

func (t *Tuning) PowerupIntervalTicks() int {
	return common.TicksFromMillis(t.Game.Powerup.IntervalMS)
}

func (t *Tuning) PowerupTimeoutTicks() int {
	return common.TicksFromMillis(t.Game.Powerup.TimeoutMS)
}

func (t *Tuning) MultishotTicks() int {
	return common.TicksFromMillis(t.Game.Powerup.MultishotMS)
}

func (t *Tuning) SplashTicks() int {
	return common.TicksFromMillis(t.Game.Powerup.SplashMS)
}
