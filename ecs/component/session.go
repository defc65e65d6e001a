package component

// Combo tracks the consecutive-hit streak and its score multiplier tier.
type Combo struct {
	Streak int
	Max    int
	Tier   int
}

var comboThresholds = []int{0, 5, 10, 15, 20, 25}
var comboMultipliers = []float64{1, 1.5, 2, 2.5, 3, 4}

// ComboMultiplier returns the step-function multiplier for a streak value.
func ComboMultiplier(streak int) float64 {
	m := comboMultipliers[0]
	for i, threshold := range comboThresholds {
		if streak >= threshold {
			m = comboMultipliers[i]
		}
	}
	return m
}

func comboTier(streak int) int {
	tier := 0
	for i, threshold := range comboThresholds {
		if streak >= threshold {
			tier = i
		}
	}
	return tier
}

// Increment bumps the streak and reports whether the multiplier tier rose.
func (c *Combo) Increment() bool {
	c.Streak++
	if c.Streak > c.Max {
		c.Max = c.Streak
	}
	tier := comboTier(c.Streak)
	if tier > c.Tier {
		c.Tier = tier
		return true
	}
	return false
}

// Break resets the streak to zero and returns the streak that was lost.
func (c *Combo) Break() int {
	lost := c.Streak
	c.Streak = 0
	c.Tier = 0
	return lost
}

// Multiplier returns the current score multiplier.
func (c *Combo) Multiplier() float64 {
	return ComboMultiplier(c.Streak)
}

// Ammo is the bounded miss budget: every miss costs one, hits are free, and
// one point returns per recharge interval while below max.
type Ammo struct {
	Current       int
	Max           int
	RechargeTicks int
	Timer         int
}

// SpendMiss consumes one ammo for a miss and resets the recharge timer.
// Returns false on an empty pool (the attempt is rejected outright).
func (a *Ammo) SpendMiss() bool {
	if a.Current <= 0 {
		return false
	}
	a.Current--
	a.Timer = 0
	return true
}

// Summary is the read-only end-of-run record handed to the persistence
// layer. It is produced exactly once, when health reaches zero.
type Summary struct {
	FinalScore   int
	LevelReached int
	MaxCombo     int
	Difficulty   string
	Mode         Mode
}

// Session is the single-owner state for one playthrough. Every subsystem
// mutates it only inside a tick.
type Session struct {
	Mode       Mode
	Difficulty string
	Level      int

	Score     int
	Health    int
	MaxHealth int

	Combo Combo
	Ammo  Ammo

	// Wave bookkeeping for the current level.
	WaveDefeated int
	WaveQuota    int
	SpawnTimer   int
	SpawnSeq     int

	BossSpawned   bool
	LevelComplete bool
	GameOver      bool

	// Powerup effect windows, in remaining ticks.
	MultishotTicks int
	SplashTicks    int
	PowerupTimer   int

	Summary *Summary
}

// AddScore applies the combo multiplier to a base value, adds the result to
// the score, and returns the points awarded. This is the only sanctioned
// path for hit points to enter the score.
func (s *Session) AddScore(base int) int {
	pts := int(float64(base) * s.Combo.Multiplier())
	s.Score += pts
	return pts
}

// Damage lowers health, clamped at zero, and reports whether this hit
// ended the run.
func (s *Session) Damage(amount int) bool {
	if s.GameOver || amount <= 0 {
		return false
	}
	s.Health -= amount
	if s.Health <= 0 {
		s.Health = 0
		return true
	}
	return false
}

// HealFull restores health to max.
func (s *Session) HealFull() {
	s.Health = s.MaxHealth
}

var SessionComponent = NewComponent[Session]()
