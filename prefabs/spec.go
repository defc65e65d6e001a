package prefabs

import (
	"fmt"
	"log"

	"gopkg.in/yaml.v3"
)

// LoadSpec loads and unmarshals one tuning YAML into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec is the master tuning table. Every duration is authored in
// milliseconds and converted to ticks where it is consumed.
type GameSpec struct {
	Player  PlayerSpec  `yaml:"player"`
	Ammo    AmmoSpec    `yaml:"ammo"`
	Wave    WaveSpec    `yaml:"wave"`
	Score   ScoreSpec   `yaml:"score"`
	Boss    BossSpec    `yaml:"boss"`
	Powerup PowerupSpec `yaml:"powerup"`
}

type PlayerSpec struct {
	MaxHealth int     `yaml:"max_health"`
	HitRadius float64 `yaml:"hit_radius"`
}

type AmmoSpec struct {
	Max        int     `yaml:"max"`
	RechargeMS float64 `yaml:"recharge_ms"`
}

type WaveSpec struct {
	BaseQuota     int     `yaml:"base_quota"`
	QuotaPerLevel int     `yaml:"quota_per_level"`
	CadenceMS     float64 `yaml:"cadence_ms"`
	CadenceStepMS float64 `yaml:"cadence_step_ms"`
	CadenceFloor  float64 `yaml:"cadence_floor_ms"`
	EnemySpeed    float64 `yaml:"enemy_speed"`
	ZigAmplitude  float64 `yaml:"zig_amplitude"`
	ContactDamage int     `yaml:"contact_damage"`
	DyingMS       float64 `yaml:"dying_ms"`
}

type ScoreSpec struct {
	NoteHit        int `yaml:"note_hit"`
	LetterProgress int `yaml:"letter_progress"`
	EnemyDefeated  int `yaml:"enemy_defeated"`
	BossToken      int `yaml:"boss_token"`
	ChallengeClear int `yaml:"challenge_clear"`
}

type BossSpec struct {
	BaseHealth      int     `yaml:"base_health"`
	HealthPerLevels int     `yaml:"health_per_levels"`
	ChargeMS        float64 `yaml:"charge_ms"`
	FreezeMS        float64 `yaml:"freeze_ms"`
	CountdownStepMS float64 `yaml:"countdown_step_ms"`
	RevealMS        float64 `yaml:"reveal_ms"`
	RevealTokensMS  float64 `yaml:"reveal_tokens_at_ms"`
	DyingMS         float64 `yaml:"dying_ms"`
	Speed           float64 `yaml:"speed"`
	MinCenterDist   float64 `yaml:"min_center_distance"`
	AttackDamage    int     `yaml:"attack_damage"`
	AttackRadius    float64 `yaml:"attack_radius"`
	AttackDelayMS   float64 `yaml:"attack_delay_ms"`
	NoteCount       int     `yaml:"note_count"`
	WordCount       int     `yaml:"word_count"`
}

type PowerupSpec struct {
	IntervalMS  float64 `yaml:"interval_ms"`
	TimeoutMS   float64 `yaml:"timeout_ms"`
	MultishotMS float64 `yaml:"multishot_ms"`
	SplashMS    float64 `yaml:"splash_ms"`
	// SplashRadius is an absolute arena-unit constant carried over from
	// the original 1920x1080 tuning.
	SplashRadius float64 `yaml:"splash_radius"`
}

// DifficultySpec is one difficulty tier's knobs (spec-facing config table).
type DifficultySpec struct {
	EnemySpeedScale float64 `yaml:"enemy_speed_scale"`
	ChargeTimeScale float64 `yaml:"charge_time_scale"`
	TokensPerEnemy  int     `yaml:"tokens_per_enemy"`
	Letters         string  `yaml:"letters"`
	ScaleNotes      int     `yaml:"scale_notes"`
	RotateTokens    bool    `yaml:"rotate_tokens"`
	RotateMS        float64 `yaml:"rotate_ms"`
}

type DifficultyTable struct {
	Default string                    `yaml:"default"`
	Tiers   map[string]DifficultySpec `yaml:"tiers"`
}

// ScaleSpec is one named musical scale.
type ScaleSpec struct {
	Name  string   `yaml:"name"`
	Notes []string `yaml:"notes"`
}

type ScalesSpec struct {
	Scales []ScaleSpec `yaml:"scales"`
}

type WordsSpec struct {
	Words []string `yaml:"words"`
}

// DefaultTier is the documented fallback when a tier lookup misses.
const DefaultTier = "normal"

// LoadGameSpec loads game.yaml, falling back to built-in defaults rather
// than failing the session when the file is missing or malformed.
func LoadGameSpec() GameSpec {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		log.Printf("prefabs: game.yaml unavailable, using defaults: %v", err)
		return defaultGameSpec
	}
	return spec
}

// LoadDifficulty resolves one tier, falling back first to the table's
// default tier and then to the built-in normal tier.
func LoadDifficulty(tier string) DifficultySpec {
	table, err := LoadSpec[DifficultyTable]("difficulty.yaml")
	if err != nil {
		log.Printf("prefabs: difficulty.yaml unavailable, using defaults: %v", err)
		return defaultDifficulty
	}
	if spec, ok := table.Tiers[tier]; ok {
		return spec
	}
	fallback := table.Default
	if fallback == "" {
		fallback = DefaultTier
	}
	if spec, ok := table.Tiers[fallback]; ok {
		return spec
	}
	return defaultDifficulty
}

// LoadScales loads the ordered scale list; levels cycle through it in
// order, wrapping. The fallback is a single C major scale.
func LoadScales() []ScaleSpec {
	spec, err := LoadSpec[ScalesSpec]("scales.yaml")
	if err != nil || len(spec.Scales) == 0 {
		if err != nil {
			log.Printf("prefabs: scales.yaml unavailable, using defaults: %v", err)
		}
		return []ScaleSpec{defaultScale}
	}
	return spec.Scales
}

// LoadWords loads the typing-mode word pool.
func LoadWords() []string {
	spec, err := LoadSpec[WordsSpec]("words.yaml")
	if err != nil || len(spec.Words) == 0 {
		if err != nil {
			log.Printf("prefabs: words.yaml unavailable, using defaults: %v", err)
		}
		return defaultWords
	}
	return spec.Words
}

var defaultGameSpec = GameSpec{
	Player: PlayerSpec{MaxHealth: 100, HitRadius: 40},
	Ammo:   AmmoSpec{Max: 5, RechargeMS: 3000},
	Wave: WaveSpec{
		BaseQuota: 8, QuotaPerLevel: 2,
		CadenceMS: 2200, CadenceStepMS: 120, CadenceFloor: 900,
		EnemySpeed: 110, ZigAmplitude: 60,
		ContactDamage: 10, DyingMS: 600,
	},
	Score: ScoreSpec{NoteHit: 100, LetterProgress: 25, EnemyDefeated: 150, BossToken: 200, ChallengeClear: 500},
	Boss: BossSpec{
		BaseHealth: 3, HealthPerLevels: 3,
		ChargeMS: 4000, FreezeMS: 1000,
		CountdownStepMS: 2000, RevealMS: 1500, RevealTokensMS: 750, DyingMS: 5000,
		Speed: 140, MinCenterDist: 260,
		AttackDamage: 10, AttackRadius: 90, AttackDelayMS: 450,
		NoteCount: 4, WordCount: 1,
	},
	Powerup: PowerupSpec{
		IntervalMS: 12000, TimeoutMS: 8000,
		MultishotMS: 10000, SplashMS: 10000, SplashRadius: 600,
	},
}

var defaultDifficulty = DifficultySpec{
	EnemySpeedScale: 1.0,
	ChargeTimeScale: 1.0,
	TokensPerEnemy:  1,
	Letters:         "ASDFJKL",
	ScaleNotes:      4,
}

var defaultScale = ScaleSpec{
	Name:  "C major",
	Notes: []string{"C4", "D4", "E4", "F4", "G4", "A4", "B4"},
}

var defaultWords = []string{"CAT", "STORM", "NOTE", "CHORD", "BLAZE", "RIFT"}
