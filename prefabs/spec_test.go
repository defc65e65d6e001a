package prefabs

import "testing"

func TestLoadGameSpec(t *testing.T) {
	spec := LoadGameSpec()

	if spec.Player.MaxHealth <= 0 {
		t.Fatalf("player max health = %d", spec.Player.MaxHealth)
	}
	if spec.Ammo.Max <= 0 || spec.Ammo.RechargeMS <= 0 {
		t.Fatalf("ammo spec not loaded: %+v", spec.Ammo)
	}
	if spec.Boss.ChargeMS != 4000 {
		t.Fatalf("boss charge = %v, want 4000", spec.Boss.ChargeMS)
	}
	if spec.Boss.CountdownStepMS != 2000 || spec.Boss.RevealMS != 1500 {
		t.Fatalf("boss intro timings wrong: %+v", spec.Boss)
	}
	if spec.Powerup.SplashRadius != 600 {
		t.Fatalf("splash radius = %v, want 600", spec.Powerup.SplashRadius)
	}
}

func TestLoadDifficultyTiers(t *testing.T) {
	cases := []struct {
		tier        string
		wantLetters string
	}{
		{"easy", "ASDF"},
		{"normal", "ASDFJKL"},
		{"hard", "ASDFGHJKL"},
		{"expert", "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
	}

	for _, c := range cases {
		t.Run(c.tier, func(t *testing.T) {
			spec := LoadDifficulty(c.tier)
			if spec.Letters != c.wantLetters {
				t.Fatalf("letters = %q, want %q", spec.Letters, c.wantLetters)
			}
			if spec.EnemySpeedScale <= 0 || spec.ChargeTimeScale <= 0 {
				t.Fatalf("scales not loaded: %+v", spec)
			}
		})
	}
}

func TestLoadDifficultyUnknownTierFallsBack(t *testing.T) {
	got := LoadDifficulty("nightmare")
	normal := LoadDifficulty(DefaultTier)
	if got != normal {
		t.Fatalf("unknown tier should resolve to the default: %+v vs %+v", got, normal)
	}
}

func TestExpertTierRotates(t *testing.T) {
	spec := LoadDifficulty("expert")
	if !spec.RotateTokens || spec.RotateMS <= 0 {
		t.Fatalf("expert should rotate tokens: %+v", spec)
	}
	if LoadDifficulty("normal").RotateTokens {
		t.Fatalf("normal should not rotate tokens")
	}
}

func TestLoadScalesOrdered(t *testing.T) {
	scales := LoadScales()
	if len(scales) < 2 {
		t.Fatalf("expected multiple scales, got %d", len(scales))
	}
	for _, s := range scales {
		if s.Name == "" || len(s.Notes) == 0 {
			t.Fatalf("malformed scale: %+v", s)
		}
	}
}

func TestLoadWords(t *testing.T) {
	words := LoadWords()
	if len(words) == 0 {
		t.Fatalf("empty word pool")
	}
	for _, w := range words {
		if w == "" {
			t.Fatalf("empty word in pool")
		}
		for _, r := range w {
			if r < 'A' || r > 'Z' {
				t.Fatalf("word %q is not uppercase letters", w)
			}
		}
	}
}

func TestLoadSpecMissingFile(t *testing.T) {
	if _, err := LoadSpec[GameSpec]("no_such.yaml"); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestLoadScriptEmbedded(t *testing.T) {
	data, err := LoadScript("orbit.tengo")
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("empty script")
	}
}
