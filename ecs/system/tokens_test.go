package system

import (
	"math/rand"
	"testing"

	"github.com/mbellows/notestrike/ecs/component"
	"github.com/mbellows/notestrike/prefabs"
)

func newTokens(mode component.Mode, seed int64) *TokenSource {
	tuning := NewTuning("normal")
	return NewTokenSource(mode, tuning, rand.New(rand.NewSource(seed)))
}

func TestScaleForLevelCycles(t *testing.T) {
	tokens := newTokens(component.ModeMusic, 1)
	scales := prefabs.LoadScales()

	if got := tokens.ScaleForLevel(1).Name; got != scales[0].Name {
		t.Fatalf("level 1 scale = %q, want %q", got, scales[0].Name)
	}
	// One scale per level, wrapping at the end of the list.
	wrapped := tokens.ScaleForLevel(len(scales) + 1)
	if wrapped.Name != scales[0].Name {
		t.Fatalf("wrap scale = %q, want %q", wrapped.Name, scales[0].Name)
	}
}

func TestEnemyTokensPerMode(t *testing.T) {
	music := newTokens(component.ModeMusic, 1)
	got := music.EnemyTokens(1)
	if len(got) != 1 {
		t.Fatalf("music enemies carry one note, got %v", got)
	}
	scale := music.ScaleForLevel(1)
	found := false
	for _, note := range scale.Notes {
		if note == got[0] {
			found = true
		}
	}
	if !found {
		t.Fatalf("note %q not in the level scale %v", got[0], scale.Notes)
	}

	typing := newTokens(component.ModeTyping, 1)
	letters := typing.EnemyTokens(1)
	if len(letters) < 1 {
		t.Fatalf("typing enemies need at least one letter")
	}
	for _, l := range letters {
		if len(l) != 1 {
			t.Fatalf("typing token %q is not a single letter", l)
		}
	}
}

func TestBossChallengeShape(t *testing.T) {
	music := newTokens(component.ModeMusic, 1)
	c := music.BossChallenge(1, 4, 1)
	if c.Mode != component.ModeMusic || len(c.Tokens) != 4 {
		t.Fatalf("music boss challenge shape wrong: %+v", c)
	}

	typing := newTokens(component.ModeTyping, 1)
	c = typing.BossChallenge(1, 4, 2)
	if c.Mode != component.ModeTyping {
		t.Fatalf("typing boss challenge mode wrong")
	}
	if len(c.Tokens) < 2 {
		t.Fatalf("two words should yield at least two letters, got %v", c.Tokens)
	}

	// Degenerate shapes clamp to one.
	c = music.BossChallenge(1, 0, 0)
	if len(c.Tokens) != 1 {
		t.Fatalf("zero note count should clamp to 1, got %d", len(c.Tokens))
	}
}

func TestTokenSourceDeterministicPerSeed(t *testing.T) {
	a := newTokens(component.ModeMusic, 42)
	b := newTokens(component.ModeMusic, 42)

	for i := 0; i < 50; i++ {
		if a.RandomNote(1) != b.RandomNote(1) {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
}

func TestReplacementPickerMatchesMode(t *testing.T) {
	music := newTokens(component.ModeMusic, 1)
	pick := music.Replacement(1)
	note := pick()
	inScale := false
	for _, n := range music.ScaleForLevel(1).Notes {
		if n == note {
			inScale = true
		}
	}
	if !inScale {
		t.Fatalf("music replacement %q outside the scale", note)
	}

	typing := newTokens(component.ModeTyping, 1)
	letter := typing.Replacement(1)()
	if len(letter) != 1 {
		t.Fatalf("typing replacement %q is not a letter", letter)
	}
}
