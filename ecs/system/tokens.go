package system

import (
	"math/rand"
	"strings"

	"github.com/mbellows/notestrike/ecs/component"
	"github.com/mbellows/notestrike/prefabs"
)

// TokenSource draws the matchable tokens for enemies, bosses, and powerups:
// scale degrees in music mode, letters and words in typing mode. All draws
// go through one seeded rand.Rand so a run replays identically.
type TokenSource struct {
	mode   component.Mode
	rng    *rand.Rand
	scales []prefabs.ScaleSpec
	words  []string

	letters    []string
	scaleNotes int
	tokensPer  int
}

func NewTokenSource(mode component.Mode, tuning *Tuning, rng *rand.Rand) *TokenSource {
	diff := tuning.Difficulty
	letters := strings.Split(strings.ReplaceAll(diff.Letters, " ", ""), "")
	if len(letters) == 0 {
		letters = []string{"A", "S", "D", "F"}
	}
	scaleNotes := diff.ScaleNotes
	if scaleNotes < 1 {
		scaleNotes = 4
	}
	tokensPer := diff.TokensPerEnemy
	if tokensPer < 1 {
		tokensPer = 1
	}
	return &TokenSource{
		mode:       mode,
		rng:        rng,
		scales:     prefabs.LoadScales(),
		words:      prefabs.LoadWords(),
		letters:    letters,
		scaleNotes: scaleNotes,
		tokensPer:  tokensPer,
	}
}

// ScaleForLevel cycles through the scale list, one scale per level,
// wrapping around.
func (t *TokenSource) ScaleForLevel(level int) prefabs.ScaleSpec {
	if len(t.scales) == 0 {
		return prefabs.ScaleSpec{Name: "C major", Notes: []string{"C4"}}
	}
	idx := (level - 1) % len(t.scales)
	if idx < 0 {
		idx = 0
	}
	return t.scales[idx]
}

// scaleNotePool is the difficulty-capped slice of the level's scale.
func (t *TokenSource) scaleNotePool(level int) []string {
	notes := t.ScaleForLevel(level).Notes
	if len(notes) == 0 {
		notes = []string{"C4"}
	}
	n := t.scaleNotes
	if n > len(notes) {
		n = len(notes)
	}
	return notes[:n]
}

// RandomNote draws one scale-degree token for the level.
func (t *TokenSource) RandomNote(level int) string {
	pool := t.scaleNotePool(level)
	return pool[t.rng.Intn(len(pool))]
}

// RandomLetter draws from the difficulty-gated letter subset.
func (t *TokenSource) RandomLetter() string {
	return t.letters[t.rng.Intn(len(t.letters))]
}

// RandomWord draws from the word pool.
func (t *TokenSource) RandomWord() string {
	if len(t.words) == 0 {
		return "CAT"
	}
	return t.words[t.rng.Intn(len(t.words))]
}

// EnemyTokens draws the token(s) for one spawned enemy: a single note in
// music mode, or 1-2 sequential letters per the difficulty tier.
func (t *TokenSource) EnemyTokens(level int) []string {
	if t.mode == component.ModeMusic {
		return []string{t.RandomNote(level)}
	}
	tokens := make([]string, 0, t.tokensPer)
	for i := 0; i < t.tokensPer; i++ {
		tokens = append(tokens, t.RandomLetter())
	}
	return tokens
}

// BossChallenge builds a fresh challenge of the boss's configured shape.
func (t *TokenSource) BossChallenge(level, noteCount, wordCount int) component.Challenge {
	if t.mode == component.ModeMusic {
		if noteCount < 1 {
			noteCount = 1
		}
		notes := make([]string, 0, noteCount)
		for i := 0; i < noteCount; i++ {
			notes = append(notes, t.RandomNote(level))
		}
		return component.NewMusicChallenge(notes)
	}
	if wordCount < 1 {
		wordCount = 1
	}
	words := make([]string, 0, wordCount)
	for i := 0; i < wordCount; i++ {
		words = append(words, t.RandomWord())
	}
	return component.NewTypingChallenge(words)
}

// PowerupChallenge is a miniature challenge: a short scale run or one word.
func (t *TokenSource) PowerupChallenge(level int) component.Challenge {
	if t.mode == component.ModeMusic {
		notes := make([]string, 0, 3)
		for i := 0; i < 3; i++ {
			notes = append(notes, t.RandomNote(level))
		}
		return component.NewMusicChallenge(notes)
	}
	return component.NewTypingChallenge([]string{t.RandomWord()})
}

// Replacement returns a picker for rotating the unconsumed remainder of a
// boss challenge.
func (t *TokenSource) Replacement(level int) func() string {
	if t.mode == component.ModeMusic {
		return func() string { return t.RandomNote(level) }
	}
	return func() string { return t.RandomLetter() }
}

// Mode returns the session game mode this source draws for.
func (t *TokenSource) Mode() component.Mode {
	return t.mode
}
