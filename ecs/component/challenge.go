package component

// ChallengeOutcome reports what applying one token to a challenge did.
type ChallengeOutcome int

const (
	// ChallengeNoMatch means the token would not progress the challenge.
	ChallengeNoMatch ChallengeOutcome = iota
	// ChallengeProgressed means one token was consumed but more remain.
	ChallengeProgressed
	// ChallengeCompleted means the token consumed was the last one.
	ChallengeCompleted
)

// Challenge is the set of tokens that must be cleared to land one damage
// instance (boss) or activate one effect (powerup). Music mode clears
// tokens in any order; typing mode is a strict left-to-right sequence.
type Challenge struct {
	Mode    Mode
	Tokens  []string
	Cleared []bool // music mode per-token clear flags
	Typed   int    // typing mode consumed prefix length
}

// NewMusicChallenge builds an unordered note challenge.
func NewMusicChallenge(tokens []string) Challenge {
	return Challenge{
		Mode:    ModeMusic,
		Tokens:  append([]string(nil), tokens...),
		Cleared: make([]bool, len(tokens)),
	}
}

// NewTypingChallenge builds an ordered letter challenge from one-or-more
// words concatenated into a single required sequence.
func NewTypingChallenge(words []string) Challenge {
	var letters []string
	for _, word := range words {
		for _, r := range word {
			letters = append(letters, string(r))
		}
	}
	return Challenge{
		Mode:    ModeTyping,
		Tokens:  letters,
		Cleared: make([]bool, len(letters)),
	}
}

// Done reports whether every token has been cleared.
func (c *Challenge) Done() bool {
	if len(c.Tokens) == 0 {
		return true
	}
	if c.Mode == ModeTyping {
		return c.Typed >= len(c.Tokens)
	}
	for _, cleared := range c.Cleared {
		if !cleared {
			return false
		}
	}
	return true
}

// Matches reports whether the token is the next required element: in typing
// mode the next letter in sequence, in music mode any not-yet-cleared token.
// A fully cleared challenge matches nothing (stale input is ignored).
func (c *Challenge) Matches(token string) bool {
	if c.Done() {
		return false
	}
	if c.Mode == ModeTyping {
		return c.Tokens[c.Typed] == token
	}
	for i, t := range c.Tokens {
		if !c.Cleared[i] && t == token {
			return true
		}
	}
	return false
}

// Apply consumes one matching token. It never mutates anything on a
// non-match; typing-sequence resets on a wrong letter are the caller's call
// (the resolver resets only on a Miss, not on input that hit an enemy).
func (c *Challenge) Apply(token string) ChallengeOutcome {
	if !c.Matches(token) {
		return ChallengeNoMatch
	}
	if c.Mode == ModeTyping {
		c.Typed++
	} else {
		for i, t := range c.Tokens {
			if !c.Cleared[i] && t == token {
				c.Cleared[i] = true
				break
			}
		}
	}
	if c.Done() {
		return ChallengeCompleted
	}
	return ChallengeProgressed
}

// ResetProgress discards all typed progress. Music clears are kept; the
// reset rule only exists for typing sequences.
func (c *Challenge) ResetProgress() {
	if c.Mode == ModeTyping {
		c.Typed = 0
	}
}

// Consumed returns how many tokens have been cleared.
func (c *Challenge) Consumed() int {
	if c.Mode == ModeTyping {
		return c.Typed
	}
	n := 0
	for _, cleared := range c.Cleared {
		if cleared {
			n++
		}
	}
	return n
}

// Remaining returns how many tokens are still required.
func (c *Challenge) Remaining() int {
	return len(c.Tokens) - c.Consumed()
}

// ReplaceRemainder swaps every not-yet-consumed token for a fresh one drawn
// by pick. Progress already made is never invalidated.
func (c *Challenge) ReplaceRemainder(pick func() string) {
	if pick == nil || c.Done() {
		return
	}
	if c.Mode == ModeTyping {
		for i := c.Typed; i < len(c.Tokens); i++ {
			c.Tokens[i] = pick()
		}
		return
	}
	for i := range c.Tokens {
		if !c.Cleared[i] {
			c.Tokens[i] = pick()
		}
	}
}
