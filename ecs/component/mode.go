package component

import "fmt"

// Mode selects how input tokens are produced and matched: note names drawn
// from musical scales, or letters typed in sequence.
type Mode int

const (
	ModeMusic Mode = iota
	ModeTyping
)

func (m Mode) String() string {
	switch m {
	case ModeMusic:
		return "music"
	case ModeTyping:
		return "typing"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps a flag/config string to a Mode. Unknown values default to
// music, the original's primary mode.
func ParseMode(s string) Mode {
	if s == "typing" {
		return ModeTyping
	}
	return ModeMusic
}
