// Package assets owns the audio context and synthesizes the game's tones.
// A rhythm game's cues are pitched notes, so instead of shipping sample
// files every player is generated: note tokens become sine tones at their
// pitch, and the fixed cues (miss, combo break, boss attack) are short
// synthesized sweeps.
package assets

import (
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

var audioContext = audio.NewContext(sampleRate)

// Context returns the shared audio context.
func Context() *audio.Context {
	return audioContext
}

var (
	playerMu sync.Mutex
	players  = map[string]*audio.Player{}
)

// NotePlayer returns a cached player for a note token like "C#4". Unknown
// tokens get a neutral A4 tone rather than an error.
func NotePlayer(note string) *audio.Player {
	freq, err := NoteFrequency(note)
	if err != nil {
		freq = 440
	}
	return cachedPlayer("note:"+note, func() []byte {
		return sineTone(freq, 0.18, 0.5)
	})
}

// CuePlayer returns a cached player for a named non-note cue.
func CuePlayer(name string) *audio.Player {
	gen, ok := cues[name]
	if !ok {
		return nil
	}
	return cachedPlayer("cue:"+name, gen)
}

var cues = map[string]func() []byte{
	"miss":          func() []byte { return sineSweep(220, 140, 0.15, 0.45) },
	"empty_chamber": func() []byte { return sineTone(110, 0.06, 0.3) },
	"combo_broken":  func() []byte { return sineSweep(660, 220, 0.3, 0.4) },
	"multiplier_up": func() []byte { return sineSweep(440, 880, 0.2, 0.45) },
	"boss_attack":   func() []byte { return sineSweep(160, 80, 0.35, 0.55) },
	"boss_hurt":     func() []byte { return sineSweep(300, 600, 0.2, 0.5) },
	"boss_died":     func() []byte { return sineSweep(880, 110, 0.9, 0.5) },
	"player_hurt":   func() []byte { return sineSweep(200, 90, 0.25, 0.55) },
	"powerup":       func() []byte { return sineSweep(523, 1046, 0.35, 0.5) },
	"level_up":      func() []byte { return sineSweep(440, 1320, 0.5, 0.5) },
	"game_over":     func() []byte { return sineSweep(440, 55, 1.2, 0.5) },
}

func cachedPlayer(key string, gen func() []byte) *audio.Player {
	playerMu.Lock()
	defer playerMu.Unlock()
	if p, ok := players[key]; ok {
		return p
	}
	p := audioContext.NewPlayerFromBytes(gen())
	players[key] = p
	return p
}

var noteOffsets = map[byte]int{
	'C': -9, 'D': -7, 'E': -5, 'F': -4, 'G': -2, 'A': 0, 'B': 2,
}

// NoteFrequency converts a note token with optional accidental and octave
// ("C4", "F#3", "A#5", bare "A" means octave 4) into Hz, relative to
// A4 = 440.
func NoteFrequency(note string) (float64, error) {
	if note == "" {
		return 0, fmt.Errorf("assets: empty note")
	}
	offset, ok := noteOffsets[note[0]]
	if !ok {
		return 0, fmt.Errorf("assets: bad note letter in %q", note)
	}
	rest := note[1:]
	if len(rest) > 0 && (rest[0] == '#' || rest[0] == 'b') {
		if rest[0] == '#' {
			offset++
		} else {
			offset--
		}
		rest = rest[1:]
	}
	octave := 4
	if rest != "" {
		o, err := strconv.Atoi(rest)
		if err != nil {
			return 0, fmt.Errorf("assets: bad octave in %q", note)
		}
		octave = o
	}
	semitones := float64(offset + (octave-4)*12)
	return 440 * math.Pow(2, semitones/12), nil
}

// sineTone renders a fixed-pitch tone with a short linear fade-out, as
// 16-bit stereo PCM at the context sample rate.
func sineTone(freq, seconds, volume float64) []byte {
	return render(seconds, func(t, progress float64) float64 {
		return math.Sin(2*math.Pi*freq*t) * volume * (1 - progress)
	})
}

// sineSweep glides exponentially from one pitch to another.
func sineSweep(from, to, seconds, volume float64) []byte {
	ratio := to / from
	return render(seconds, func(t, progress float64) float64 {
		freq := from * math.Pow(ratio, progress)
		return math.Sin(2*math.Pi*freq*t) * volume * (1 - progress)
	})
}

func render(seconds float64, sample func(t, progress float64) float64) []byte {
	n := int(seconds * sampleRate)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		v := sample(t, float64(i)/float64(n))
		s := int16(v * math.MaxInt16)
		buf[i*4] = byte(s)
		buf[i*4+1] = byte(s >> 8)
		buf[i*4+2] = byte(s)
		buf[i*4+3] = byte(s >> 8)
	}
	return buf
}
