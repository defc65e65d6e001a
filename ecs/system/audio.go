package system

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/mbellows/notestrike/assets"
	"github.com/mbellows/notestrike/ecs"
)

// AudioSystem turns core events into synthesized cues. It must be the last
// system in the update order so it sees everything the tick emitted. The
// core never depends on it; headless runs and tests simply leave it out.
type AudioSystem struct {
	Muted bool
}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

var eventCues = map[string]string{
	ecs.EventMiss:             "miss",
	ecs.EventEmptyChamber:     "empty_chamber",
	ecs.EventComboBroken:      "combo_broken",
	ecs.EventMultiplierUp:     "multiplier_up",
	ecs.EventBossAttackFired:  "boss_attack",
	ecs.EventBossHurt:         "boss_hurt",
	ecs.EventBossDied:         "boss_died",
	ecs.EventPlayerHurt:       "player_hurt",
	ecs.EventPowerupActivated: "powerup",
	ecs.EventLevelComplete:    "level_up",
	ecs.EventGameOver:         "game_over",
}

func (s *AudioSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	events := w.Events().Drain()
	if s.Muted {
		return
	}

	for _, evt := range events {
		if evt.Type == ecs.EventNoteHit {
			if token, ok := evt.Data.(string); ok {
				play(assets.NotePlayer(token))
			}
			continue
		}
		if cue, ok := eventCues[evt.Type]; ok {
			play(assets.CuePlayer(cue))
		}
	}
}

func play(p *audio.Player) {
	if p == nil {
		return
	}
	if p.IsPlaying() {
		return
	}
	_ = p.Rewind()
	p.Play()
}
