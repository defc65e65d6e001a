package ecs

// Event is a discrete named occurrence inside a tick. Presentation layers
// (audio cues, HUD flashes) consume events; the core never reads them back.
type Event struct {
	Type string
	Data any
}

// Event types the core emits. The audio layer keys cue selection off the
// type alone; Data carries presentation hints (lost streak, attack variant).
const (
	EventNoteHit          = "note_hit"
	EventMiss             = "miss"
	EventEmptyChamber     = "empty_chamber"
	EventComboBroken      = "combo_broken"
	EventMultiplierUp     = "multiplier_up"
	EventBossAttackFired  = "boss_attack_fired"
	EventBossHurt         = "boss_hurt"
	EventBossDied         = "boss_died"
	EventPlayerHurt       = "player_hurt"
	EventPowerupActivated = "powerup_activated"
	EventLevelComplete    = "level_complete"
	EventGameOver         = "game_over"
)

// EventQueue is a FIFO queue scoped to one tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Emit is shorthand for pushing an event with only a type.
func (q *EventQueue) Emit(eventType string) {
	q.Push(Event{Type: eventType})
}

// Drain returns all pending events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Pending returns the queued events without clearing them.
func (q *EventQueue) Pending() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
