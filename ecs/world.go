package ecs

import (
	"fmt"
	"log"
	"sort"

	"github.com/mbellows/notestrike/ecs/component"
)

// System updates a world once per simulation tick.
type System interface {
	Update(w *World)
}

// World owns entities, component storage, and system order. All mutation
// happens inside Update on the tick that caused it; there is no concurrency.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*sparseSet
	systems  []System
	events   EventQueue

	tick uint64
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*sparseSet)}
}

// Tick returns the number of completed Update calls.
func (w *World) Tick() uint64 {
	return w.tick
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once, then drops any events no system consumed.
// A panic inside one system is logged and skipped so a single misbehaving
// subsystem degrades for a tick instead of killing the loop.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		runSystem(s, w)
	}
	w.events.flush()
	w.tick++
}

func runSystem(s System, w *World) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ecs: system %T panicked, skipping tick: %v", s, r)
		}
	}()
	s.Update(w)
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID) *sparseSet {
	st, ok := w.stores[id]
	if !ok {
		st = &sparseSet{}
		w.stores[id] = st
	}
	return st
}

// CreateEntity allocates a new entity handle.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes an entity and all of its components. Returns false
// for a stale or invalid handle.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, st := range w.stores {
		st.remove(e.id())
	}
	return true
}

// IsAlive reports whether the handle is still valid.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns all live entities in id order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := w.entities.alive()
	sort.Slice(out, func(i, j int) bool { return out[i].id() < out[j].id() })
	return out
}

func (w *World) addComponent(e Entity, id component.ComponentID, v any) error {
	if !id.Valid() {
		return component.ErrInvalidComponentKind
	}
	if v == nil {
		return component.ErrNilComponent
	}
	if !w.entities.isAlive(e) {
		return fmt.Errorf("%w: %s", component.ErrEntityNotAlive, e)
	}
	w.store(id).set(e.id(), v)
	return nil
}

func (w *World) getComponent(e Entity, id component.ComponentID) (any, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	st, ok := w.stores[id]
	if !ok {
		return nil, false
	}
	v := st.get(e.id())
	if v == nil {
		return nil, false
	}
	return v, true
}

func (w *World) removeComponent(e Entity, id component.ComponentID) bool {
	if w == nil {
		return false
	}
	st, ok := w.stores[id]
	if !ok {
		return false
	}
	return st.remove(e.id())
}
