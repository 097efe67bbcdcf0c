package ecs

import "sync"

// World is the registry of live entities. Every subsystem that needs to
// enumerate entities holds a reference to the same World; entities hold
// only a severable back-reference, never ownership.
type World struct {
	mu       sync.Mutex
	entities []*Entity
}

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{}
}

// Create builds an entity owned by this world and registers it before
// returning, so it is visible to Entities from the moment the caller
// holds it. components may be nil.
func (w *World) Create(id string, components map[string][]Component) *Entity {
	e := NewEntity(id, w, components)
	w.mu.Lock()
	w.entities = append(w.entities, e)
	w.mu.Unlock()
	return e
}

// CreateDefault is Create with an empty component map. The entity is
// tracked like any other.
func (w *World) CreateDefault(id string) *Entity {
	return w.Create(id, nil)
}

// Remove drops the given entity's identifier from the registry. Every
// entity sharing that identifier goes with it; see RemoveByID.
func (w *World) Remove(e *Entity) {
	w.RemoveByID(e.ID())
}

// RemoveByID drops every entity whose identifier equals id. Matching is
// by string value, so duplicate identifiers are all removed in one
// call. Removing an unknown id is a no-op, which makes the operation
// idempotent. Removed entities lose their world back-reference.
func (w *World) RemoveByID(id string) {
	w.mu.Lock()
	var removed []*Entity
	kept := w.entities[:0]
	for _, e := range w.entities {
		if e.ID() == id {
			removed = append(removed, e)
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	w.entities = kept
	w.mu.Unlock()

	// Detach outside the world lock; setWorld takes the entity lock.
	for _, e := range removed {
		e.setWorld(nil)
	}
}

// Entities returns a snapshot of the registry for iteration. Mutation
// of the world after the call does not affect the returned slice.
func (w *World) Entities() []*Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]*Entity, len(w.entities))
	copy(out, w.entities)
	return out
}

// Len reports the number of live entities.
func (w *World) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.entities)
}
