package ecs

import "sync"

// Entity is an identified bag of components bucketed by category key.
// All map access is serialized by the entity's own lock, so any holder
// of the pointer may add and remove components concurrently.
type Entity struct {
	id string

	mu         sync.Mutex
	world      *World
	components map[string][]Component
}

// NewEntity constructs an entity with a pre-populated category map.
// A nil map means no components. Entities built this way are not
// registered anywhere; use World.Create for a tracked entity.
func NewEntity(id string, world *World, components map[string][]Component) *Entity {
	if components == nil {
		components = make(map[string][]Component)
	}
	return &Entity{id: id, world: world, components: components}
}

// ID returns the entity's identifier.
func (e *Entity) ID() string { return e.id }

// World returns the owning world, or nil once the entity has been
// removed from it. The relation is non-owning: removal severs it.
func (e *Entity) World() *World {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.world
}

func (e *Entity) setWorld(w *World) {
	e.mu.Lock()
	e.world = w
	e.mu.Unlock()
}

// AddComponent appends c to the named category's bucket, creating the
// bucket on first use. Concurrent adds interleave safely; none are lost.
func (e *Entity) AddComponent(category string, c Component) {
	e.mu.Lock()
	e.components[category] = append(e.components[category], c)
	e.mu.Unlock()
}

// RemoveComponent drops every component in the category that matches
// the predicate. A missing category or an empty match set is a no-op.
func (e *Entity) RemoveComponent(category string, match func(Component) bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	bucket, ok := e.components[category]
	if !ok {
		return
	}
	kept := bucket[:0]
	for _, c := range bucket {
		if !match(c) {
			kept = append(kept, c)
		}
	}
	for i := len(kept); i < len(bucket); i++ {
		bucket[i] = nil
	}
	if len(kept) == 0 {
		delete(e.components, category)
		return
	}
	e.components[category] = kept
}

// Components returns a snapshot of the named category's bucket. The
// lock is held only for the copy, so callers may iterate freely while
// other goroutines keep mutating the entity.
func (e *Entity) Components(category string) []Component {
	e.mu.Lock()
	defer e.mu.Unlock()

	bucket := e.components[category]
	if len(bucket) == 0 {
		return nil
	}
	out := make([]Component, len(bucket))
	copy(out, bucket)
	return out
}

// Categories returns the category keys currently holding components.
func (e *Entity) Categories() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	keys := make([]string, 0, len(e.components))
	for k := range e.components {
		keys = append(keys, k)
	}
	return keys
}

// ComponentsOf returns every component under the category whose
// concrete type is T. Entries of other types sharing the key are
// skipped; a missing category yields an empty result. The returned
// slice is a snapshot taken at call time.
func ComponentsOf[T Component](e *Entity, category string) []T {
	var out []T
	for _, c := range e.Components(category) {
		if v, ok := c.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
