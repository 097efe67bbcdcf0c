package component

import (
	"sync"

	"github.com/lumen3d/engine/internal/core/ecs"
	"github.com/lumen3d/engine/internal/core/event"
)

// CategoryEventHandler is the bucket key the event loop scans for.
const CategoryEventHandler = "event handler"

// Handler reacts to input and window events delivered through an
// EventHandler component. Handle runs on the event-delivery path and
// must return promptly.
type Handler interface {
	Handle(ev event.Event)
}

// HandlerBinder is implemented by handlers that want a reference to the
// component wrapping them, e.g. to reach the attached entity later.
// NewEventHandler calls SetEventHandler exactly once, after the
// component is fully formed, so the handler may retain the pointer.
type HandlerBinder interface {
	SetEventHandler(h *EventHandler)
}

// EventHandler wraps a swappable Handler as an entity component.
// Deliveries hold the read lock for the duration of the Handle call, so
// swapping the handler excludes all in-flight deliveries.
type EventHandler struct {
	id  string
	tid string

	mu      sync.RWMutex
	handler Handler

	entityMu sync.RWMutex
	entity   *ecs.Entity
}

// NewEventHandler wraps h. If h implements HandlerBinder it receives
// the finished component before NewEventHandler returns. h must not be
// nil; the handler slot never resolves to nothing.
func NewEventHandler(id string, h Handler) *EventHandler {
	if h == nil {
		panic("component: NewEventHandler with nil Handler")
	}
	eh := &EventHandler{
		id:      id,
		tid:     ecs.ID(CategoryEventHandler),
		handler: h,
	}
	if b, ok := h.(HandlerBinder); ok {
		b.SetEventHandler(eh)
	}
	return eh
}

// ID returns the caller-supplied identifier.
func (eh *EventHandler) ID() string { return eh.id }

// CategoryID returns the generated per-instance category identifier.
func (eh *EventHandler) CategoryID() string { return eh.tid }

func (eh *EventHandler) Category() string { return CategoryEventHandler }

// Handle forwards one event to the installed handler. The read lock is
// held across the call so a concurrent SetHandler cannot retire the
// handler mid-delivery.
func (eh *EventHandler) Handle(ev event.Event) {
	eh.mu.RLock()
	defer eh.mu.RUnlock()
	eh.handler.Handle(ev)
}

// SetHandler swaps the installed handler. Blocks until in-flight
// deliveries finish; h must not be nil.
func (eh *EventHandler) SetHandler(h Handler) {
	if h == nil {
		panic("component: SetHandler with nil Handler")
	}
	eh.mu.Lock()
	eh.handler = h
	eh.mu.Unlock()
}

// Attach records the entity this component is attached to. Passing nil
// detaches.
func (eh *EventHandler) Attach(e *ecs.Entity) {
	eh.entityMu.Lock()
	eh.entity = e
	eh.entityMu.Unlock()
}

// Entity returns the attached entity, or nil before Attach.
func (eh *EventHandler) Entity() *ecs.Entity {
	eh.entityMu.RLock()
	defer eh.entityMu.RUnlock()
	return eh.entity
}
