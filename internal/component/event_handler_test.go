package component

import (
	"sync"
	"testing"

	"github.com/lumen3d/engine/internal/core/ecs"
	"github.com/lumen3d/engine/internal/core/event"
)

// countingHandler records every distinct key it sees.
type countingHandler struct {
	mu   sync.Mutex
	seen map[int]int
}

func newCountingHandler() *countingHandler {
	return &countingHandler{seen: make(map[int]int)}
}

func (h *countingHandler) Handle(ev event.Event) {
	ki, ok := ev.(event.KeyInput)
	if !ok {
		return
	}
	h.mu.Lock()
	h.seen[ki.Key]++
	h.mu.Unlock()
}

// bindingHandler retains the component wrapping it.
type bindingHandler struct {
	countingHandler
	comp *EventHandler
}

func (h *bindingHandler) SetEventHandler(eh *EventHandler) {
	h.comp = eh
}

func TestNewEventHandlerCategory(t *testing.T) {
	eh := NewEventHandler(ecs.ID("test"), newCountingHandler())
	if eh.Category() != CategoryEventHandler {
		t.Errorf("unexpected category %q", eh.Category())
	}
	if eh.CategoryID() == "" {
		t.Errorf("expected generated category identifier")
	}
}

func TestConcurrentDeliveryNoLossNoDuplicate(t *testing.T) {
	h := newCountingHandler()
	eh := NewEventHandler(ecs.ID("test"), h)

	const goroutines = 50
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			eh.Handle(event.KeyInput{Key: i, Action: event.ActionPress})
		}(i)
	}
	wg.Wait()

	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.seen) != goroutines {
		t.Fatalf("expected %d distinct events, got %d", goroutines, len(h.seen))
	}
	for key, n := range h.seen {
		if n != 1 {
			t.Errorf("event %d delivered %d times", key, n)
		}
	}
}

func TestSetHandlerSwapsDeliveryTarget(t *testing.T) {
	first := newCountingHandler()
	second := newCountingHandler()
	eh := NewEventHandler(ecs.ID("test"), first)

	eh.Handle(event.KeyInput{Key: 1})
	eh.SetHandler(second)
	eh.Handle(event.KeyInput{Key: 2})

	first.mu.Lock()
	if len(first.seen) != 1 {
		t.Errorf("first handler saw %d events, expected 1", len(first.seen))
	}
	first.mu.Unlock()

	second.mu.Lock()
	if _, ok := second.seen[2]; !ok || len(second.seen) != 1 {
		t.Errorf("second handler saw %v, expected only key 2", second.seen)
	}
	second.mu.Unlock()
}

func TestBinderReceivesFinishedComponent(t *testing.T) {
	h := &bindingHandler{}
	h.seen = make(map[int]int)
	eh := NewEventHandler(ecs.ID("test"), h)

	if h.comp != eh {
		t.Fatalf("binder did not receive the wrapping component")
	}
	// The retained reference must be usable immediately.
	h.comp.Handle(event.KeyInput{Key: 7})
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.seen[7]; !ok {
		t.Errorf("delivery through retained reference failed")
	}
}

func TestPlainHandlerNeedsNoBinder(t *testing.T) {
	// Must not panic: countingHandler does not implement HandlerBinder.
	eh := NewEventHandler(ecs.ID("test"), newCountingHandler())
	if eh == nil {
		t.Fatal("construction failed")
	}
}

func TestAttachEntity(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateDefault("holder")
	eh := NewEventHandler(ecs.ID("test"), newCountingHandler())

	if eh.Entity() != nil {
		t.Errorf("expected nil entity before attach")
	}
	eh.Attach(e)
	e.AddComponent(CategoryEventHandler, eh)

	got := ecs.ComponentsOf[*EventHandler](e, CategoryEventHandler)
	if len(got) != 1 || got[0] != eh {
		t.Fatalf("component not retrievable from entity")
	}
	if got[0].Entity() != e {
		t.Errorf("entity back-reference missing")
	}
}
