package ecs

import (
	"fmt"
	"sync"
	"testing"
)

// Test components of two distinct concrete types sharing a category.
type label struct {
	Name string
}

func (label) Category() string { return "label" }

type marker struct {
	N int
}

func (marker) Category() string { return "label" }

func TestAddComponentCreatesBucket(t *testing.T) {
	e := NewEntity("e", nil, nil)
	e.AddComponent("label", label{Name: "a"})

	got := e.Components("label")
	if len(got) != 1 {
		t.Fatalf("expected 1 component, got %d", len(got))
	}
	if got[0].(label).Name != "a" {
		t.Errorf("unexpected component %+v", got[0])
	}
}

func TestAddComponentConcurrentNoLoss(t *testing.T) {
	const (
		workers   = 8
		perWorker = 250
	)
	e := NewEntity("e", nil, nil)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				e.AddComponent("label", label{Name: fmt.Sprintf("%d-%d", w, i)})
			}
		}(w)
	}
	wg.Wait()

	got := e.Components("label")
	if len(got) != workers*perWorker {
		t.Fatalf("expected %d components, got %d", workers*perWorker, len(got))
	}
	seen := make(map[string]struct{}, len(got))
	for _, c := range got {
		seen[c.(label).Name] = struct{}{}
	}
	if len(seen) != workers*perWorker {
		t.Errorf("expected %d distinct components, got %d", workers*perWorker, len(seen))
	}
}

func TestComponentsOfFiltersByConcreteType(t *testing.T) {
	e := NewEntity("e", nil, nil)
	e.AddComponent("label", label{Name: "a"})
	e.AddComponent("label", marker{N: 1})
	e.AddComponent("label", label{Name: "b"})

	labels := ComponentsOf[label](e, "label")
	if len(labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(labels))
	}
	if labels[0].Name != "a" || labels[1].Name != "b" {
		t.Errorf("unexpected labels %+v", labels)
	}

	markers := ComponentsOf[marker](e, "label")
	if len(markers) != 1 || markers[0].N != 1 {
		t.Errorf("unexpected markers %+v", markers)
	}
}

func TestComponentsOfMissingCategoryIsEmpty(t *testing.T) {
	e := NewEntity("e", nil, nil)
	if got := ComponentsOf[label](e, "nope"); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestComponentsSnapshotIgnoresLaterMutation(t *testing.T) {
	e := NewEntity("e", nil, nil)
	e.AddComponent("label", label{Name: "a"})

	snap := e.Components("label")
	e.AddComponent("label", label{Name: "b"})
	e.RemoveComponent("label", func(Component) bool { return true })

	if len(snap) != 1 || snap[0].(label).Name != "a" {
		t.Errorf("snapshot changed under mutation: %+v", snap)
	}
}

func TestComponentsOfConcurrentWithAdds(t *testing.T) {
	e := NewEntity("e", nil, nil)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			e.AddComponent("label", label{Name: "x"})
		}
	}()
	for i := 0; i < 1000; i++ {
		for _, l := range ComponentsOf[label](e, "label") {
			if l.Name != "x" {
				t.Errorf("torn component read: %+v", l)
			}
		}
	}
	<-done
}

func TestRemoveComponentByPredicate(t *testing.T) {
	e := NewEntity("e", nil, nil)
	e.AddComponent("label", label{Name: "keep"})
	e.AddComponent("label", label{Name: "drop"})
	e.AddComponent("label", label{Name: "drop"})

	e.RemoveComponent("label", func(c Component) bool {
		l, ok := c.(label)
		return ok && l.Name == "drop"
	})

	got := e.Components("label")
	if len(got) != 1 || got[0].(label).Name != "keep" {
		t.Errorf("unexpected remainder %+v", got)
	}
}

func TestRemoveComponentMissingCategoryNoop(t *testing.T) {
	e := NewEntity("e", nil, nil)
	e.RemoveComponent("nope", func(Component) bool { return true })
	if got := e.Components("nope"); len(got) != 0 {
		t.Errorf("expected nothing, got %v", got)
	}
}

func TestNewEntityInitialComponents(t *testing.T) {
	initial := map[string][]Component{
		"label": {label{Name: "a"}, marker{N: 2}},
	}
	e := NewEntity("e", nil, initial)

	if got := e.Components("label"); len(got) != 2 {
		t.Fatalf("expected 2 initial components, got %d", len(got))
	}
	cats := e.Categories()
	if len(cats) != 1 || cats[0] != "label" {
		t.Errorf("unexpected categories %v", cats)
	}
}
