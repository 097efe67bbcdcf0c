package event

import (
	"sync"
	"testing"
	"time"
)

func TestQueueSwapDrainsAll(t *testing.T) {
	q := NewQueue()
	q.Push(CloseRequested{})
	q.Push(Resized{Width: 800, Height: 600})

	batch := q.Swap()
	if len(batch) != 2 {
		t.Fatalf("expected 2 events, got %d", len(batch))
	}
	if _, ok := batch[0].(CloseRequested); !ok {
		t.Errorf("expected CloseRequested first, got %T", batch[0])
	}
	if r, ok := batch[1].(Resized); !ok || r.Width != 800 {
		t.Errorf("unexpected second event %+v", batch[1])
	}

	if len(q.Swap()) != 0 {
		t.Errorf("second swap should be empty")
	}
}

func TestQueuePushDuringDrainLandsInNextBatch(t *testing.T) {
	q := NewQueue()
	q.Push(RedrawRequested{})

	batch := q.Swap()
	q.Push(Tick{Delta: time.Millisecond})

	if len(batch) != 1 {
		t.Fatalf("current batch grew: %d", len(batch))
	}
	next := q.Swap()
	if len(next) != 1 {
		t.Fatalf("expected deferred event in next batch, got %d", len(next))
	}
	if _, ok := next[0].(Tick); !ok {
		t.Errorf("expected Tick, got %T", next[0])
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()
	const (
		producers   = 10
		perProducer = 100
	)
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(KeyInput{Key: p*perProducer + i, Action: ActionPress})
			}
		}(p)
	}
	wg.Wait()

	if q.Pending() != producers*perProducer {
		t.Fatalf("expected %d pending, got %d", producers*perProducer, q.Pending())
	}
	batch := q.Swap()
	seen := make(map[int]struct{}, len(batch))
	for _, ev := range batch {
		seen[ev.(KeyInput).Key] = struct{}{}
	}
	if len(seen) != producers*perProducer {
		t.Errorf("lost or duplicated events: %d distinct", len(seen))
	}
}
