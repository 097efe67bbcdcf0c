package event

import "sync"

// Queue is a double-buffered event queue. Producers push into the back
// buffer from any goroutine; the dispatcher swaps buffers once per tick
// and drains the front. Events pushed during a drain land in the next
// tick's batch instead of extending the current one.
type Queue struct {
	mu    sync.Mutex
	front []Event
	back  []Event
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push queues an event for the next swap. Safe from any goroutine.
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	q.back = append(q.back, ev)
	q.mu.Unlock()
}

// Swap rotates the buffers and returns the batch to drain. The returned
// slice is reused on the swap after next, so callers must finish with
// it before calling Swap again. Only one goroutine may drive Swap.
func (q *Queue) Swap() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.front, q.back = q.back, q.front[:0]
	return q.front
}

// Pending reports how many events are waiting in the back buffer.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.back)
}
