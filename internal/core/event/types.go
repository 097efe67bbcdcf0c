package event

import "time"

// Event is a single input or window event delivered to event-handler
// components. The concrete types below form the whole vocabulary; the
// marker method keeps arbitrary values out of the queue.
type Event interface {
	isEvent()
}

// Action distinguishes press, release and key-repeat input transitions.
type Action int

const (
	ActionRelease Action = iota
	ActionPress
	ActionRepeat
)

// CloseRequested is emitted when the user asks the window to close.
type CloseRequested struct{}

// Resized carries the new framebuffer size in pixels.
type Resized struct {
	Width  int
	Height int
}

// RedrawRequested asks consumers to produce a new frame.
type RedrawRequested struct{}

// Tick is emitted once per engine tick with the elapsed time.
type Tick struct {
	Delta time.Duration
}

// KeyInput is a keyboard transition. Key uses the platform layer's
// keycode space; Mods is a bitmask of held modifiers.
type KeyInput struct {
	Key    int
	Action Action
	Mods   int
}

// CursorMoved carries the pointer position in window coordinates.
type CursorMoved struct {
	X float64
	Y float64
}

// MouseButton is a pointer button transition.
type MouseButton struct {
	Button int
	Action Action
}

func (CloseRequested) isEvent()  {}
func (Resized) isEvent()         {}
func (RedrawRequested) isEvent() {}
func (Tick) isEvent()            {}
func (KeyInput) isEvent()        {}
func (CursorMoved) isEvent()     {}
func (MouseButton) isEvent()     {}
