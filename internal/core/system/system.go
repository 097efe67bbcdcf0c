package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput   Phase = iota // 0: drain the event queue, deliver to handlers
	PhaseUpdate               // 1: scripts and simulation
	PhaseOutput               // 2: scans feeding the presenter
	PhasePersist              // 3: snapshot flush
)

// System is the interface every engine system implements. Name is used
// for logging only.
type System interface {
	Name() string
	Phase() Phase
	Update(dt time.Duration)
}
