package system

import (
	"sort"
	"time"

	"go.uber.org/zap"
)

// Runner executes registered systems in phase order each tick.
// Registration order breaks ties within a phase.
type Runner struct {
	log     *zap.Logger
	systems []System
	sorted  bool
}

func NewRunner(log *zap.Logger) *Runner {
	return &Runner{log: log}
}

func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
	r.sorted = false
	r.log.Debug("system registered",
		zap.String("system", s.Name()),
		zap.Int("phase", int(s.Phase())))
}

// Tick runs every system once, ordered by phase.
func (r *Runner) Tick(dt time.Duration) {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
	for _, s := range r.systems {
		s.Update(dt)
	}
}
