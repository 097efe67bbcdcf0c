package system

import (
	"time"

	"github.com/lumen3d/engine/internal/component"
	"github.com/lumen3d/engine/internal/core/ecs"
	"github.com/lumen3d/engine/internal/core/event"
	coresys "github.com/lumen3d/engine/internal/core/system"
	"go.uber.org/zap"
)

// DispatchSystem drains the event queue once per tick and delivers each
// event to every event-handler component in the world. Delivery order
// across handlers is unspecified; handlers must tolerate any order.
type DispatchSystem struct {
	queue *event.Queue
	world *ecs.World
	log   *zap.Logger
}

func NewDispatchSystem(queue *event.Queue, world *ecs.World, log *zap.Logger) *DispatchSystem {
	return &DispatchSystem{queue: queue, world: world, log: log}
}

func (s *DispatchSystem) Name() string         { return "dispatch" }
func (s *DispatchSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *DispatchSystem) Update(dt time.Duration) {
	events := s.queue.Swap()
	if len(events) == 0 {
		return
	}

	entities := s.world.Entities()
	delivered := 0
	for _, ev := range events {
		for _, e := range entities {
			for _, eh := range ecs.ComponentsOf[*component.EventHandler](e, component.CategoryEventHandler) {
				eh.Handle(ev)
				delivered++
			}
		}
	}
	s.log.Debug("events dispatched",
		zap.Int("events", len(events)),
		zap.Int("deliveries", delivered))
}
