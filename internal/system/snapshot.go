package system

import (
	"context"
	"time"

	"github.com/lumen3d/engine/internal/core/ecs"
	coresys "github.com/lumen3d/engine/internal/core/system"
	"github.com/lumen3d/engine/internal/persist"
	"go.uber.org/zap"
)

// SnapshotSystem persists a periodic world snapshot. A failed save is
// logged and retried on the next interval.
type SnapshotSystem struct {
	repo     *persist.SnapshotRepo
	world    *ecs.World
	log      *zap.Logger
	interval time.Duration
	elapsed  time.Duration
}

func NewSnapshotSystem(repo *persist.SnapshotRepo, world *ecs.World, interval time.Duration, log *zap.Logger) *SnapshotSystem {
	return &SnapshotSystem{repo: repo, world: world, interval: interval, log: log}
}

func (s *SnapshotSystem) Name() string         { return "snapshot" }
func (s *SnapshotSystem) Phase() coresys.Phase { return coresys.PhasePersist }

func (s *SnapshotSystem) Update(dt time.Duration) {
	s.elapsed += dt
	if s.elapsed < s.interval {
		return
	}
	s.elapsed = 0

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := s.repo.Save(ctx, s.world); err != nil {
		s.log.Error("periodic snapshot failed", zap.Error(err))
	}
}
