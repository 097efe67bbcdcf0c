package system

import (
	"time"

	"github.com/lumen3d/engine/internal/component"
	"github.com/lumen3d/engine/internal/core/ecs"
	coresys "github.com/lumen3d/engine/internal/core/system"
	"go.uber.org/zap"
)

// MeshInstance pairs a mesh with the entity carrying it.
type MeshInstance struct {
	EntityID string
	Mesh     *component.Mesh
}

// FrameSink receives the per-tick mesh batch. The GPU presenter
// implements this and uploads the raw geometry; nothing is cached
// across frames on this side.
type FrameSink interface {
	SubmitFrame(frame []MeshInstance)
}

// RenderScanSystem walks the world each tick, collects every mesh
// component and hands the batch to the frame sink.
type RenderScanSystem struct {
	world *ecs.World
	sink  FrameSink
	log   *zap.Logger
}

func NewRenderScanSystem(world *ecs.World, sink FrameSink, log *zap.Logger) *RenderScanSystem {
	return &RenderScanSystem{world: world, sink: sink, log: log}
}

func (s *RenderScanSystem) Name() string         { return "render-scan" }
func (s *RenderScanSystem) Phase() coresys.Phase { return coresys.PhaseOutput }

func (s *RenderScanSystem) Update(dt time.Duration) {
	var frame []MeshInstance
	for _, e := range s.world.Entities() {
		for _, m := range ecs.ComponentsOf[*component.Mesh](e, component.CategoryMesh) {
			frame = append(frame, MeshInstance{EntityID: e.ID(), Mesh: m})
		}
	}
	s.sink.SubmitFrame(frame)
}
