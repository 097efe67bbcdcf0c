package system

import (
	"testing"
	"time"

	"github.com/lumen3d/engine/internal/component"
	"github.com/lumen3d/engine/internal/core/ecs"
	"go.uber.org/zap"
)

type captureSink struct {
	frames [][]MeshInstance
}

func (s *captureSink) SubmitFrame(frame []MeshInstance) {
	s.frames = append(s.frames, frame)
}

func TestRenderScanCollectsMeshes(t *testing.T) {
	w := ecs.NewWorld()
	e1 := w.CreateDefault("e1")
	e1.AddComponent(component.CategoryMesh, component.NewMesh(
		[][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, nil, []uint32{0, 1, 2}))
	e1.AddComponent(component.CategoryMesh, component.NewMesh(nil, nil, nil))
	w.CreateDefault("empty")

	sink := &captureSink{}
	NewRenderScanSystem(w, sink, zap.NewNop()).Update(time.Millisecond)

	if len(sink.frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(sink.frames))
	}
	frame := sink.frames[0]
	if len(frame) != 2 {
		t.Fatalf("expected 2 mesh instances, got %d", len(frame))
	}
	for _, mi := range frame {
		if mi.EntityID != "e1" {
			t.Errorf("mesh attributed to %q", mi.EntityID)
		}
	}
	if len(frame[0].Mesh.Vertices) != 3 {
		t.Errorf("expected 3 vertices, got %d", len(frame[0].Mesh.Vertices))
	}
}

func TestRenderScanIgnoresForeignCategory(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateDefault("e1")
	e.AddComponent(component.CategoryMesh, component.Tag{Key: "not", Value: "a mesh"})

	sink := &captureSink{}
	NewRenderScanSystem(w, sink, zap.NewNop()).Update(time.Millisecond)

	if len(sink.frames[0]) != 0 {
		t.Errorf("expected empty frame, got %d instances", len(sink.frames[0]))
	}
}
