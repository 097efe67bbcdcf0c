package scene

import (
	"errors"
	"sync"

	"github.com/lumen3d/engine/internal/component"
	"github.com/lumen3d/engine/internal/core/ecs"
)

// MaxLights caps the light list; the presenter's uniform block has a
// fixed size.
const MaxLights = 255

// ErrTooManyLights is returned by AddLight once MaxLights is reached.
var ErrTooManyLights = errors.New("scene: light limit reached")

// Scene is the aggregate a renderer consumes: the world plus the active
// camera, the light list and the ambient factor. Camera, lights and
// ambient are each swappable at runtime under the scene lock.
type Scene struct {
	World *ecs.World

	mu      sync.Mutex
	camera  *component.Camera
	lights  []*component.Light
	ambient float32
}

// New builds a scene around the world. lights may be nil.
func New(world *ecs.World, camera *component.Camera, lights []*component.Light, ambient float32) *Scene {
	return &Scene{
		World:   world,
		camera:  camera,
		lights:  append([]*component.Light(nil), lights...),
		ambient: ambient,
	}
}

// Camera returns the active camera.
func (s *Scene) Camera() *component.Camera {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.camera
}

// SetCamera swaps the active camera.
func (s *Scene) SetCamera(c *component.Camera) {
	s.mu.Lock()
	s.camera = c
	s.mu.Unlock()
}

// Lights returns a snapshot of the light list.
func (s *Scene) Lights() []*component.Light {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*component.Light, len(s.lights))
	copy(out, s.lights)
	return out
}

// AddLight appends a light, failing once MaxLights is reached.
func (s *Scene) AddLight(l *component.Light) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lights) >= MaxLights {
		return ErrTooManyLights
	}
	s.lights = append(s.lights, l)
	return nil
}

// Ambient returns the ambient light factor.
func (s *Scene) Ambient() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ambient
}

// SetAmbient sets the ambient light factor.
func (s *Scene) SetAmbient(a float32) {
	s.mu.Lock()
	s.ambient = a
	s.mu.Unlock()
}
