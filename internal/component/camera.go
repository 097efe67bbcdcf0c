package component

import "github.com/lumen3d/engine/internal/core/ecs"

// CategoryCamera is the bucket key for camera components.
const CategoryCamera = "camera"

// Camera describes a view into the world. FOV is vertical, in degrees.
type Camera struct {
	ID       string     `json:"id"`
	Position [3]float32 `json:"position"`
	LookAt   [3]float32 `json:"look_at"`
	Up       [3]float32 `json:"up"`
	FOV      float32    `json:"fov"`
	Near     float32    `json:"near"`
	Far      float32    `json:"far"`
}

// NewCamera builds a camera at position looking at target with sane
// clip planes.
func NewCamera(position, lookAt [3]float32, fov float32) *Camera {
	return &Camera{
		ID:       ecs.ID(CategoryCamera),
		Position: position,
		LookAt:   lookAt,
		Up:       [3]float32{0, 1, 0},
		FOV:      fov,
		Near:     0.1,
		Far:      1000,
	}
}

func (*Camera) Category() string { return CategoryCamera }
