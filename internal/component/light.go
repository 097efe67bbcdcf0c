package component

import "github.com/lumen3d/engine/internal/core/ecs"

// CategoryLight is the bucket key for light components.
const CategoryLight = "light"

// Light is a point light. Color channels are linear 0..1.
type Light struct {
	ID        string     `json:"id"`
	Position  [3]float32 `json:"position"`
	Color     [3]float32 `json:"color"`
	Intensity float32    `json:"intensity"`
}

// NewLight builds a light component with a generated identifier.
func NewLight(position, color [3]float32, intensity float32) *Light {
	return &Light{
		ID:        ecs.ID(CategoryLight),
		Position:  position,
		Color:     color,
		Intensity: intensity,
	}
}

func (*Light) Category() string { return CategoryLight }
