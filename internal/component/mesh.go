package component

import "github.com/lumen3d/engine/internal/core/ecs"

// CategoryMesh is the bucket key the render scan queries.
const CategoryMesh = "mesh"

// Mesh carries raw geometry for the renderer to upload as GPU buffers
// each frame. The core does not interpret the data; it only stores it.
type Mesh struct {
	ID       string       `json:"id"`
	Vertices [][3]float32 `json:"vertices"`
	Normals  [][3]float32 `json:"normals"`
	Indices  []uint32     `json:"indices"`
}

// NewMesh builds a mesh component with a generated identifier.
func NewMesh(vertices, normals [][3]float32, indices []uint32) *Mesh {
	return &Mesh{
		ID:       ecs.ID(CategoryMesh),
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}
}

func (*Mesh) Category() string { return CategoryMesh }
