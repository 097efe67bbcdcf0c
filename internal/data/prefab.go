package data

import (
	"fmt"
	"os"

	"github.com/lumen3d/engine/internal/component"
	"github.com/lumen3d/engine/internal/core/ecs"
	"gopkg.in/yaml.v3"
)

// PrefabDef describes the components a spawned entity starts with.
type PrefabDef struct {
	Name   string     `yaml:"name"`
	Tags   []TagDef   `yaml:"tags"`
	Meshes []MeshDef  `yaml:"meshes"`
	Camera *CameraDef `yaml:"camera"`
	Lights []LightDef `yaml:"lights"`
}

type TagDef struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

type MeshDef struct {
	Vertices [][3]float32 `yaml:"vertices"`
	Normals  [][3]float32 `yaml:"normals"`
	Indices  []uint32     `yaml:"indices"`
}

type CameraDef struct {
	Position [3]float32 `yaml:"position"`
	LookAt   [3]float32 `yaml:"look_at"`
	FOV      float32    `yaml:"fov"`
}

type LightDef struct {
	Position  [3]float32 `yaml:"position"`
	Color     [3]float32 `yaml:"color"`
	Intensity float32    `yaml:"intensity"`
}

type prefabFile struct {
	Prefabs []PrefabDef `yaml:"prefabs"`
}

// PrefabTable holds all prefab definitions indexed by name.
type PrefabTable struct {
	prefabs map[string]*PrefabDef
}

// LoadPrefabs loads prefab definitions from a YAML file.
func LoadPrefabs(path string) (*PrefabTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prefabs: %w", err)
	}
	var f prefabFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse prefabs: %w", err)
	}
	t := &PrefabTable{prefabs: make(map[string]*PrefabDef, len(f.Prefabs))}
	for i := range f.Prefabs {
		p := &f.Prefabs[i]
		if p.Name == "" {
			return nil, fmt.Errorf("prefab %d: missing name", i)
		}
		t.prefabs[p.Name] = p
	}
	return t, nil
}

// Get returns a prefab by name, or nil if not found.
func (t *PrefabTable) Get(name string) *PrefabDef {
	return t.prefabs[name]
}

// Count returns the number of loaded prefabs.
func (t *PrefabTable) Count() int {
	return len(t.prefabs)
}

// Spawn instantiates the named prefab as a tracked entity with the
// given id.
func (t *PrefabTable) Spawn(w *ecs.World, name, id string) (*ecs.Entity, error) {
	p := t.prefabs[name]
	if p == nil {
		return nil, fmt.Errorf("unknown prefab %q", name)
	}

	components := make(map[string][]ecs.Component)
	for _, tag := range p.Tags {
		components[component.CategoryTag] = append(components[component.CategoryTag],
			component.Tag{Key: tag.Key, Value: tag.Value})
	}
	for _, m := range p.Meshes {
		components[component.CategoryMesh] = append(components[component.CategoryMesh],
			component.NewMesh(m.Vertices, m.Normals, m.Indices))
	}
	if p.Camera != nil {
		components[component.CategoryCamera] = append(components[component.CategoryCamera],
			component.NewCamera(p.Camera.Position, p.Camera.LookAt, p.Camera.FOV))
	}
	for _, l := range p.Lights {
		components[component.CategoryLight] = append(components[component.CategoryLight],
			component.NewLight(l.Position, l.Color, l.Intensity))
	}

	return w.Create(id, components), nil
}
