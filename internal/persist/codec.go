package persist

import (
	"encoding/json"
	"fmt"

	"github.com/lumen3d/engine/internal/component"
	"github.com/lumen3d/engine/internal/core/ecs"
)

// Codec serializes one component category. Encode reports false for
// component values it cannot represent, which excludes them from
// snapshots without failing the save.
type Codec struct {
	Encode func(c ecs.Component) ([]byte, bool)
	Decode func(data []byte) (ecs.Component, error)
}

// CodecRegistry maps category keys to codecs. Categories without a
// registered codec are skipped entirely when a snapshot is taken.
type CodecRegistry struct {
	codecs map[string]Codec
}

func NewCodecRegistry() *CodecRegistry {
	return &CodecRegistry{codecs: make(map[string]Codec)}
}

func (r *CodecRegistry) Register(category string, c Codec) {
	r.codecs[category] = c
}

func (r *CodecRegistry) encode(category string, c ecs.Component) ([]byte, bool) {
	codec, ok := r.codecs[category]
	if !ok {
		return nil, false
	}
	return codec.Encode(c)
}

func (r *CodecRegistry) decode(category string, data []byte) (ecs.Component, error) {
	codec, ok := r.codecs[category]
	if !ok {
		return nil, fmt.Errorf("no codec for category %q", category)
	}
	return codec.Decode(data)
}

// jsonCodec builds a Codec for a concrete component type using
// encoding/json.
func jsonCodec[T ecs.Component]() Codec {
	return Codec{
		Encode: func(c ecs.Component) ([]byte, bool) {
			v, ok := c.(T)
			if !ok {
				return nil, false
			}
			data, err := json.Marshal(v)
			if err != nil {
				return nil, false
			}
			return data, true
		},
		Decode: func(data []byte) (ecs.Component, error) {
			var v T
			if err := json.Unmarshal(data, &v); err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}

// jsonPtrCodec is jsonCodec for pointer components, allocating the
// target on decode.
func jsonPtrCodec[T any, PT interface {
	*T
	ecs.Component
}]() Codec {
	return Codec{
		Encode: func(c ecs.Component) ([]byte, bool) {
			v, ok := c.(PT)
			if !ok {
				return nil, false
			}
			data, err := json.Marshal(v)
			if err != nil {
				return nil, false
			}
			return data, true
		},
		Decode: func(data []byte) (ecs.Component, error) {
			v := PT(new(T))
			if err := json.Unmarshal(data, v); err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}

// DefaultRegistry covers the built-in data components. Event handlers
// wrap live callbacks and are deliberately not serializable.
func DefaultRegistry() *CodecRegistry {
	r := NewCodecRegistry()
	r.Register(component.CategoryTag, jsonCodec[component.Tag]())
	r.Register(component.CategoryMesh, jsonPtrCodec[component.Mesh]())
	r.Register(component.CategoryCamera, jsonPtrCodec[component.Camera]())
	r.Register(component.CategoryLight, jsonPtrCodec[component.Light]())
	return r
}
