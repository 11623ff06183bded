package storage

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Codec converts values to and from the serialized strings a Backend holds.
type Codec[V any] interface {
	Encode(v V) (string, error)
	Decode(s string) (V, error)
}

// JSONCodec encodes values as JSON. It is the default codec and round-trips
// primitives, maps, slices and structs with exported fields.
type JSONCodec[V any] struct{}

func (JSONCodec[V]) Encode(v V) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (JSONCodec[V]) Decode(s string) (V, error) {
	var v V
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		var zero V
		return zero, err
	}
	return v, nil
}

// YAMLCodec encodes values as YAML documents.
type YAMLCodec[V any] struct{}

func (YAMLCodec[V]) Encode(v V) (string, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (YAMLCodec[V]) Decode(s string) (V, error) {
	var v V
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		var zero V
		return zero, err
	}
	return v, nil
}
