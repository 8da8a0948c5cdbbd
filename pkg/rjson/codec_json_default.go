//go:build !json_goccy && !json_segmentio

package rjson

import (
	"encoding/json"
)

// ReferenceJSONCodec is the baseline JSON codec the conformance tests and
// tooling compare against, here backed by standard library encoding/json.
type ReferenceJSONCodec struct{}

// Marshal serializes a value to JSON bytes using the standard library.
func (c *ReferenceJSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal deserializes JSON bytes to a value using the standard library.
func (c *ReferenceJSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Name returns the name of the codec.
func (c *ReferenceJSONCodec) Name() string {
	return "json-stdlib"
}
