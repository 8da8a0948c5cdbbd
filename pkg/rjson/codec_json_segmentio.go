//go:build json_segmentio

package rjson

import (
	"github.com/segmentio/encoding/json"
)

// ReferenceJSONCodec is the baseline JSON codec the conformance tests and
// tooling compare against, here backed by segmentio/encoding/json.
type ReferenceJSONCodec struct{}

// Marshal serializes a value to JSON bytes using segmentio/encoding/json.
func (c *ReferenceJSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal deserializes JSON bytes to a value using segmentio/encoding/json.
func (c *ReferenceJSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Name returns the name of the codec.
func (c *ReferenceJSONCodec) Name() string {
	return "json-segmentio"
}
