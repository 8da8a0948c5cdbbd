package rjson

import (
	"fmt"
	"os"
)

// Codec is the pluggable encoding interface shared by the native codec,
// the reference JSON codec and the MessagePack codec. It operates on the
// dynamic Go representation so backends can be swapped in benchmarks and
// tooling without touching call sites.
type Codec interface {
	// Marshal serializes a value to bytes
	Marshal(v any) ([]byte, error)

	// Unmarshal deserializes bytes to a value
	Unmarshal(data []byte, v any) error

	// Name returns the name of the codec
	Name() string
}

// CodecType selects a codec implementation.
type CodecType string

const (
	// CodecRJSON is the native hand-rolled JSON codec (default)
	CodecRJSON CodecType = "rjson"
	// CodecReferenceJSON is the build-tag-selected baseline JSON codec
	CodecReferenceJSON CodecType = "json-reference"
	// CodecMessagePack uses MessagePack encoding
	CodecMessagePack CodecType = "msgpack"
)

// ReferenceJSONCodecType returns the reference JSON codec implementation
// compiled in. Can be overridden with the RJSON_REFERENCE_CODEC
// environment variable.
func ReferenceJSONCodecType() string {
	if codecType := os.Getenv("RJSON_REFERENCE_CODEC"); codecType != "" {
		return codecType
	}
	return (&ReferenceJSONCodec{}).Name()
}

// NewCodec creates a new codec based on the type.
func NewCodec(codecType CodecType) (Codec, error) {
	switch codecType {
	case CodecRJSON, "":
		return &RJSONCodec{}, nil
	case CodecReferenceJSON:
		return &ReferenceJSONCodec{}, nil
	case CodecMessagePack:
		return &MessagePackCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown codec type: %s", codecType)
	}
}

// RJSONCodec adapts the native encoder and decoder to the Codec
// interface.
type RJSONCodec struct{}

// Marshal serializes a value using the native encoder.
func (c *RJSONCodec) Marshal(v any) ([]byte, error) {
	return Marshal(v)
}

// Unmarshal decodes JSON into *any or *Value.
func (c *RJSONCodec) Unmarshal(data []byte, v any) error {
	switch out := v.(type) {
	case *any:
		decoded, err := Unmarshal(data)
		if err != nil {
			return err
		}
		*out = decoded
		return nil
	case *Value:
		decoded, err := Decode(data)
		if err != nil {
			return err
		}
		*out = decoded
		return nil
	default:
		return fmt.Errorf("rjson codec: unsupported unmarshal target %T", v)
	}
}

// Name returns the name of the codec.
func (c *RJSONCodec) Name() string {
	return "rjson"
}
