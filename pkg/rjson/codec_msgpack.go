package rjson

import (
	"github.com/vmihailenco/msgpack/v5"
)

// MessagePackCodec implements Codec using MessagePack encoding, for
// tooling that converts JSON documents to a binary representation.
type MessagePackCodec struct{}

// Marshal serializes a value to MessagePack bytes.
func (c *MessagePackCodec) Marshal(v any) ([]byte, error) {
	if val, ok := v.(Value); ok {
		v = ToAny(val)
	}
	return msgpack.Marshal(v)
}

// Unmarshal deserializes MessagePack bytes to a value.
func (c *MessagePackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

// Name returns the name of the codec.
func (c *MessagePackCodec) Name() string {
	return "msgpack"
}
