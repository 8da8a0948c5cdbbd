package rjson

import (
	"reflect"
	"testing"
)

func TestReferenceJSONCodecType(t *testing.T) {
	t.Run("DefaultCodec", func(t *testing.T) {
		codecType := ReferenceJSONCodecType()
		// Should be one of the valid reference JSON codec types
		validTypes := map[string]bool{
			"json-stdlib":    true,
			"json-goccy":     true,
			"json-segmentio": true,
		}
		if !validTypes[codecType] {
			t.Errorf("ReferenceJSONCodecType() = %v, want one of json-stdlib, json-goccy, or json-segmentio", codecType)
		}
	})
	t.Run("EnvOverride", func(t *testing.T) {
		t.Setenv("RJSON_REFERENCE_CODEC", "json-goccy")
		if got := ReferenceJSONCodecType(); got != "json-goccy" {
			t.Errorf("ReferenceJSONCodecType() = %v, want json-goccy", got)
		}
	})
}

func TestNewCodec(t *testing.T) {
	tests := []struct {
		name      string
		codecType CodecType
		wantName  string
		wantErr   bool
	}{
		{name: "Default", codecType: "", wantName: "rjson"},
		{name: "RJSON", codecType: CodecRJSON, wantName: "rjson"},
		{name: "Reference", codecType: CodecReferenceJSON, wantName: (&ReferenceJSONCodec{}).Name()},
		{name: "MessagePack", codecType: CodecMessagePack, wantName: "msgpack"},
		{name: "Unknown", codecType: "bson", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCodec(tt.codecType)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NewCodec(%q) succeeded, want error", tt.codecType)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewCodec(%q) error: %v", tt.codecType, err)
			}
			if got := c.Name(); got != tt.wantName {
				t.Errorf("Name() = %q, want %q", got, tt.wantName)
			}
		})
	}
}

func TestRJSONCodecRoundTrip(t *testing.T) {
	codec := &RJSONCodec{}

	tests := []struct {
		name  string
		input any
		want  any
	}{
		{name: "String", input: "hello world", want: "hello world"},
		{name: "Int", input: 42, want: int64(42)},
		{name: "Slice", input: []any{1, 2, 3}, want: []any{int64(1), int64(2), int64(3)}},
		{
			name: "Map",
			input: map[string]any{
				"key1": "value1",
				"key2": 42,
				"key3": true,
			},
			want: map[string]any{
				"key1": "value1",
				"key2": int64(42),
				"key3": true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := codec.Marshal(tt.input)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			var out any
			if err := codec.Unmarshal(data, &out); err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}
			if !reflect.DeepEqual(out, tt.want) {
				t.Errorf("round trip = %#v, want %#v", out, tt.want)
			}
		})
	}
}

func TestRJSONCodecUnmarshalTargets(t *testing.T) {
	codec := &RJSONCodec{}
	data := []byte(`{"a":1}`)

	t.Run("ValueTarget", func(t *testing.T) {
		var v Value
		if err := codec.Unmarshal(data, &v); err != nil {
			t.Fatalf("Unmarshal() error: %v", err)
		}
		want := ObjectValue(Member{Key: "a", Value: IntValue(1)})
		if !v.Equal(want) {
			t.Errorf("Unmarshal() = %v, want %v", v, want)
		}
	})
	t.Run("UnsupportedTarget", func(t *testing.T) {
		var s string
		if err := codec.Unmarshal(data, &s); err == nil {
			t.Error("Unmarshal(*string) succeeded, want error")
		}
	})
}

func TestMessagePackCodecRoundTrip(t *testing.T) {
	codec := &MessagePackCodec{}

	in := map[string]any{"value": int64(42), "name": "x"}
	data, err := codec.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var out map[string]any
	if err := codec.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if out["name"] != "x" {
		t.Errorf("name = %v, want x", out["name"])
	}
}

func TestMessagePackCodecAcceptsValue(t *testing.T) {
	codec := &MessagePackCodec{}
	v := ObjectValue(Member{Key: "n", Value: IntValue(7)})
	data, err := codec.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal(Value) error: %v", err)
	}
	var out map[string]any
	if err := codec.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if got, ok := out["n"]; !ok || got == nil {
		t.Errorf("out[n] = %v, want 7", got)
	}
}

func TestReferenceCodecAgreesOnCompactOutput(t *testing.T) {
	// The native encoder and the reference codec must produce identical
	// bytes for values whose compact form is unambiguous.
	ref := &ReferenceJSONCodec{}
	native := &RJSONCodec{}
	values := []any{
		[]any{int64(1), int64(2), int64(3)},
		map[string]any{"a": int64(1), "b": int64(2)},
		"plain text",
		true,
		nil,
	}
	for _, v := range values {
		got, err := native.Marshal(v)
		if err != nil {
			t.Fatalf("native Marshal(%v) error: %v", v, err)
		}
		want, err := ref.Marshal(v)
		if err != nil {
			t.Fatalf("reference Marshal(%v) error: %v", v, err)
		}
		if string(got) != string(want) {
			t.Errorf("Marshal(%v): native %s, reference %s", v, got, want)
		}
	}
}
