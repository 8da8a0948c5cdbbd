package harness

import (
	"fmt"
)

// Fixture is one named benchmark payload in the dynamic Go
// representation. Generation is deterministic: the same name and
// parameters always produce the same payload.
type Fixture struct {
	Name string
	Data any
}

// Fixtures builds the payloads selected by cfg.
func Fixtures(cfg BenchConfig) ([]Fixture, error) {
	out := make([]Fixture, 0, len(cfg.Fixtures))
	for _, name := range cfg.Fixtures {
		data, err := buildFixture(name, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, Fixture{Name: name, Data: data})
	}
	return out, nil
}

func buildFixture(name string, cfg BenchConfig) (any, error) {
	switch name {
	case "simple":
		return SimpleObject(), nil
	case "nested":
		return Nested(cfg.Depth), nil
	case "bulk_ints":
		return BulkInts(cfg.ArraySize), nil
	case "bulk_floats":
		return BulkFloats(cfg.ArraySize), nil
	case "bulk_strings":
		return BulkStrings(cfg.ArraySize), nil
	case "mixed_array":
		return MixedArray(cfg.ArraySize), nil
	case "string_heavy":
		return StringHeavy(cfg.ArraySize), nil
	case "large_dict":
		return LargeDict(cfg.ArraySize), nil
	default:
		return nil, fmt.Errorf("unknown fixture: %s", name)
	}
}

// SimpleObject is a small API-response-shaped payload.
func SimpleObject() map[string]any {
	return map[string]any{
		"name":    "benchmark",
		"version": 3,
		"active":  true,
		"score":   98.6,
		"tags":    []any{"fast", "compact", "strict"},
		"owner":   nil,
	}
}

// Nested builds a structure depth levels deep, one object per level.
func Nested(depth int) map[string]any {
	data := map[string]any{"level": depth - 1, "leaf": true}
	for i := depth - 2; i >= 0; i-- {
		data = map[string]any{"level": i, "nested": data}
	}
	return data
}

// BulkInts is a homogeneous integer array, the bulk fast path's best
// case.
func BulkInts(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = i - n/2
	}
	return out
}

// BulkFloats is a homogeneous float array.
func BulkFloats(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = float64(i) * 1.5
	}
	return out
}

// BulkStrings is a homogeneous array of identifier-like ASCII strings,
// the escape-free fast path's best case.
func BulkStrings(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = fmt.Sprintf("item_%06d", i)
	}
	return out
}

// MixedArray cycles through scalar types so the bulk pre-pass always
// falls back to the generic encoder.
func MixedArray(n int) []any {
	out := make([]any, n)
	for i := range out {
		switch i % 4 {
		case 0:
			out[i] = i
		case 1:
			out[i] = float64(i) + 0.5
		case 2:
			out[i] = fmt.Sprintf("s%d", i)
		case 3:
			out[i] = i%8 == 3
		}
	}
	return out
}

// StringHeavy is records of text fields, including multi-byte content
// and characters that must be escaped.
func StringHeavy(n int) map[string]any {
	records := make([]any, n/10+1)
	for i := range records {
		records[i] = map[string]any{
			"id":      fmt.Sprintf("rec-%08d", i),
			"title":   fmt.Sprintf("Record %d: \"quoted\" and\ttabbed", i),
			"body":    "The quick brown fox jumps over the lazy dog. 速い茶色の狐。",
			"comment": "line one\nline two\nline three",
		}
	}
	return map[string]any{"records": records}
}

// LargeDict is a flat object with n members.
func LargeDict(n int) map[string]any {
	out := make(map[string]any, n)
	for i := 0; i < n; i++ {
		out[fmt.Sprintf("key_%d", i)] = i
	}
	return out
}
