package harness

import (
	"reflect"
	"testing"

	"github.com/rjson-dev/rjson/pkg/rjson"
)

func TestFixturesDeterministic(t *testing.T) {
	cfg := BenchConfig{
		Fixtures: []string{
			"simple", "nested", "bulk_ints", "bulk_floats", "bulk_strings",
			"mixed_array", "string_heavy", "large_dict",
		},
		ArraySize: 64,
		Depth:     8,
	}
	a, err := Fixtures(cfg)
	if err != nil {
		t.Fatalf("Fixtures() error: %v", err)
	}
	b, err := Fixtures(cfg)
	if err != nil {
		t.Fatalf("Fixtures() error: %v", err)
	}
	if len(a) != len(cfg.Fixtures) {
		t.Fatalf("fixture count = %d, want %d", len(a), len(cfg.Fixtures))
	}
	for i := range a {
		if !reflect.DeepEqual(a[i].Data, b[i].Data) {
			t.Errorf("fixture %s is not deterministic", a[i].Name)
		}
	}
}

func TestFixturesUnknownName(t *testing.T) {
	_, err := Fixtures(BenchConfig{Fixtures: []string{"bogus"}, ArraySize: 8, Depth: 2})
	if err == nil {
		t.Error("Fixtures() succeeded for unknown fixture name")
	}
}

func TestFixturesEncodable(t *testing.T) {
	// every fixture must survive a native round trip
	cfg := BenchConfig{
		Fixtures: []string{
			"simple", "nested", "bulk_ints", "bulk_floats", "bulk_strings",
			"mixed_array", "string_heavy", "large_dict",
		},
		ArraySize: 32,
		Depth:     6,
	}
	fixtures, err := Fixtures(cfg)
	if err != nil {
		t.Fatalf("Fixtures() error: %v", err)
	}
	for _, f := range fixtures {
		data, err := rjson.Marshal(f.Data)
		if err != nil {
			t.Errorf("Marshal(%s) error: %v", f.Name, err)
			continue
		}
		if _, err := rjson.Unmarshal(data); err != nil {
			t.Errorf("Unmarshal(%s) error: %v", f.Name, err)
		}
	}
}

func TestBulkFixtureShapes(t *testing.T) {
	if got := len(BulkInts(100)); got != 100 {
		t.Errorf("BulkInts length = %d, want 100", got)
	}
	if got := len(BulkStrings(10)); got != 10 {
		t.Errorf("BulkStrings length = %d, want 10", got)
	}
	nested := Nested(5)
	depth := 0
	for cur := nested; cur != nil; {
		depth++
		next, _ := cur["nested"].(map[string]any)
		cur = next
	}
	if depth != 5 {
		t.Errorf("Nested(5) depth = %d, want 5", depth)
	}
	if got := len(LargeDict(40)); got != 40 {
		t.Errorf("LargeDict size = %d, want 40", got)
	}
}

func TestRunSmoke(t *testing.T) {
	cfg := &Config{
		Bench: BenchConfig{
			Fixtures:   []string{"simple", "bulk_ints"},
			Codecs:     []string{"rjson", "json-reference", "msgpack"},
			Iterations: 5,
			Warmup:     1,
			ArraySize:  16,
			Depth:      3,
		},
		Logging: LoggingConfig{Level: "error", Format: "text"},
	}
	results, err := Run(cfg, NewLogger(cfg.Logging))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(results) != 6 {
		t.Fatalf("result count = %d, want 6", len(results))
	}
	for _, r := range results {
		if r.PayloadBytes <= 0 {
			t.Errorf("%s/%s payload bytes = %d", r.Fixture, r.Codec, r.PayloadBytes)
		}
		if r.EncodeNsOp < 0 || r.DecodeNsOp < 0 {
			t.Errorf("%s/%s negative timing", r.Fixture, r.Codec)
		}
	}
}
