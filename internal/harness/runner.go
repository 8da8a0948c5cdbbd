package harness

import (
	"fmt"
	"time"

	"github.com/rjson-dev/rjson/pkg/rjson"
)

// Result summarizes one codec over one fixture.
type Result struct {
	Codec        string
	Fixture      string
	PayloadBytes int
	EncodeNsOp   float64
	DecodeNsOp   float64
	EncodeMBs    float64
	DecodeMBs    float64
}

// Run measures every configured codec against every configured fixture
// and reports the results through the logger.
func Run(cfg *Config, logger *Logger) ([]Result, error) {
	fixtures, err := Fixtures(cfg.Bench)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(fixtures)*len(cfg.Bench.Codecs))
	for _, fixture := range fixtures {
		for _, name := range cfg.Bench.Codecs {
			codec, err := rjson.NewCodec(rjson.CodecType(name))
			if err != nil {
				return nil, err
			}
			res, err := runOne(codec, fixture, cfg.Bench)
			if err != nil {
				return nil, fmt.Errorf("%s/%s: %w", fixture.Name, codec.Name(), err)
			}
			logger.WithFixture(fixture.Name).WithCodec(codec.Name()).Info("bench result",
				"payload_bytes", res.PayloadBytes,
				"encode_ns_op", res.EncodeNsOp,
				"decode_ns_op", res.DecodeNsOp,
				"encode_mb_s", res.EncodeMBs,
				"decode_mb_s", res.DecodeMBs,
			)
			results = append(results, res)
		}
	}
	return results, nil
}

func runOne(codec rjson.Codec, fixture Fixture, cfg BenchConfig) (Result, error) {
	payload, err := codec.Marshal(fixture.Data)
	if err != nil {
		return Result{}, err
	}

	for i := 0; i < cfg.Warmup; i++ {
		if _, err := codec.Marshal(fixture.Data); err != nil {
			return Result{}, err
		}
		var out any
		if err := codec.Unmarshal(payload, &out); err != nil {
			return Result{}, err
		}
	}

	start := time.Now()
	for i := 0; i < cfg.Iterations; i++ {
		if _, err := codec.Marshal(fixture.Data); err != nil {
			return Result{}, err
		}
	}
	encodeNs := float64(time.Since(start).Nanoseconds()) / float64(cfg.Iterations)

	start = time.Now()
	for i := 0; i < cfg.Iterations; i++ {
		var out any
		if err := codec.Unmarshal(payload, &out); err != nil {
			return Result{}, err
		}
	}
	decodeNs := float64(time.Since(start).Nanoseconds()) / float64(cfg.Iterations)

	return Result{
		Codec:        codec.Name(),
		Fixture:      fixture.Name,
		PayloadBytes: len(payload),
		EncodeNsOp:   encodeNs,
		DecodeNsOp:   decodeNs,
		EncodeMBs:    throughput(len(payload), encodeNs),
		DecodeMBs:    throughput(len(payload), decodeNs),
	}, nil
}

func throughput(payloadBytes int, nsPerOp float64) float64 {
	if nsPerOp <= 0 {
		return 0
	}
	return float64(payloadBytes) / nsPerOp * 1e9 / (1 << 20)
}
