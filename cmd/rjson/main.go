package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rjson-dev/rjson/internal/harness"
	"github.com/rjson-dev/rjson/pkg/rjson"
)

var rootCmd = &cobra.Command{
	Use:   "rjson",
	Short: "rjson - fast strict JSON codec",
	Long: `rjson is a high-performance JSON codec with a strict RFC 8259 parser
and a compact encoder. This tool validates, minifies, converts and
benchmarks JSON documents using the library.`,
	Version: "0.1.0",
}

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Strictly parse JSON files",
	Long: `Parses each file with the strict decoder and reports the byte offset
of the first grammar violation, if any.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

var minifyCmd = &cobra.Command{
	Use:   "minify FILE",
	Short: "Re-encode a JSON file in compact form",
	Args:  cobra.ExactArgs(1),
	RunE:  runMinify,
}

var convertCmd = &cobra.Command{
	Use:   "convert FILE",
	Short: "Convert between JSON and MessagePack",
	Long: `Reads a JSON document and writes its MessagePack encoding, or the
reverse with --from msgpack.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark codecs over the fixture corpus",
	Long: `Runs the configured codecs (native, reference JSON, MessagePack) over
deterministic fixture payloads and logs per-codec throughput.`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(minifyCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(benchCmd)

	minifyCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	convertCmd.Flags().String("from", "json", "Input format: json or msgpack")
	convertCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	benchCmd.Flags().String("config", "", "Config file (YAML)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if _, err := rjson.Decode(data); err != nil {
			failed++
			var perr *rjson.ParseError
			if errors.As(err, &perr) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: invalid at offset %d: %s\n", path, perr.Offset, perr.Msg)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: invalid: %v\n", path, err)
			}
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files invalid", failed, len(args))
	}
	return nil
}

func runMinify(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	v, err := rjson.Decode(data)
	if err != nil {
		return err
	}
	out, err := rjson.EncodeBytes(v)
	if err != nil {
		return err
	}
	return writeOutput(cmd, out)
}

func runConvert(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetString("from")
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	msgpackCodec, err := rjson.NewCodec(rjson.CodecMessagePack)
	if err != nil {
		return err
	}

	var out []byte
	switch from {
	case "json":
		v, err := rjson.Unmarshal(data)
		if err != nil {
			return err
		}
		if out, err = msgpackCodec.Marshal(v); err != nil {
			return err
		}
	case "msgpack":
		var v any
		if err := msgpackCodec.Unmarshal(data, &v); err != nil {
			return err
		}
		if out, err = rjson.Marshal(normalizeMsgpack(v)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown input format: %s", from)
	}
	return writeOutput(cmd, out)
}

// normalizeMsgpack widens the narrow types the MessagePack decoder
// produces into the codec's dynamic representation.
func normalizeMsgpack(v any) any {
	switch x := v.(type) {
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return x // rejected later if it overflows int64
	case float32:
		return float64(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalizeMsgpack(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = normalizeMsgpack(e)
		}
		return out
	default:
		return v
	}
}

func runBench(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := harness.LoadConfig(configPath)
	if err != nil {
		return err
	}
	logger := harness.NewLogger(cfg.Logging)
	results, err := harness.Run(cfg, logger)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "%-14s %-16s %8d B  encode %10.0f ns/op (%7.1f MB/s)  decode %10.0f ns/op (%7.1f MB/s)\n",
			r.Fixture, r.Codec, r.PayloadBytes, r.EncodeNsOp, r.EncodeMBs, r.DecodeNsOp, r.DecodeMBs)
	}
	return nil
}

func writeOutput(cmd *cobra.Command, data []byte) error {
	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		_, err := cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
