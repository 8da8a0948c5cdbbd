// Package harness provides the shared plumbing for the rjson benchmark
// and conformance tooling: configuration, logging, deterministic fixture
// generation and a timed codec runner.
package harness

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the rjson tooling.
type Config struct {
	Bench   BenchConfig   `mapstructure:"bench"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// BenchConfig defines benchmark run settings.
type BenchConfig struct {
	Fixtures   []string `mapstructure:"fixtures"`
	Codecs     []string `mapstructure:"codecs"`
	Iterations int      `mapstructure:"iterations"`
	Warmup     int      `mapstructure:"warmup"`
	ArraySize  int      `mapstructure:"array_size"`
	Depth      int      `mapstructure:"depth"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig loads configuration from file and environment.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("rjson")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("RJSON")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// missing config file is fine, defaults cover everything
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Bench defaults
	v.SetDefault("bench.fixtures", []string{
		"simple", "nested", "bulk_ints", "bulk_floats", "bulk_strings",
		"mixed_array", "string_heavy", "large_dict",
	})
	v.SetDefault("bench.codecs", []string{"rjson", "json-reference", "msgpack"})
	v.SetDefault("bench.iterations", 2000)
	v.SetDefault("bench.warmup", 200)
	v.SetDefault("bench.array_size", 1000)
	v.SetDefault("bench.depth", 20)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks configuration bounds.
func (c *Config) Validate() error {
	if c.Bench.Iterations <= 0 {
		return fmt.Errorf("bench.iterations must be positive, got %d", c.Bench.Iterations)
	}
	if c.Bench.Warmup < 0 {
		return fmt.Errorf("bench.warmup must be non-negative, got %d", c.Bench.Warmup)
	}
	if c.Bench.ArraySize <= 0 {
		return fmt.Errorf("bench.array_size must be positive, got %d", c.Bench.ArraySize)
	}
	if c.Bench.Depth <= 0 {
		return fmt.Errorf("bench.depth must be positive, got %d", c.Bench.Depth)
	}
	if len(c.Bench.Fixtures) == 0 {
		return fmt.Errorf("bench.fixtures must not be empty")
	}
	if len(c.Bench.Codecs) == 0 {
		return fmt.Errorf("bench.codecs must not be empty")
	}
	return nil
}
