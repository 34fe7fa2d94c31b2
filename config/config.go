// Package config loads edom run settings from an optional YAML file and
// EDOM_* environment variables, then validates them.
//
// Precedence, lowest to highest: defaults, file, environment. Command-line
// flags are applied by the caller after Load.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultTimeLimit matches the two-hour watchdog of the batch experiments.
const DefaultTimeLimit = 7200 * time.Second

// EnvPrefix prefixes every environment override.
const EnvPrefix = "EDOM_"

var (
	// ErrInvalidConfig wraps validation failures.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrInvalidEnv indicates an environment variable that does not parse.
	ErrInvalidEnv = errors.New("config: invalid environment value")
)

// Config holds every tunable of a run.
type Config struct {
	Workers     int           `yaml:"workers" validate:"gte=0"`
	TimeLimit   time.Duration `yaml:"time_limit" validate:"gte=0"` // duration string; 0 disables the limit
	MinK        int           `yaml:"min_k" validate:"gte=1"`
	MaxK        int           `yaml:"max_k" validate:"omitempty,gtefield=MinK"` // 0 means n
	Explain     int           `yaml:"explain" validate:"gte=0"`
	Output      string        `yaml:"output" validate:"oneof=text yaml json"`
	MetricsFile string        `yaml:"metrics_file"`
	Log         Log           `yaml:"log"`
}

// Log configures the zap logger.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Workers:   0,
		TimeLimit: DefaultTimeLimit,
		MinK:      1,
		MaxK:      0,
		Output:    "text",
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}

// LookupFunc reads one environment variable.
type LookupFunc func(key string) (string, bool)

// Load reads path (skipped when empty), applies the process environment and
// validates the result.
func Load(path string) (*Config, error) {
	return LoadWith(path, os.LookupEnv)
}

// LoadWith is Load with an injectable environment.
func LoadWith(path string, lookup LookupFunc) (*Config, error) {
	cfg := Default()

	// 1) File
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := decode(raw, cfg); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	// 2) Environment
	if lookup != nil {
		if err := applyEnv(cfg, lookup); err != nil {
			return nil, err
		}
	}

	// 3) Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// decode strictly unmarshals YAML onto cfg; unknown keys are errors.
func decode(raw []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// applyEnv overlays EDOM_* variables.
func applyEnv(cfg *Config, lookup LookupFunc) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"WORKERS", &cfg.Workers},
		{"MIN_K", &cfg.MinK},
		{"MAX_K", &cfg.MaxK},
		{"EXPLAIN", &cfg.Explain},
	}
	for _, e := range ints {
		val, ok := lookup(EnvPrefix + e.key)
		if !ok || val == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalidEnv, EnvPrefix, e.key, val)
		}
		*e.dst = n
	}

	if val, ok := lookup(EnvPrefix + "TIME_LIMIT"); ok && val != "" {
		d, err := parseDuration(val)
		if err != nil {
			return fmt.Errorf("%w: %sTIME_LIMIT=%q", ErrInvalidEnv, EnvPrefix, val)
		}
		cfg.TimeLimit = d
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"OUTPUT", &cfg.Output},
		{"METRICS_FILE", &cfg.MetricsFile},
		{"LOG_LEVEL", &cfg.Log.Level},
		{"LOG_FORMAT", &cfg.Log.Format},
	}
	for _, e := range strs {
		if val, ok := lookup(EnvPrefix + e.key); ok && val != "" {
			*e.dst = val
		}
	}

	return nil
}

// parseDuration accepts Go durations ("90m") and bare seconds ("7200").
func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if secs, err := strconv.Atoi(s); err == nil {
		return time.Duration(secs) * time.Second, nil
	}

	return time.ParseDuration(s)
}
