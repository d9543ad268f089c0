// Package config provides configuration management for the patrol command
// using Viper for loading from files, environment variables and flags.
//
// Sources, highest priority first: command-line flags, PATROL_* environment
// variables (PATROL_SOLVE_WORKERS, PATROL_LOG_LEVEL, ...), then a YAML file
// (.patrol.yml by default, or the path in --config / PATROL_CONFIG_FILE).
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/patrol/internal/logging"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats accepted by solve.format.
const (
	FormatPlain   = "plain"
	FormatSummary = "summary"
	FormatYAML    = "yaml"
	FormatJSON    = "json"
)

type Config struct {
	Solve SolveConfig `yaml:"solve" mapstructure:"solve"`
	Log   LogConfig   `yaml:"log" mapstructure:"log"`
	Watch WatchConfig `yaml:"watch" mapstructure:"watch"`
}

type SolveConfig struct {
	// Workers bounds the goroutines trying candidate obstacles; 0 means
	// one per available CPU.
	Workers int    `yaml:"workers" mapstructure:"workers"`
	Format  string `yaml:"format" mapstructure:"format"`
	// Part selects which answer to print: 0 both, 1 distinct cells, 2 loops.
	Part    int    `yaml:"part" mapstructure:"part"`
	Profile string `yaml:"profile" mapstructure:"profile"`
}

type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce" mapstructure:"debounce"`
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("solve.workers", 0)
	v.SetDefault("solve.format", FormatPlain)
	v.SetDefault("solve.part", 0)
	v.SetDefault("solve.profile", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("watch.debounce", 200*time.Millisecond)
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.Solve.Format = strings.ToLower(cfg.Solve.Format)
	cfg.Solve.Profile = strings.ToLower(cfg.Solve.Profile)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field and reports the first violation.
func (c *Config) Validate() error {
	if c.Solve.Workers < 0 {
		return fmt.Errorf("%w: solve.workers must be >= 0, got %d", ErrInvalidConfig, c.Solve.Workers)
	}
	switch c.Solve.Format {
	case FormatPlain, FormatSummary, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("%w: solve.format %q is not one of plain, summary, yaml, json", ErrInvalidConfig, c.Solve.Format)
	}
	if c.Solve.Part < 0 || c.Solve.Part > 2 {
		return fmt.Errorf("%w: solve.part must be 0, 1 or 2, got %d", ErrInvalidConfig, c.Solve.Part)
	}
	switch c.Solve.Profile {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("%w: solve.profile %q is not one of cpu, mem", ErrInvalidConfig, c.Solve.Profile)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q is not one of text, json", ErrInvalidConfig, c.Log.Format)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("%w: watch.debounce must not be negative", ErrInvalidConfig)
	}
	return nil
}

// EffectiveWorkers resolves Workers == 0 to the number of usable CPUs.
func (c *Config) EffectiveWorkers() int {
	if c.Solve.Workers > 0 {
		return c.Solve.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// LoggerConfig builds the logging configuration for c.
func (c *Config) LoggerConfig() *logging.LoggerConfig {
	lc := logging.DefaultConfig()
	lc.Level, _ = logging.ParseLevel(c.Log.Level)
	lc.Format = c.Log.Format
	return lc
}

// YAML renders c as a YAML document.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return out, nil
}
