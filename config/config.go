// SPDX-License-Identifier: MIT

// Package config loads simulation settings with viper: defaults, an optional
// YAML/JSON/TOML file, and SOCIALINHERIT_* environment overrides.
//
// Keys are dotted paths, e.g. simulation.rule or generator.n; the matching
// environment variable is SOCIALINHERIT_SIMULATION_RULE.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/socialinherit/turnover"
)

// EnvPrefix is the environment variable prefix.
const EnvPrefix = "SOCIALINHERIT"

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config manages simulation configuration using Viper.
type Config struct {
	v *viper.Viper
}

// New creates a configuration with defaults and environment overrides.
func New() *Config {
	v := viper.New()

	v.SetDefault("simulation.rule", turnover.RuleInduction)
	v.SetDefault("simulation.iterations", 100)
	v.SetDefault("simulation.seed", 1)
	v.SetDefault("simulation.effort_mode", turnover.EffortFaithful.String())

	v.SetDefault("induction.pn", 0.5)
	v.SetDefault("induction.pr", 0.01)
	v.SetDefault("induction.pb", 1.0)

	v.SetDefault("weighted_induction.pn", 0.5)
	v.SetDefault("weighted_induction.pr", 0.01)
	v.SetDefault("weighted_induction.pb", 1.0)
	v.SetDefault("weighted_induction.en1", 2.0)
	v.SetDefault("weighted_induction.en2", 2.0)
	v.SetDefault("weighted_induction.er1", 1.0)
	v.SetDefault("weighted_induction.er2", 4.0)
	v.SetDefault("weighted_induction.max_effort", 10.0)

	v.SetDefault("style.pb", 1.0)

	v.SetDefault("generator.kind", "random_sparse")
	v.SetDefault("generator.n", 50)
	v.SetDefault("generator.p", 0.1)
	v.SetDefault("generator.seed", 1)
	v.SetDefault("generator.weighted", true)
	v.SetDefault("generator.weights", WeightsBeta)
	v.SetDefault("generator.weight", 1.0)
	v.SetDefault("generator.weight_min", 1)
	v.SetDefault("generator.weight_max", 5)
	v.SetDefault("generator.beta_a", 2.0)
	v.SetDefault("generator.beta_b", 2.0)
	v.SetDefault("generator.max_effort", 10.0)
	v.SetDefault("generator.id_scheme", "decimal")

	v.SetDefault("store.path", "")

	v.SetDefault("logging.level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile loads configuration from file.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	return nil
}

// Set allows dynamic configuration changes.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// Getters for simulation parameters.
func (c *Config) RuleName() string { return c.v.GetString("simulation.rule") }
func (c *Config) Iterations() int { return c.v.GetInt("simulation.iterations") }
func (c *Config) Seed() int64 { return c.v.GetInt64("simulation.seed") }
func (c *Config) StorePath() string { return c.v.GetString("store.path") }
func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }
func (c *Config) effortName() string { return c.v.GetString("simulation.effort_mode") }

// EffortMode parses simulation.effort_mode.
func (c *Config) EffortMode() (turnover.EffortMode, error) {
	return turnover.ParseEffortMode(c.effortName())
}

// Induction returns the induction.* parameters.
func (c *Config) Induction() turnover.Induction {
	return turnover.Induction{
		Pn: c.v.GetFloat64("induction.pn"),
		Pr: c.v.GetFloat64("induction.pr"),
		Pb: c.v.GetFloat64("induction.pb"),
	}
}

// WeightedInduction returns the weighted_induction.* parameters.
func (c *Config) WeightedInduction() turnover.WeightedInduction {
	return turnover.WeightedInduction{
		Pn:        c.v.GetFloat64("weighted_induction.pn"),
		Pr:        c.v.GetFloat64("weighted_induction.pr"),
		Pb:        c.v.GetFloat64("weighted_induction.pb"),
		En1:       c.v.GetFloat64("weighted_induction.en1"),
		En2:       c.v.GetFloat64("weighted_induction.en2"),
		Er1:       c.v.GetFloat64("weighted_induction.er1"),
		Er2:       c.v.GetFloat64("weighted_induction.er2"),
		MaxEffort: c.v.GetFloat64("weighted_induction.max_effort"),
	}
}

// Style returns the style.* parameters.
func (c *Config) Style() turnover.StyleCopying {
	return turnover.StyleCopying{Pb: c.v.GetFloat64("style.pb")}
}

// Rule returns the rule selected by simulation.rule with its parameters.
func (c *Config) Rule() (turnover.Rule, error) {
	switch name := c.RuleName(); name {
	case turnover.RuleInduction:
		return c.Induction(), nil
	case turnover.RuleWeightedInduction:
		return c.WeightedInduction(), nil
	case turnover.RuleStyleCopying:
		return c.Style(), nil
	default:
		return nil, fmt.Errorf("config: unknown simulation.rule %q: %w", name, ErrInvalidConfig)
	}
}

// Validate checks every setting the CLI depends on.
func (c *Config) Validate() error {
	rule, err := c.Rule()
	if err != nil {
		return err
	}
	if err = rule.Validate(); err != nil {
		return fmt.Errorf("config: %w: %w", ErrInvalidConfig, err)
	}
	if c.Iterations() < 0 {
		return fmt.Errorf("config: simulation.iterations=%d must be ≥ 0: %w", c.Iterations(), ErrInvalidConfig)
	}
	if _, err = c.EffortMode(); err != nil {
		return fmt.Errorf("config: simulation.effort_mode: %w: %w", ErrInvalidConfig, err)
	}
	if _, err = zerolog.ParseLevel(c.LogLevel()); err != nil {
		return fmt.Errorf("config: logging.level %q: %w", c.LogLevel(), ErrInvalidConfig)
	}

	return c.Generator().validate()
}

// CreateLogger creates a zerolog console logger at logging.level, writing to
// stderr.
func (c *Config) CreateLogger() zerolog.Logger {
	return c.NewLogger(os.Stderr)
}

// NewLogger is CreateLogger with an explicit destination.
func (c *Config) NewLogger(out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "socialinherit").Logger()
}
