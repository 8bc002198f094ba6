// SPDX-License-Identifier: MIT

// Package config loads realroots settings from defaults, an optional YAML
// file, and REALROOTS_* environment variables.
package config

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/realroots/rootfinder"
)

// Config is the top-level configuration struct.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Strategy      string       `mapstructure:"strategy"`
	StepBudget    int          `mapstructure:"step_budget"`
	GridCells     int          `mapstructure:"grid_cells"`
	TrivialSolver bool         `mapstructure:"trivial_solver"`
	Deflation     bool         `mapstructure:"deflation"`
	Workers       int          `mapstructure:"workers"`
	Output        OutputConfig `mapstructure:"output"`
}

// OutputConfig controls how roots are rendered.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Digits int    `mapstructure:"digits"`
}

// Output formats.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
	FormatPlain = "plain"
)

// Defaults.
const (
	DefaultStrategy      = "default"
	DefaultStepBudget    = rootfinder.DefaultStepBudget
	DefaultGridCells     = rootfinder.DefaultGridCells
	DefaultTrivialSolver = true
	DefaultDeflation     = true
	DefaultWorkers       = 4
	DefaultFormat        = FormatTable
	DefaultDigits        = 12
)

// maxDigits bounds output precision.
const maxDigits = 64

// Sentinel errors for configuration validation.
var (
	// ErrInvalidStrategy indicates an unknown strategy name.
	ErrInvalidStrategy = errors.New("strategy must name a known strategy")
	// ErrInvalidStepBudget indicates a non-positive step budget.
	ErrInvalidStepBudget = errors.New("step_budget must be positive")
	// ErrInvalidGridCells indicates fewer than two grid cells.
	ErrInvalidGridCells = errors.New("grid_cells must be at least 2")
	// ErrInvalidWorkers indicates a non-positive worker count.
	ErrInvalidWorkers = errors.New("workers must be positive")
	// ErrInvalidFormat indicates an unknown output format.
	ErrInvalidFormat = errors.New("output.format must be table, yaml or plain")
	// ErrInvalidDigits indicates digits outside [1, 64].
	ErrInvalidDigits = errors.New("output.digits must be between 1 and 64")
)

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Strategy:      DefaultStrategy,
		StepBudget:    DefaultStepBudget,
		GridCells:     DefaultGridCells,
		TrivialSolver: DefaultTrivialSolver,
		Deflation:     DefaultDeflation,
		Workers:       DefaultWorkers,
		Output:        OutputConfig{Format: DefaultFormat, Digits: DefaultDigits},
	}
}

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	if _, err := rootfinder.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidStrategy, c.Strategy)
	}

	if c.StepBudget <= 0 {
		return ErrInvalidStepBudget
	}

	if c.GridCells < 2 {
		return ErrInvalidGridCells
	}

	if c.Workers <= 0 {
		return ErrInvalidWorkers
	}

	switch c.Output.Format {
	case FormatTable, FormatYAML, FormatPlain:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Output.Format)
	}

	if c.Output.Digits < 1 || c.Output.Digits > maxDigits {
		return ErrInvalidDigits
	}

	return nil
}

// FinderOptions converts the configuration into root finder options.
func (c *Config) FinderOptions(logger *zap.Logger) ([]rootfinder.Option, error) {
	s, err := rootfinder.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, fmt.Errorf("FinderOptions: %w", err)
	}

	return []rootfinder.Option{
		rootfinder.WithStrategy(s),
		rootfinder.WithStepBudget(c.StepBudget),
		rootfinder.WithGridCells(c.GridCells),
		rootfinder.WithTrivialSolver(c.TrivialSolver),
		rootfinder.WithDeflation(c.Deflation),
		rootfinder.WithLogger(logger),
	}, nil
}
