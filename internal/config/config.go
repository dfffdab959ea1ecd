// Package config provides configuration for the chess-rules tool and for
// games created by it.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=game summaries, 2=running commentary

	// Workers is the number of scripts replayed in parallel (0 = one per CPU).
	Workers int

	// Sub-configurations
	Rules     *RulesConfig
	Output    *OutputConfig
	Verify    *VerifyConfig
	Duplicate *DuplicateConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Workers:    1,
		Rules:      NewRulesConfig(),
		Output:     NewOutputConfig(),
		Verify:     NewVerifyConfig(),
		Duplicate:  NewDuplicateConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the main output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks the configuration and its sub-configurations.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("negative worker count %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Verify.Validate(); err != nil {
		return err
	}
	return c.Duplicate.Validate()
}
