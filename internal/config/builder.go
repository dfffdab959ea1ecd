package config

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithNotation sets the move notation.
func (b *ConfigBuilder) WithNotation(notation MoveNotation) *ConfigBuilder {
	b.cfg.Output.Notation = notation
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithStartPosition sets the placement and side to move games start from.
func (b *ConfigBuilder) WithStartPosition(placement string, turn chess.Colour) *ConfigBuilder {
	b.cfg.Rules.StartPlacement = placement
	b.cfg.Rules.StartTurn = turn
	return b
}

// WithStrictRepetition enables strict position comparison for repetitions.
func (b *ConfigBuilder) WithStrictRepetition(enabled bool) *ConfigBuilder {
	b.cfg.Rules.StrictRepetition = enabled
	return b
}

// WithVerification enables oracle cross-checks against the named oracles.
func (b *ConfigBuilder) WithVerification(oracles ...string) *ConfigBuilder {
	b.cfg.Verify.Enabled = true
	if len(oracles) > 0 {
		b.cfg.Verify.Oracles = oracles
	}
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithWorkers sets the number of parallel replays.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
