package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputFormat selects how replayed games are printed.
type OutputFormat int

const (
	Text OutputFormat = iota // Human-readable move list and result
	JSON                     // One JSON object per game
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	default:
		return fmt.Sprintf("OutputFormat(%d)", int(f))
	}
}

// ParseOutputFormat converts a flag value into an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "text", "":
		return Text, nil
	case "json":
		return JSON, nil
	default:
		return Text, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
	}
}

// MoveNotation selects how individual moves are written.
type MoveNotation int

const (
	SAN MoveNotation = iota // Short algebraic (Nf3, exd5, O-O)
	UCI                     // Coordinate (g1f3, e5d6, e1g1)
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies text or JSON output
	Format OutputFormat

	// Notation specifies the move notation in move lists
	Notation MoveNotation

	// MaxLineLength is the maximum line length for text move lists (0 = no wrapping)
	MaxLineLength uint

	// KeepMoveNumbers controls whether move numbers are included
	KeepMoveNumbers bool

	// KeepChecks controls whether check symbols (+, #) are included
	KeepChecks bool

	// ShowBoard prints the final board as a diagram
	ShowBoard bool

	// ShowLegalMoves lists the legal moves of the side to move
	ShowLegalMoves bool

	// ShowFEN prints the final position as FEN
	ShowFEN bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          Text,
		Notation:        SAN,
		MaxLineLength:   80,
		KeepMoveNumbers: true,
		KeepChecks:      true,
	}
}

// Validate checks the output settings.
func (o *OutputConfig) Validate() error {
	if o.Format != Text && o.Format != JSON {
		return fmt.Errorf("output format %v: %w", o.Format, errors.ErrInvalidConfig)
	}
	if o.Notation != SAN && o.Notation != UCI {
		return fmt.Errorf("move notation %d: %w", o.Notation, errors.ErrInvalidConfig)
	}
	return nil
}
