package config

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// DuplicateConfig holds settings for duplicate game detection.
type DuplicateConfig struct {
	// Suppress skips output for games whose final position was already seen
	Suppress bool

	// ExactMatch also requires the same number of half-moves
	ExactMatch bool

	// MaxCapacity bounds the number of remembered games (0 = unlimited)
	MaxCapacity int

	// DuplicateFile receives the names of suppressed scripts
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{
		Suppress:    false,
		ExactMatch:  false,
		MaxCapacity: 0,
	}
}

// Validate checks the duplicate settings.
func (d *DuplicateConfig) Validate() error {
	if d.MaxCapacity < 0 {
		return fmt.Errorf("negative duplicate capacity %d: %w", d.MaxCapacity, errors.ErrInvalidConfig)
	}
	return nil
}
