package config

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Names of the move generators games can be cross-checked against.
const (
	OracleDragontooth = "dragontooth"
	OracleGoose       = "goose"
)

// KnownOracles lists every supported oracle name.
var KnownOracles = []string{OracleDragontooth, OracleGoose}

// VerifyConfig holds settings for cross-checking legal moves against
// independent move generators.
type VerifyConfig struct {
	// Enabled runs the oracles after every ply
	Enabled bool

	// Oracles names the generators to consult
	Oracles []string

	// StopOnMismatch stops the run after the first script that disagrees
	StopOnMismatch bool
}

// NewVerifyConfig creates a VerifyConfig with default values.
func NewVerifyConfig() *VerifyConfig {
	return &VerifyConfig{
		Oracles: slices.Clone(KnownOracles),
	}
}

// Validate checks that every named oracle is known.
func (v *VerifyConfig) Validate() error {
	if v.Enabled && len(v.Oracles) == 0 {
		return fmt.Errorf("verification enabled without oracles: %w", errors.ErrInvalidConfig)
	}
	for _, name := range v.Oracles {
		if !slices.Contains(KnownOracles, name) {
			return fmt.Errorf("unknown oracle %q: %w", name, errors.ErrInvalidConfig)
		}
	}
	return nil
}
