package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// RulesConfig holds settings that change how a game is played.
type RulesConfig struct {
	// StartPlacement is the piece placement games start from.
	StartPlacement string

	// StartTurn is the side to move in StartPlacement.
	StartTurn chess.Colour

	// StrictRepetition compares side to move, castling rights and the
	// en-passant square as well as placement when counting repetitions.
	StrictRepetition bool

	// DefaultPromotion is the piece a pawn becomes when a move script
	// does not name one.
	DefaultPromotion chess.Piece
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		StartPlacement:   engine.StartingPlacement,
		StartTurn:        chess.White,
		DefaultPromotion: chess.Queen,
	}
}

// Validate checks that the start placement parses and the default
// promotion piece is one a pawn may become.
func (r *RulesConfig) Validate() error {
	if _, err := engine.ParsePlacement(r.StartPlacement); err != nil {
		return fmt.Errorf("start placement: %w: %w", err, errors.ErrInvalidConfig)
	}
	switch r.DefaultPromotion {
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
	default:
		return fmt.Errorf("default promotion %v: %w", r.DefaultPromotion, errors.ErrInvalidConfig)
	}
	return nil
}

// IsStandardStart reports whether games start from the usual position.
func (r *RulesConfig) IsStandardStart() bool {
	return r.StartPlacement == engine.StartingPlacement && r.StartTurn == chess.White
}
