package game

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Option configures a Game.
type Option func(*Game)

// WithLog sends running commentary to w. Verbosity 1 reports game
// results, 2 also reports every move.
func WithLog(w io.Writer, verbosity int) Option {
	return func(g *Game) {
		g.logFile = w
		g.verbosity = verbosity
	}
}

// WithStrictRepetition makes repetition counting compare side to move,
// castling rights and the en-passant square as well as placement.
func WithStrictRepetition(strict bool) Option {
	return func(g *Game) {
		if strict {
			g.signer = engine.StrictSignature
		} else {
			g.signer = engine.PositionSignature
		}
	}
}

// WithObserver registers an observer before the game starts.
func WithObserver(o Observer) Option {
	return func(g *Game) {
		g.Subscribe(o)
	}
}

// WithRules applies the repetition setting of a rules configuration.
// The start position is chosen by the constructor.
func WithRules(rules *config.RulesConfig) Option {
	return func(g *Game) {
		WithStrictRepetition(rules.StrictRepetition)(g)
	}
}

// FromConfig creates a game from the start position and options of cfg.
func FromConfig(cfg *config.Config, opts ...Option) (*Game, error) {
	all := append([]Option{WithRules(cfg.Rules), WithLog(cfg.LogFile, cfg.Verbosity)}, opts...)
	if cfg.Rules.IsStandardStart() {
		return New(all...), nil
	}
	return NewFromPlacement(cfg.Rules.StartPlacement, cfg.Rules.StartTurn, all...)
}

// colourIndex maps a colour to an index into per-colour arrays.
func colourIndex(c chess.Colour) int {
	if c == chess.White {
		return 1
	}
	return 0
}
