// Package testutil provides shared test utilities for the chess-rules-go
// project. These utilities reduce code duplication across test files and
// provide consistent test setup helpers.
package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/parser"
)

// ParseTestScript parses a move script and returns the first script, or nil
// if parsing fails or the input is empty.
func ParseTestScript(input string) *parser.Script {
	if scripts := ParseTestScripts(input); len(scripts) > 0 {
		return scripts[0]
	}
	return nil
}

// ParseTestScripts parses a move script and returns all scripts found.
// Returns nil if parsing fails or no scripts are found.
func ParseTestScripts(input string) []*parser.Script {
	p := parser.NewParser(strings.NewReader(input), "test")
	scripts, err := p.ParseAll()
	if err != nil || len(scripts) == 0 {
		return nil
	}
	return scripts
}

// MustParseScript parses a move script and returns the first script.
// It calls t.Fatal if parsing fails or no scripts are found.
func MustParseScript(t *testing.T, input string) *parser.Script {
	t.Helper()
	script := ParseTestScript(input)
	if script == nil {
		t.Fatalf("failed to parse test script:\n%s", input)
	}
	return script
}

// MustNewGame creates a game from a placement, or the standard start when
// placement is empty. It calls t.Fatal if the placement is rejected.
func MustNewGame(t *testing.T, placement string, turn chess.Colour, opts ...game.Option) *game.Game {
	t.Helper()
	if placement == "" {
		return game.New(opts...)
	}
	g, err := game.NewFromPlacement(placement, turn, opts...)
	if err != nil {
		t.Fatalf("NewFromPlacement(%q): %v", placement, err)
	}
	return g
}

// MustPlay plays coordinate moves such as "e2e4" or "e7e8n" on g and calls
// t.Fatal when one is not applied. A pending promotion is resolved with
// the named piece, or a queen when none is named.
func MustPlay(t *testing.T, g *game.Game, moves ...string) {
	t.Helper()
	for _, text := range moves {
		m, err := parser.ParseMove(text)
		if err != nil {
			t.Fatalf("move %q: %v", text, err)
		}
		outcome := g.AttemptMove(m.From, m.To)
		if !outcome.Applied {
			t.Fatalf("move %q was not applied; %v to move in %s", text, g.Turn(), g.FEN())
		}
		if outcome.PromotionPending {
			if err := g.ResolvePromotion(m.To, m.Promotion); err != nil {
				t.Fatalf("move %q: %v", text, err)
			}
		}
	}
}

// MustGame starts a game at the standard position and plays moves.
func MustGame(t *testing.T, moves ...string) *game.Game {
	t.Helper()
	g := game.New()
	MustPlay(t, g, moves...)
	return g
}
