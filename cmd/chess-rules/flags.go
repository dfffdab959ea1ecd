// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/parser"
)

var (
	// Output options
	outputFile    = flag.String("o", "", "Output file (default: stdout)")
	appendOutput  = flag.Bool("a", false, "Append to output file instead of overwrite")
	lineLength    = flag.Int("w", 80, "Maximum line length of move lists (0 = no wrapping)")
	jsonOutput    = flag.Bool("J", false, "Output in JSON format")
	jsonLines     = flag.Bool("jsonl", false, "With -J, write one JSON object per game instead of an array")
	uciMoves      = flag.Bool("uci", false, "Write moves in coordinate notation (e2e4)")
	noMoveNumbers = flag.Bool("nonumbers", false, "Don't output move numbers")
	noChecks      = flag.Bool("nochecks", false, "Don't output check and mate symbols")
	showBoard     = flag.Bool("board", false, "Print the final board")
	showLegal     = flag.Bool("legal", false, "List the legal moves of the side to move")
	showFEN       = flag.Bool("fen", false, "Print the final position as FEN")
	reportOnly    = flag.Bool("r", false, "Report errors without writing games")

	// Rules
	startPlacement   = flag.String("placement", "", "Start placement for scripts that don't set one")
	startTurn        = flag.String("turn", "w", "Side to move in the start placement (w or b)")
	strictRepetition = flag.Bool("strict", false, "Count repetitions by placement, side to move, castling and en passant")
	promoteTo        = flag.String("promote", "q", "Promotion piece when a script names none (q, r, b, n)")

	// Verification
	verify         = flag.Bool("verify", false, "Check every position against independent move generators")
	oracles        = flag.String("oracles", strings.Join(config.KnownOracles, ","), "Comma-separated move generators for -verify")
	stopOnMismatch = flag.Bool("stop", false, "With -verify, stop after the first script that disagrees")
	perftDepth     = flag.Int("perft", 0, "Count leaf nodes to this depth from the start position and exit")
	perftDivide    = flag.Bool("divide", false, "With -perft, list the count below each root move")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress games ending in an already seen position")
	duplicateFile      = flag.String("d", "", "Write the names of suppressed games to this file")
	exactDuplicates    = flag.Bool("exact", false, "Duplicates must also have the same number of moves")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("v", false, "Log every move as it is played")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("j", 1, "Number of scripts replayed in parallel (0 = one per CPU)")
)

// applyFlags applies command-line flags to the configuration and
// validates the result.
func applyFlags(cfg *config.Config) error {
	applyOutputFlags(cfg)
	if err := applyRulesFlags(cfg); err != nil {
		return err
	}
	applyVerifyFlags(cfg)
	applyDuplicateFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	cfg.Workers = *workers
	return cfg.Validate()
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	}
	if *uciMoves {
		cfg.Output.Notation = config.UCI
	}
	if *lineLength >= 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	cfg.Output.KeepMoveNumbers = !*noMoveNumbers
	cfg.Output.KeepChecks = !*noChecks
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowLegalMoves = *showLegal
	cfg.Output.ShowFEN = *showFEN
}

// applyRulesFlags configures the start position and rule options.
func applyRulesFlags(cfg *config.Config) error {
	if *startPlacement != "" {
		cfg.Rules.StartPlacement = *startPlacement
	}
	turn, err := parser.ParseColour(*startTurn)
	if err != nil {
		return fmt.Errorf("-turn: %w: %w", err, errors.ErrInvalidConfig)
	}
	cfg.Rules.StartTurn = turn
	cfg.Rules.StrictRepetition = *strictRepetition

	piece, err := parsePromotion(*promoteTo)
	if err != nil {
		return err
	}
	cfg.Rules.DefaultPromotion = piece
	return nil
}

// parsePromotion converts a piece letter or name into a promotion piece.
func parsePromotion(s string) (chess.Piece, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "q", "queen":
		return chess.Queen, nil
	case "r", "rook":
		return chess.Rook, nil
	case "b", "bishop":
		return chess.Bishop, nil
	case "n", "knight":
		return chess.Knight, nil
	}
	return chess.Empty, fmt.Errorf("-promote %q: %w", s, errors.ErrInvalidConfig)
}

// applyVerifyFlags configures oracle verification.
func applyVerifyFlags(cfg *config.Config) {
	cfg.Verify.Enabled = *verify
	cfg.Verify.StopOnMismatch = *stopOnMismatch

	var names []string
	for _, name := range strings.Split(*oracles, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	cfg.Verify.Oracles = names
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates || *duplicateFile != ""
	cfg.Duplicate.ExactMatch = *exactDuplicates
	cfg.Duplicate.MaxCapacity = *duplicateCapacity
}
