package oracle

import (
	"fmt"

	"github.com/Oliverans/GooseEngineMG/goosemg"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Goose consults github.com/Oliverans/GooseEngineMG/goosemg.
type Goose struct{}

// Name returns the configuration name of the backend.
func (Goose) Name() string { return config.OracleGoose }

// Analyze lists the legal moves of the side to move in fen.
func (Goose) Analyze(fen string) (Report, error) {
	board, err := goosemg.ParseFEN(fen)
	if err != nil {
		return Report{}, fmt.Errorf("goose: FEN %q: %v: %w", fen, err, errors.ErrInvalidPosition)
	}

	moves := board.GenerateLegalMoves()
	report := Report{Moves: make(MoveSet, len(moves))}
	for _, m := range moves {
		report.Moves.Add(squareAt(int(m.From())), squareAt(int(m.To())))
	}
	report.InCheck = board.OurKingInCheck()
	return report, nil
}

// Perft counts leaf nodes below fen, depth plies deep.
func (Goose) Perft(fen string, depth int) (uint64, error) {
	board, err := goosemg.ParseFEN(fen)
	if err != nil {
		return 0, fmt.Errorf("goose: FEN %q: %v: %w", fen, err, errors.ErrInvalidPosition)
	}
	return goosemg.Perft(board, depth), nil
}

// PerftDivide returns the perft count below each root move, keyed by the
// move in UCI form.
func (Goose) PerftDivide(fen string, depth int) (map[string]uint64, error) {
	board, err := goosemg.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("goose: FEN %q: %v: %w", fen, err, errors.ErrInvalidPosition)
	}
	div := goosemg.PerftDivide(board, depth)
	out := make(map[string]uint64, len(div))
	for m, n := range div {
		out[m.String()] = n
	}
	return out, nil
}
