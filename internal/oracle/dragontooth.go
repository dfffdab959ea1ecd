package oracle

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Dragontooth consults github.com/dylhunn/dragontoothmg.
type Dragontooth struct{}

// Name returns the configuration name of the backend.
func (Dragontooth) Name() string { return config.OracleDragontooth }

// Analyze lists the legal moves of the side to move in fen.
func (Dragontooth) Analyze(fen string) (report Report, err error) {
	// ParseFen panics on malformed input.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dragontooth: FEN %q: %v: %w", fen, r, errors.ErrInvalidPosition)
		}
	}()

	board := dragontoothmg.ParseFen(fen)
	moves := board.GenerateLegalMoves()

	report.Moves = make(MoveSet, len(moves))
	for i := range moves {
		m := &moves[i]
		report.Moves.Add(squareAt(int(m.From())), squareAt(int(m.To())))
	}
	report.InCheck = board.OurKingInCheck()
	return report, nil
}

// squareAt converts a bitboard index (a1 = 0, h8 = 63) to a coordinate.
func squareAt(index int) chess.Coordinate {
	return chess.Coord(chess.BoardSize-1-index/chess.BoardSize, index%chess.BoardSize)
}
