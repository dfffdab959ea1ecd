package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// direction is a (row, col) step.
type direction [2]int

var (
	straightDirs = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	knightDirs   = []direction{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	royalDirs    = append(append([]direction{}, straightDirs...), diagonalDirs...)
)

// pieceDirections returns the movement directions of a piece and whether
// it slides along them. Pawn directions are its two capture diagonals,
// which depend on colour.
func pieceDirections(piece chess.Piece, colour chess.Colour) (dirs []direction, slides bool) {
	switch piece {
	case chess.Rook:
		return straightDirs, true
	case chess.Bishop:
		return diagonalDirs, true
	case chess.Queen:
		return royalDirs, true
	case chess.Knight:
		return knightDirs, false
	case chess.King:
		return royalDirs, false
	case chess.Pawn:
		dr := chess.ColourOffset(colour)
		return []direction{{dr, -1}, {dr, 1}}, false
	default:
		panic(fmt.Errorf("directions for %v: %w", piece, errors.ErrInvalidPiece))
	}
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
