package engine

import (
	"testing"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// replay plays coordinate moves such as "e2e4" or "e7e8n" from the given
// placement and returns the resulting board and move history. Each move
// must be legal; a pawn reaching its last row promotes to the piece named
// by the fifth character, or a queen.
func replay(t testing.TB, placement string, moves ...string) (*chess.Board, []chess.Move) {
	t.Helper()
	board, err := ParsePlacement(placement)
	if err != nil {
		t.Fatalf("ParsePlacement(%q) error: %v", placement, err)
	}

	var history []chess.Move
	for _, text := range moves {
		from, ok1 := chess.ParseCoordinate(text[0:2])
		to, ok2 := chess.ParseCoordinate(text[2:4])
		if !ok1 || !ok2 {
			t.Fatalf("bad move text %q", text)
		}
		piece := board.Get(from)
		if piece.IsEmpty() {
			t.Fatalf("move %q: no piece on %v", text, from)
		}
		kingPos, _ := board.FindKing(piece.Colour)
		legal := GenerateMoves(board, piece.Colour, piece.Piece, from, kingPos, history)
		if !slices.Contains(legal, to) {
			t.Fatalf("move %q is not legal; legal destinations %v", text, legal)
		}

		effects := ApplyMove(board, from, to)
		move := effects.Record(from, to)
		if effects.ReachedLastRow {
			promoted := chess.Queen
			if len(text) == 5 {
				promoted = ConvertFENCharToPiece(text[4])
			}
			Promote(board, to, promoted)
			move.PromotionPiece = promoted
		}
		history = append(history, move)
	}
	return board, history
}

// kingOf returns the square of colour's king, failing the test if absent.
func kingOf(t testing.TB, board *chess.Board, colour chess.Colour) chess.Coordinate {
	t.Helper()
	pos, ok := board.FindKing(colour)
	if !ok {
		t.Fatalf("no %v king on board", colour)
	}
	return pos
}

// squares parses a list of algebraic squares.
func squares(names ...string) []chess.Coordinate {
	coords := make([]chess.Coordinate, 0, len(names))
	for _, n := range names {
		coords = append(coords, chess.MustParseCoordinate(n))
	}
	return coords
}

// sameSquares compares two destination lists ignoring order.
func sameSquares(got, want []chess.Coordinate) bool {
	if len(got) != len(want) {
		return false
	}
	for _, c := range want {
		if !slices.Contains(got, c) {
			return false
		}
	}
	return true
}

// movesFrom returns the legal destinations of the piece on square.
func movesFrom(t testing.TB, board *chess.Board, history []chess.Move, square string) []chess.Coordinate {
	t.Helper()
	from := chess.MustParseCoordinate(square)
	piece := board.Get(from)
	if piece.IsEmpty() {
		t.Fatalf("no piece on %s", square)
	}
	return GenerateMoves(board, piece.Colour, piece.Piece, from, kingOf(t, board, piece.Colour), history)
}

// countingPositions is a PositionCounter backed by a map.
type countingPositions map[string]int

func (c countingPositions) Count(signature string) int {
	return c[signature]
}
