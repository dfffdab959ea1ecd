package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves returns the pseudo-legal destinations of a pawn: single and
// double advances onto empty squares, diagonal captures and en passant.
func pawnMoves(board *chess.Board, colour chess.Colour, from chess.Coordinate, history []chess.Move) []chess.Coordinate {
	var moves []chess.Coordinate
	dir := chess.ColourOffset(colour)

	// Forward move
	one := from.Offset(dir, 0)
	if board.IsEmpty(one) {
		moves = append(moves, one)
		// Double push from starting row
		two := from.Offset(2*dir, 0)
		if from.Row == chess.PawnStartRow(colour) && board.IsEmpty(two) {
			moves = append(moves, two)
		}
	}

	// Captures
	for _, dc := range []int{-1, 1} {
		to := from.Offset(dir, dc)
		if board.IsEnemy(to, colour) {
			moves = append(moves, to)
		}
	}

	if to, ok := EnPassantTarget(board, colour, from, history); ok {
		moves = append(moves, to)
	}
	return moves
}

// EnPassantTarget returns the square a pawn of colour on from may move to
// by capturing en passant. This is possible only straight after an enemy
// pawn advanced two squares to land beside it.
func EnPassantTarget(board *chess.Board, colour chess.Colour, from chess.Coordinate, history []chess.Move) (chess.Coordinate, bool) {
	if len(history) == 0 {
		return chess.Coordinate{}, false
	}
	last := &history[len(history)-1]
	if last.Colour == colour || !last.IsDoublePawnPush() {
		return chess.Coordinate{}, false
	}
	if last.To.Row != from.Row || abs(last.To.Col-from.Col) != 1 {
		return chess.Coordinate{}, false
	}
	if !board.Get(last.To).Is(colour.Opposite(), chess.Pawn) {
		return chess.Coordinate{}, false
	}
	return chess.Coord(from.Row+chess.ColourOffset(colour), last.To.Col), true
}
