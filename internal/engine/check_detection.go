package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// DetectCheck returns true if the king of the given colour, standing on
// kingPos, is attacked by any opposing piece. Adjacency of the enemy king
// counts as an attack, so the same test tells whether a king may step
// onto a square.
func DetectCheck(board *chess.Board, colour chess.Colour, kingPos chess.Coordinate) bool {
	return IsSquareAttacked(board, kingPos, colour.Opposite())
}

// IsInCheck returns true if the given colour's king is in check. The king
// is located by scanning; callers that track the king should use DetectCheck.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingPos, ok := board.FindKing(colour)
	if !ok {
		return false // No king found
	}
	return DetectCheck(board, colour, kingPos)
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
func IsSquareAttacked(board *chess.Board, target chess.Coordinate, byColour chess.Colour) bool {
	// Check pawn attacks. A pawn attacking target sits one row behind it
	// from the pawn's point of view.
	pawnRow := target.Row - chess.ColourOffset(byColour)
	for _, dc := range []int{-1, 1} {
		c := chess.Coord(pawnRow, target.Col+dc)
		if !chess.OutOfBounds(c) && board.Get(c).Is(byColour, chess.Pawn) {
			return true
		}
	}

	// Check knight attacks
	for _, d := range knightDirs {
		c := target.Offset(d[0], d[1])
		if !chess.OutOfBounds(c) && board.Get(c).Is(byColour, chess.Knight) {
			return true
		}
	}

	// Check king attacks
	for _, d := range royalDirs {
		c := target.Offset(d[0], d[1])
		if !chess.OutOfBounds(c) && board.Get(c).Is(byColour, chess.King) {
			return true
		}
	}

	// Check sliding pieces along diagonals, then along straight lines
	if attackedAlong(board, target, byColour, diagonalDirs, chess.Bishop) {
		return true
	}
	return attackedAlong(board, target, byColour, straightDirs, chess.Rook)
}

// attackedAlong walks each ray from target and reports whether the first
// piece met is an enemy slider (the given piece or a queen).
func attackedAlong(board *chess.Board, target chess.Coordinate, byColour chess.Colour, dirs []direction, slider chess.Piece) bool {
	for _, d := range dirs {
		c := target.Offset(d[0], d[1])
		for !chess.OutOfBounds(c) {
			piece := board.Get(c)
			if !piece.IsEmpty() {
				if piece.Colour == byColour && (piece.Piece == slider || piece.Piece == chess.Queen) {
					return true
				}
				break // Blocked
			}
			c = c.Offset(d[0], d[1])
		}
	}
	return false
}
