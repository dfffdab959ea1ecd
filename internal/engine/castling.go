package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// CastleSide selects the king side (h-file rook) or queen side (a-file rook).
type CastleSide int

const (
	KingSide CastleSide = iota
	QueenSide
)

// String returns the castling notation for the side.
func (s CastleSide) String() string {
	if s == KingSide {
		return "O-O"
	}
	return "O-O-O"
}

// kingHomeCol is the file of both kings in the starting position.
const kingHomeCol = 4

// rookCorner returns the starting square of the rook used for castling.
func rookCorner(colour chess.Colour, side CastleSide) chess.Coordinate {
	if side == KingSide {
		return chess.Coord(chess.HomeRow(colour), chess.BoardSize-1)
	}
	return chess.Coord(chess.HomeRow(colour), 0)
}

// kingHome returns the starting square of the king.
func kingHome(colour chess.Colour) chess.Coordinate {
	return chess.Coord(chess.HomeRow(colour), kingHomeCol)
}

// castleTarget returns the square the king lands on when castling.
func castleTarget(colour chess.Colour, side CastleSide) chess.Coordinate {
	if side == KingSide {
		return kingHome(colour).Offset(0, 2)
	}
	return kingHome(colour).Offset(0, -2)
}

// HasCastlingRight reports whether colour still holds the right to castle
// on side: king and rook are on their starting squares and neither has
// moved. A rook captured on its corner also loses the right, as does any
// piece that moved through the corner.
func HasCastlingRight(board *chess.Board, colour chess.Colour, side CastleSide, history []chess.Move) bool {
	home := kingHome(colour)
	corner := rookCorner(colour, side)
	if !board.Get(home).Is(colour, chess.King) || !board.Get(corner).Is(colour, chess.Rook) {
		return false
	}

	for i := range history {
		m := &history[i]
		if m.Colour == colour && m.Piece == chess.King {
			return false
		}
		if m.From == corner || m.To == corner {
			return false
		}
	}
	return true
}

// CanCastle reports whether the king of colour standing on kingPos may
// castle on side right now. Besides the castling right, the king must not
// be in check, the squares between king and rook must be empty, and the
// squares the king crosses and lands on must not be attacked.
func CanCastle(board *chess.Board, colour chess.Colour, side CastleSide, kingPos chess.Coordinate, history []chess.Move) bool {
	if kingPos != kingHome(colour) {
		return false
	}
	if !HasCastlingRight(board, colour, side, history) {
		return false
	}
	if DetectCheck(board, colour, kingPos) {
		return false
	}

	// Squares strictly between king and rook
	corner := rookCorner(colour, side)
	step := 1
	if corner.Col < kingPos.Col {
		step = -1
	}
	for col := kingPos.Col + step; col != corner.Col; col += step {
		if !board.IsEmpty(chess.Coord(kingPos.Row, col)) {
			return false
		}
	}

	// Squares the king passes over and lands on
	enemy := colour.Opposite()
	for i := 1; i <= 2; i++ {
		if IsSquareAttacked(board, kingPos.Offset(0, i*step), enemy) {
			return false
		}
	}
	return true
}

// castleMoves returns the castling destinations open to the king.
func castleMoves(board *chess.Board, colour chess.Colour, kingPos chess.Coordinate, history []chess.Move) []chess.Coordinate {
	var moves []chess.Coordinate
	for _, side := range []CastleSide{KingSide, QueenSide} {
		if CanCastle(board, colour, side, kingPos, history) {
			moves = append(moves, castleTarget(colour, side))
		}
	}
	return moves
}
