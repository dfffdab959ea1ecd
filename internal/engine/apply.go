package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// MoveEffects describes what ApplyMove did to the board.
type MoveEffects struct {
	// The piece that moved.
	Moved chess.ColouredPiece

	// The piece captured (NoPiece if none). For en passant this is the
	// pawn removed beside the destination.
	Captured chess.ColouredPiece

	EnPassant       bool
	KingSideCastle  bool
	QueenSideCastle bool

	// ReachedLastRow is set when a pawn lands on its promotion row.
	ReachedLastRow bool
}

// IsCapture returns true if a piece was removed from the board.
func (e MoveEffects) IsCapture() bool {
	return !e.Captured.IsEmpty()
}

// Record builds the history entry for a move from→to with these effects.
// Check, checkmate and promotion fields are left for the caller.
func (e MoveEffects) Record(from, to chess.Coordinate) chess.Move {
	return chess.Move{
		From:            from,
		To:              to,
		Piece:           e.Moved.Piece,
		Colour:          e.Moved.Colour,
		Capture:         e.IsCapture(),
		IsEnPassant:     e.EnPassant,
		KingSideCastle:  e.KingSideCastle,
		QueenSideCastle: e.QueenSideCastle,
	}
}

// ApplyMove relocates the piece on from to to, including the rook of a
// castling move and the pawn taken en passant. The move is assumed legal;
// ApplyMove does not validate it. Promotion is not applied: the pawn is
// left on its last row for the caller to replace.
func ApplyMove(board *chess.Board, from, to chess.Coordinate) MoveEffects {
	piece := board.Get(from)
	effects := MoveEffects{
		Moved:    piece,
		Captured: board.Get(to),
	}

	switch piece.Piece {
	case chess.King:
		if to.Row == from.Row && abs(to.Col-from.Col) == 2 {
			applyCastleRook(board, from, to)
			effects.KingSideCastle = to.Col > from.Col
			effects.QueenSideCastle = to.Col < from.Col
		}
	case chess.Pawn:
		if from.Col != to.Col && effects.Captured.IsEmpty() {
			// Diagonal step onto an empty square can only be en passant.
			captured := chess.Coord(from.Row, to.Col)
			effects.Captured = board.Get(captured)
			effects.EnPassant = true
			board.Clear(captured)
		}
		effects.ReachedLastRow = to.Row == chess.PromotionRow(piece.Colour)
	}

	board.Clear(from)
	board.Set(to, piece)
	return effects
}

// applyCastleRook moves the castling rook from its corner to the square
// the king passed over.
func applyCastleRook(board *chess.Board, kingFrom, kingTo chess.Coordinate) {
	rookFrom := chess.Coord(kingFrom.Row, 0)
	rookTo := chess.Coord(kingFrom.Row, kingTo.Col+1)
	if kingTo.Col > kingFrom.Col {
		rookFrom = chess.Coord(kingFrom.Row, chess.BoardSize-1)
		rookTo = chess.Coord(kingFrom.Row, kingTo.Col-1)
	}
	rook := board.Get(rookFrom)
	board.Clear(rookFrom)
	board.Set(rookTo, rook)
}

// Promote replaces the pawn on target with the given piece of the same colour.
func Promote(board *chess.Board, target chess.Coordinate, piece chess.Piece) {
	pawn := board.Get(target)
	board.Set(target, chess.MakeColouredPiece(pawn.Colour, piece))
}
