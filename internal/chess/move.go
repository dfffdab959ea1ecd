package chess

import "strings"

// Move represents a single completed move with its annotations.
// Check and Checkmate describe the position after the move from the
// point of view of the opponent, who moves next.
type Move struct {
	// Source and destination squares.
	From Coordinate
	To   Coordinate

	// The piece being moved and the side that moved it.
	Piece  Piece
	Colour Colour

	// Whether a piece was captured (including en passant).
	Capture bool

	// Special move markers.
	IsEnPassant     bool
	KingSideCastle  bool
	QueenSideCastle bool

	// Whether this move gives check or checkmate.
	Check     bool
	Checkmate bool

	// The piece promoted to (Empty if not a promotion).
	PromotionPiece Piece
}

// IsCapture returns true if this move is a capture.
func (m *Move) IsCapture() bool {
	return m.Capture || m.IsEnPassant
}

// IsPromotion returns true if this move is a pawn promotion.
func (m *Move) IsPromotion() bool {
	return m.PromotionPiece != Empty
}

// IsCastle returns true if this move is a castling move.
func (m *Move) IsCastle() bool {
	return m.KingSideCastle || m.QueenSideCastle
}

// IsDoublePawnPush reports whether the move advanced a pawn two squares.
func (m *Move) IsDoublePawnPush() bool {
	if m.Piece != Pawn {
		return false
	}
	d := m.To.Row - m.From.Row
	return m.From.Col == m.To.Col && (d == 2 || d == -2)
}

// Notation renders the move in short algebraic form, e.g. "Nf3", "exd5",
// "O-O" or "e8=Q+".
func (m *Move) Notation() string {
	if m.KingSideCastle {
		return "O-O"
	}
	if m.QueenSideCastle {
		return "O-O-O"
	}

	var sb strings.Builder
	if m.Piece == Pawn {
		if m.IsCapture() {
			sb.WriteByte(m.From.File())
			sb.WriteByte('x')
		}
	} else {
		sb.WriteByte(m.Piece.Letter())
		if m.IsCapture() {
			sb.WriteByte('x')
		}
	}
	sb.WriteString(m.To.String())
	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(m.PromotionPiece.Letter())
	}
	switch {
	case m.Checkmate:
		sb.WriteByte('#')
	case m.Check:
		sb.WriteByte('+')
	}
	return sb.String()
}

// UCI renders the move in long algebraic coordinate form, e.g. "e2e4"
// or "e7e8q".
func (m *Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += strings.ToLower(string(m.PromotionPiece.Letter()))
	}
	return s
}
