// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type.
type Piece int

const (
	Empty Piece = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// IsValid reports whether p names one of the six piece kinds.
func (p Piece) IsValid() bool {
	return p >= Pawn && p <= King
}

// ColouredPiece is the content of a square. The zero value is an empty square.
type ColouredPiece struct {
	Piece  Piece
	Colour Colour
}

// NoPiece is the content of an empty square.
var NoPiece = ColouredPiece{}

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) ColouredPiece {
	return ColouredPiece{Piece: piece, Colour: colour}
}

// W creates a white piece.
func W(piece Piece) ColouredPiece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) ColouredPiece {
	return MakeColouredPiece(Black, piece)
}

// IsEmpty reports whether the square holds no piece.
func (cp ColouredPiece) IsEmpty() bool {
	return cp.Piece == Empty
}

// Is reports whether cp is a piece of the given colour and type.
func (cp ColouredPiece) Is(colour Colour, piece Piece) bool {
	return cp.Piece == piece && cp.Colour == colour
}

// String returns e.g. "White Knight", or "Empty".
func (cp ColouredPiece) String() string {
	if cp.IsEmpty() {
		return "Empty"
	}
	return cp.Colour.String() + " " + cp.Piece.String()
}

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Rows of interest. Row 0 is Black's back rank, row 7 is White's.
const (
	BlackBackRow      = 0
	BlackPawnStartRow = 1
	WhitePawnStartRow = 6
	WhiteBackRow      = 7
)

// HomeRow returns the back row of the given colour.
func HomeRow(colour Colour) int {
	if colour == White {
		return WhiteBackRow
	}
	return BlackBackRow
}

// PawnStartRow returns the row pawns of the given colour start on.
func PawnStartRow(colour Colour) int {
	if colour == White {
		return WhitePawnStartRow
	}
	return BlackPawnStartRow
}

// PromotionRow returns the row on which pawns of the given colour promote.
func PromotionRow(colour Colour) int {
	return HomeRow(colour.Opposite())
}

// ColourOffset returns the row step of a pawn: -1 for White, +1 for Black.
func ColourOffset(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// DrawReason explains why a finished game was drawn.
type DrawReason int

const (
	NoDraw DrawReason = iota
	Stalemate
	InsufficientMaterial
	ThreefoldRepetition
	FiftyMoveRule
)

// String returns the display name of the draw reason.
func (d DrawReason) String() string {
	switch d {
	case Stalemate:
		return "Stalemate"
	case InsufficientMaterial:
		return "Insufficient Material"
	case ThreefoldRepetition:
		return "Threefold Repetition"
	case FiftyMoveRule:
		return "Fifty-move Rule"
	default:
		return ""
	}
}
