package chess

import "fmt"

// Coordinate addresses a square by row and column, each in [0,7].
// Row 0 is rank 8, column 0 is the a-file.
type Coordinate struct {
	Row int
	Col int
}

// Coord is shorthand for Coordinate{Row: row, Col: col}.
func Coord(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// Offset returns the coordinate dr rows and dc columns away.
func (c Coordinate) Offset(dr, dc int) Coordinate {
	return Coordinate{Row: c.Row + dr, Col: c.Col + dc}
}

// File returns the file letter ('a'-'h') of the coordinate.
func (c Coordinate) File() byte {
	return byte('a' + c.Col)
}

// Rank returns the rank digit ('1'-'8') of the coordinate.
func (c Coordinate) Rank() byte {
	return byte('0' + BoardSize - c.Row)
}

// String returns the algebraic name of the square, e.g. "e4".
func (c Coordinate) String() string {
	if OutOfBounds(c) {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return string([]byte{c.File(), c.Rank()})
}

// ParseCoordinate converts an algebraic square name such as "e4".
func ParseCoordinate(s string) (Coordinate, bool) {
	if len(s) != 2 {
		return Coordinate{}, false
	}
	file, rank := s[0], s[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Coordinate{}, false
	}
	return Coordinate{Row: BoardSize - int(rank-'0'), Col: int(file - 'a')}, true
}

// MustParseCoordinate is ParseCoordinate for literals known to be valid.
func MustParseCoordinate(s string) Coordinate {
	c, ok := ParseCoordinate(s)
	if !ok {
		panic(fmt.Sprintf("chess: invalid square %q", s))
	}
	return c
}

// OutOfBounds reports whether the coordinate lies off the board.
func OutOfBounds(c Coordinate) bool {
	return c.Row < 0 || c.Col < 0 || c.Row >= BoardSize || c.Col >= BoardSize
}

// Board is an 8x8 grid of optional pieces.
// Board is a value type: assigning or copying it yields an independent
// scratch board, which is how hypothetical moves are evaluated.
type Board struct {
	Squares [BoardSize][BoardSize]ColouredPiece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}
	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[BlackBackRow][col] = B(backRank[col])
		b.Squares[BlackPawnStartRow][col] = B(Pawn)
		b.Squares[WhitePawnStartRow][col] = W(Pawn)
		b.Squares[WhiteBackRow][col] = W(backRank[col])
	}
}

// Get returns the piece at c. The caller must bounds-check c first.
func (b *Board) Get(c Coordinate) ColouredPiece {
	return b.Squares[c.Row][c.Col]
}

// Set places a piece at c. The caller must bounds-check c first.
func (b *Board) Set(c Coordinate, piece ColouredPiece) {
	b.Squares[c.Row][c.Col] = piece
}

// Clear empties the square at c.
func (b *Board) Clear(c Coordinate) {
	b.Squares[c.Row][c.Col] = NoPiece
}

// IsEmpty reports whether c is on the board and unoccupied.
func (b *Board) IsEmpty(c Coordinate) bool {
	return !OutOfBounds(c) && b.Get(c).IsEmpty()
}

// IsSameColour reports whether c is on the board and holds a piece of colour.
func (b *Board) IsSameColour(c Coordinate, colour Colour) bool {
	if OutOfBounds(c) {
		return false
	}
	p := b.Get(c)
	return !p.IsEmpty() && p.Colour == colour
}

// IsEnemy reports whether c is on the board and holds a piece of the
// colour opposing colour.
func (b *Board) IsEnemy(c Coordinate, colour Colour) bool {
	return b.IsSameColour(c, colour.Opposite())
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// FindKing returns the square of the king of the given colour.
func (b *Board) FindKing(colour Colour) (Coordinate, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col].Is(colour, King) {
				return Coord(row, col), true
			}
		}
	}
	return Coordinate{}, false
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if !b.Squares[row][col].IsEmpty() {
				n++
			}
		}
	}
	return n
}
