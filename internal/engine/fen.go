// Package engine provides chess move generation, legality checking and
// rule evaluation on top of the chess data model.
package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// StartingPlacement is the piece placement of the standard starting position.
const StartingPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// FEN piece characters (always English).
var fenPieceChars = map[chess.Piece]byte{
	chess.Pawn:   'P',
	chess.Knight: 'N',
	chess.Bishop: 'B',
	chess.Rook:   'R',
	chess.Queen:  'Q',
	chess.King:   'K',
}

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// ColouredPieceToFENLetter returns the FEN letter for a coloured piece:
// uppercase for White, lowercase for Black.
func ColouredPieceToFENLetter(cp chess.ColouredPiece) byte {
	letter, ok := fenPieceChars[cp.Piece]
	if !ok {
		return '?'
	}
	if cp.Colour == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// ParsePlacement parses the piece-placement field of a FEN string into a
// board. Ranks are listed from 8 down to 1 and separated by '/'; digits
// denote runs of empty squares.
func ParsePlacement(placement string) (*chess.Board, error) {
	placement = strings.TrimSpace(placement)
	if placement == "" {
		return nil, fmt.Errorf("empty placement string: %w", errors.ErrInvalidPlacement)
	}

	board := chess.NewBoard()
	row, col := 0, 0

	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return nil, placementError(i, fmt.Sprintf("%d squares in rank %d", col, chess.BoardSize-row))
			}
			row++
			col = 0
			if row >= chess.BoardSize {
				return nil, placementError(i, "more than 8 ranks")
			}
		case c >= '1' && c <= '8':
			col += int(c - '0')
			if col > chess.BoardSize {
				return nil, placementError(i, fmt.Sprintf("rank %d overflows", chess.BoardSize-row))
			}
		default:
			piece := ConvertFENCharToPiece(c)
			if piece == chess.Empty {
				return nil, placementError(i, fmt.Sprintf("%q", c))
			}
			if col >= chess.BoardSize {
				return nil, placementError(i, fmt.Sprintf("rank %d overflows", chess.BoardSize-row))
			}
			colour := chess.White
			if unicode.IsLower(rune(c)) {
				colour = chess.Black
			}
			board.Set(chess.Coord(row, col), chess.MakeColouredPiece(colour, piece))
			col++
		}
	}

	if row != chess.BoardSize-1 || col != chess.BoardSize {
		return nil, placementError(len(placement)-1, fmt.Sprintf("%d ranks", row+1))
	}
	return board, nil
}

// placementError reports a malformed placement at byte offset i.
func placementError(i int, got string) error {
	return &errors.ParseError{
		Err:    errors.ErrInvalidPlacement,
		Column: i + 1,
		Got:    got,
	}
}

// MustParsePlacement is ParsePlacement for placements known to be valid.
func MustParsePlacement(placement string) *chess.Board {
	board, err := ParsePlacement(placement)
	if err != nil {
		panic(err)
	}
	return board
}

// SerializePlacement converts a board to a FEN piece-placement string.
// The result doubles as the position signature used for repetition counting.
func SerializePlacement(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToFENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	return MustParsePlacement(StartingPlacement)
}

// FEN renders a full six-field FEN for the position reached after history
// with toMove to play. Castling availability and the en-passant square are
// derived from the move history; the half-move clock counts plies since
// the last capture or pawn move.
func FEN(board *chess.Board, toMove chess.Colour, history []chess.Move) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, toMove)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board, history)
	sb.WriteByte(' ')
	writeEnPassant(&sb, history)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", HalfmoveClock(history), fullmoveNumber(history))

	return sb.String()
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, colour chess.Colour) {
	if colour == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board, history []chess.Move) {
	rights := []struct {
		colour chess.Colour
		side   CastleSide
		letter byte
	}{
		{chess.White, KingSide, 'K'},
		{chess.White, QueenSide, 'Q'},
		{chess.Black, KingSide, 'k'},
		{chess.Black, QueenSide, 'q'},
	}

	hasCastling := false
	for _, r := range rights {
		if HasCastlingRight(board, r.colour, r.side, history) {
			sb.WriteByte(r.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder. As in
// standard FEN the square follows every double pawn push, capturable or
// not; StrictSignature uses CapturableEnPassant instead.
func writeEnPassant(sb *strings.Builder, history []chess.Move) {
	if len(history) == 0 {
		sb.WriteByte('-')
		return
	}
	last := history[len(history)-1]
	if !last.IsDoublePawnPush() {
		sb.WriteByte('-')
		return
	}
	target := chess.Coord((last.From.Row+last.To.Row)/2, last.To.Col)
	sb.WriteString(target.String())
}

// HalfmoveClock returns the number of plies since the last capture or pawn move.
func HalfmoveClock(history []chess.Move) int {
	clock := 0
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].IsCapture() || history[i].Piece == chess.Pawn {
			break
		}
		clock++
	}
	return clock
}

// fullmoveNumber returns the FEN full-move counter after history.
func fullmoveNumber(history []chess.Move) int {
	plies := len(history)
	if plies > 0 && history[0].Colour == chess.Black {
		plies++
	}
	return 1 + plies/2
}
