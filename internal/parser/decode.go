package parser

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ScriptMove is one move of a script in coordinate notation.
type ScriptMove struct {
	From, To chess.Coordinate
	// Promotion is Empty when the move names no promotion piece.
	Promotion chess.Piece
	Text      string
	Line      int
	Column    int
}

// String returns the move in UCI form, e.g. "e7e8q".
func (m ScriptMove) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != chess.Empty {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

// isCol returns true if c is a valid column (file) character.
func isCol(c byte) bool {
	return (c >= 'a' && c <= 'h') || (c >= 'A' && c <= 'H')
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return c >= '1' && c <= '8'
}

// isSeparator returns true if c may stand between the two squares.
func isSeparator(c byte) bool {
	return c == '-' || c == 'x' || c == 'X' || c == ':'
}

// isSuffix returns true if c is a check mark or annotation glyph.
func isSuffix(c byte) bool {
	return c == '+' || c == '#' || c == '!' || c == '?'
}

// promotionPiece returns the piece named by a promotion letter.
func promotionPiece(c byte) chess.Piece {
	switch c {
	case 'q', 'Q':
		return chess.Queen
	case 'r', 'R':
		return chess.Rook
	case 'b', 'B':
		return chess.Bishop
	case 'n', 'N':
		return chess.Knight
	}
	return chess.Empty
}

// ParseMove decodes a coordinate move such as "e2e4", "e2-e4", "d5xe6",
// "e7e8q" or "e7e8=Q". Trailing check marks and annotation glyphs are
// ignored.
func ParseMove(text string) (ScriptMove, error) {
	move := ScriptMove{Text: text}

	s := strings.TrimRightFunc(text, func(r rune) bool { return r < 0x80 && isSuffix(byte(r)) })
	if len(s) < 4 {
		return move, fmt.Errorf("move %q: %w", text, errors.ErrParseFailure)
	}

	if !isCol(s[0]) || !isRank(s[1]) {
		return move, fmt.Errorf("move %q: bad origin square: %w", text, errors.ErrParseFailure)
	}
	move.From, _ = chess.ParseCoordinate(s[:2])
	s = s[2:]

	if len(s) > 0 && isSeparator(s[0]) {
		s = s[1:]
	}
	if len(s) < 2 || !isCol(s[0]) || !isRank(s[1]) {
		return move, fmt.Errorf("move %q: bad destination square: %w", text, errors.ErrParseFailure)
	}
	move.To, _ = chess.ParseCoordinate(s[:2])
	s = s[2:]

	if len(s) > 0 && s[0] == '=' {
		s = s[1:]
		if len(s) == 0 {
			return move, fmt.Errorf("move %q: missing promotion piece: %w", text, errors.ErrParseFailure)
		}
	}
	if len(s) > 0 {
		move.Promotion = promotionPiece(s[0])
		if move.Promotion == chess.Empty || len(s) > 1 {
			return move, fmt.Errorf("move %q: bad promotion piece: %w", text, errors.ErrParseFailure)
		}
	}

	if move.From == move.To {
		return move, fmt.Errorf("move %q: origin equals destination: %w", text, errors.ErrParseFailure)
	}
	return move, nil
}

// ParseColour decodes a side to move: "w", "white", "b" or "black" in any
// case.
func ParseColour(text string) (chess.Colour, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "w", "white":
		return chess.White, nil
	case "b", "black":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("side to move %q: %w", text, errors.ErrParseFailure)
}
