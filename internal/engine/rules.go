package engine

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// FiftyMoveHalfMoves is the number of consecutive half-moves without a
// capture or pawn move after which the game is drawn.
const FiftyMoveHalfMoves = 100

// PositionCounter reports how often a position signature has occurred.
type PositionCounter interface {
	Count(signature string) int
}

// Signer computes the signature of a position for repetition counting.
type Signer func(board *chess.Board, toMove chess.Colour, history []chess.Move) string

// PositionSignature identifies a position by piece placement alone.
func PositionSignature(board *chess.Board, _ chess.Colour, _ []chess.Move) string {
	return SerializePlacement(board)
}

// StrictSignature identifies a position by placement, side to move,
// castling rights and en-passant square, the way the FIDE repetition rule
// compares positions. The en-passant square only counts when a pawn of
// toMove can legally capture onto it.
func StrictSignature(board *chess.Board, toMove chess.Colour, history []chess.Move) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, toMove)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board, history)
	sb.WriteByte(' ')
	if target, ok := CapturableEnPassant(board, toMove, history); ok {
		sb.WriteString(target.String())
	} else {
		sb.WriteByte('-')
	}
	return sb.String()
}

// CapturableEnPassant returns the en-passant target square if a pawn of
// toMove has a legal en-passant capture onto it.
func CapturableEnPassant(board *chess.Board, toMove chess.Colour, history []chess.Move) (chess.Coordinate, bool) {
	if len(history) == 0 {
		return chess.Coordinate{}, false
	}
	last := &history[len(history)-1]
	if last.Colour == toMove || !last.IsDoublePawnPush() {
		return chess.Coordinate{}, false
	}
	kingPos, ok := board.FindKing(toMove)
	if !ok {
		return chess.Coordinate{}, false
	}
	for _, dc := range []int{-1, 1} {
		from := chess.Coord(last.To.Row, last.To.Col+dc)
		if chess.OutOfBounds(from) || !board.Get(from).Is(toMove, chess.Pawn) {
			continue
		}
		target, ok := EnPassantTarget(board, toMove, from, history)
		if ok && slices.Contains(GenerateMoves(board, toMove, chess.Pawn, from, kingPos, history), target) {
			return target, true
		}
	}
	return chess.Coordinate{}, false
}

// ComputeDrawReason decides whether the position, with colour to move,
// is drawn. Rules are tried in order: stalemate, insufficient material,
// threefold repetition and the fifty-move rule. positions holds the
// signatures recorded so far, not including the current position.
func ComputeDrawReason(board *chess.Board, colour chess.Colour, kingPos chess.Coordinate, history []chess.Move, positions PositionCounter, sign Signer) chess.DrawReason {
	switch {
	case DetectStalemate(board, colour, kingPos, history):
		return chess.Stalemate
	case HasInsufficientMaterial(board):
		return chess.InsufficientMaterial
	case IsThreefoldRepetition(positions, sign(board, colour, history)):
		return chess.ThreefoldRepetition
	case IsFiftyMoveRule(history):
		return chess.FiftyMoveRule
	}
	return chess.NoDraw
}

// HasInsufficientMaterial returns true if no more than three pieces remain
// (kings included) and none of them is a pawn, rook or queen: bare kings,
// or king and a single minor piece against a bare king.
func HasInsufficientMaterial(board *chess.Board) bool {
	if board.Count() > 3 {
		return false
	}
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			switch board.Squares[row][col].Piece {
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			}
		}
	}
	return true
}

// IsThreefoldRepetition returns true if the position with the given
// signature has already occurred at least twice, so reaching it again is
// at least its third occurrence.
func IsThreefoldRepetition(positions PositionCounter, signature string) bool {
	if positions == nil {
		return false
	}
	return positions.Count(signature) >= 2
}

// IsFiftyMoveRule returns true if the last hundred half-moves contain no
// capture and no pawn move.
func IsFiftyMoveRule(history []chess.Move) bool {
	return len(history) >= FiftyMoveHalfMoves && HalfmoveClock(history) >= FiftyMoveHalfMoves
}
