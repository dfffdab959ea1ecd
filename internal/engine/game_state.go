package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// DetectCheckmate returns true if colour is in check and has no legal move.
func DetectCheckmate(board *chess.Board, colour chess.Colour, kingPos chess.Coordinate, history []chess.Move) bool {
	return DetectCheck(board, colour, kingPos) && !HasLegalMoves(board, colour, kingPos, history)
}

// DetectStalemate returns true if colour is not in check but has no legal move.
func DetectStalemate(board *chess.Board, colour chess.Colour, kingPos chess.Coordinate, history []chess.Move) bool {
	return !DetectCheck(board, colour, kingPos) && !HasLegalMoves(board, colour, kingPos, history)
}
