package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// promotionChoices are the pieces a pawn may become, in perft order.
var promotionChoices = [...]chess.Piece{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// Perft counts the leaf nodes of the legal move tree below a position,
// depth plies deep. Each promotion choice counts as a separate move.
func Perft(board *chess.Board, toMove chess.Colour, history []chess.Move, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	forEachChild(board, toMove, history, func(child *chess.Board, childHistory []chess.Move) {
		if depth == 1 {
			nodes++
			return
		}
		nodes += Perft(child, toMove.Opposite(), childHistory, depth-1)
	})
	return nodes
}

// PerftDivide returns the perft count below each legal move of the
// position, keyed by the move in UCI form.
func PerftDivide(board *chess.Board, toMove chess.Colour, history []chess.Move, depth int) map[string]uint64 {
	div := make(map[string]uint64)
	if depth <= 0 {
		return div
	}
	forEachChild(board, toMove, history, func(child *chess.Board, childHistory []chess.Move) {
		last := &childHistory[len(childHistory)-1]
		div[last.UCI()] = Perft(child, toMove.Opposite(), childHistory, depth-1)
	})
	return div
}

// forEachChild calls visit with the board and history after each legal
// move of toMove. The board and history passed to visit are scratch
// copies that visit may keep.
func forEachChild(board *chess.Board, toMove chess.Colour, history []chess.Move, visit func(*chess.Board, []chess.Move)) {
	kingPos, ok := board.FindKing(toMove)
	if !ok {
		return
	}
	for from, dests := range AllLegalMoves(board, toMove, kingPos, history) {
		for _, to := range dests {
			child := *board
			effects := ApplyMove(&child, from, to)
			move := effects.Record(from, to)

			if !effects.ReachedLastRow {
				visit(&child, appendMove(history, move))
				continue
			}
			for _, piece := range promotionChoices {
				promoted := child
				Promote(&promoted, to, piece)
				move.PromotionPiece = piece
				visit(&promoted, appendMove(history, move))
			}
		}
	}
}

// appendMove returns history with m appended, never sharing the backing
// array of history.
func appendMove(history []chess.Move, m chess.Move) []chess.Move {
	out := make([]chess.Move, len(history)+1)
	copy(out, history)
	out[len(history)] = m
	return out
}
