package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// GenerateMoves returns the legal destinations of the piece of the given
// colour and kind standing on from. kingPos is the square of that side's
// king and history the moves played so far (used for castling and en
// passant). Destinations that would leave the king attacked are excluded.
//
// GenerateMoves panics if piece is not a valid piece kind.
func GenerateMoves(board *chess.Board, colour chess.Colour, piece chess.Piece, from chess.Coordinate, kingPos chess.Coordinate, history []chess.Move) []chess.Coordinate {
	candidates := pseudoLegalMoves(board, colour, piece, from, kingPos, history)

	legal := candidates[:0]
	for _, to := range candidates {
		if leavesKingSafe(board, colour, from, to, kingPos) {
			legal = append(legal, to)
		}
	}
	return legal
}

// pseudoLegalMoves returns the destinations reachable by the piece's
// movement pattern, without regard to the safety of the king.
func pseudoLegalMoves(board *chess.Board, colour chess.Colour, piece chess.Piece, from chess.Coordinate, kingPos chess.Coordinate, history []chess.Move) []chess.Coordinate {
	if piece == chess.Pawn {
		return pawnMoves(board, colour, from, history)
	}

	dirs, slides := pieceDirections(piece, colour)
	var moves []chess.Coordinate
	for _, d := range dirs {
		to := from.Offset(d[0], d[1])
		for !chess.OutOfBounds(to) {
			if board.IsSameColour(to, colour) {
				break // Blocked by own piece
			}
			moves = append(moves, to)
			if !board.Get(to).IsEmpty() || !slides {
				break
			}
			to = to.Offset(d[0], d[1])
		}
	}

	if piece == chess.King && from == kingPos {
		moves = append(moves, castleMoves(board, colour, kingPos, history)...)
	}
	return moves
}

// leavesKingSafe makes the move on a scratch copy of the board and reports
// whether the mover's king is then free from attack.
func leavesKingSafe(board *chess.Board, colour chess.Colour, from, to, kingPos chess.Coordinate) bool {
	testBoard := board.Copy()
	effects := ApplyMove(testBoard, from, to)

	// Update king position if needed
	if effects.Moved.Piece == chess.King {
		kingPos = to
	}
	return !DetectCheck(testBoard, colour, kingPos)
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour, kingPos chess.Coordinate, history []chess.Move) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Coord(row, col)
			piece := board.Get(from)
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			for _, to := range pseudoLegalMoves(board, colour, piece.Piece, from, kingPos, history) {
				if leavesKingSafe(board, colour, from, to, kingPos) {
					return true
				}
			}
		}
	}
	return false
}

// AllLegalMoves returns every legal move of colour keyed by origin square.
// Pieces without a legal move are omitted.
func AllLegalMoves(board *chess.Board, colour chess.Colour, kingPos chess.Coordinate, history []chess.Move) map[chess.Coordinate][]chess.Coordinate {
	all := make(map[chess.Coordinate][]chess.Coordinate)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Coord(row, col)
			piece := board.Get(from)
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			if moves := GenerateMoves(board, colour, piece.Piece, from, kingPos, history); len(moves) > 0 {
				all[from] = moves
			}
		}
	}
	return all
}
