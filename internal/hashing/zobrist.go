package hashing

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Zobrist keys, filled deterministically so hashes are stable across runs.
var (
	zobristPieces      [2][chess.NumPieceValues][chess.BoardSize][chess.BoardSize]uint64
	zobristBlackToMove uint64
)

func init() {
	seed := uint64(0x9E3779B97F4A7C15)
	for colour := range zobristPieces {
		for piece := range zobristPieces[colour] {
			for row := 0; row < chess.BoardSize; row++ {
				for col := 0; col < chess.BoardSize; col++ {
					zobristPieces[colour][piece][row][col] = splitmix64(&seed)
				}
			}
		}
	}
	zobristBlackToMove = splitmix64(&seed)
}

// splitmix64 advances the state and returns the next pseudo-random value.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// GenerateZobristHash returns the Zobrist hash of the placement with
// toMove to play.
func GenerateZobristHash(board *chess.Board, toMove chess.Colour) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Squares[row][col]
			if p.IsEmpty() {
				continue
			}
			hash ^= zobristPieces[p.Colour][p.Piece][row][col]
		}
	}
	if toMove == chess.Black {
		hash ^= zobristBlackToMove
	}
	return hash
}

// WeakHash is a cheap order-dependent checksum of the placement, used to
// confirm Zobrist matches.
func WeakHash(board *chess.Board) uint32 {
	var hash uint32
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Squares[row][col]
			v := uint32(p.Piece)
			if !p.IsEmpty() && p.Colour == chess.Black {
				v += uint32(chess.NumPieceValues)
			}
			hash = hash*31 + v
		}
	}
	return hash
}
