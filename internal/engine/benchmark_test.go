package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

var benchPlacements = map[string]string{
	"Initial":  StartingPlacement,
	"Midgame":  "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R",
	"Endgame":  "8/5k2/8/8/8/8/5K2/4R3",
	"Complex":  "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R",
	"Castling": "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R",
}

func BenchmarkParsePlacement(b *testing.B) {
	for name, placement := range benchPlacements {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				ParsePlacement(placement)
			}
		})
	}
}

func BenchmarkSerializePlacement(b *testing.B) {
	for name, placement := range benchPlacements {
		b.Run(name, func(b *testing.B) {
			board := MustParsePlacement(placement)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				SerializePlacement(board)
			}
		})
	}
}

func BenchmarkAllLegalMoves(b *testing.B) {
	for name, placement := range benchPlacements {
		b.Run(name, func(b *testing.B) {
			board := MustParsePlacement(placement)
			kingPos := kingOf(b, board, chess.White)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				AllLegalMoves(board, chess.White, kingPos, nil)
			}
		})
	}
}

func BenchmarkGameReplay_ItalianOpening(b *testing.B) {
	moves := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5"}
	for i := 0; i < b.N; i++ {
		replay(b, StartingPlacement, moves...)
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	b.Run("NoCheck", func(b *testing.B) {
		board := NewInitialBoard()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			IsInCheck(board, chess.White)
		}
	})

	b.Run("InCheck", func(b *testing.B) {
		board := MustParsePlacement("rnb1kbnr/pppp1ppp/8/4p3/7q/5P2/PPPPP1PP/RNBQKBNR")
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			IsInCheck(board, chess.White)
		}
	})
}

func BenchmarkHasLegalMoves(b *testing.B) {
	positions := []string{"Initial", "Midgame", "Endgame"}
	for _, name := range positions {
		b.Run(name, func(b *testing.B) {
			board := MustParsePlacement(benchPlacements[name])
			kingPos := kingOf(b, board, chess.White)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				HasLegalMoves(board, chess.White, kingPos, nil)
			}
		})
	}
}

func BenchmarkBoardCopy(b *testing.B) {
	board := MustParsePlacement(benchPlacements["Midgame"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.Copy()
	}
}

func BenchmarkPerft(b *testing.B) {
	board := NewInitialBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Perft(board, chess.White, nil, 3)
	}
}
