package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Reference counts from the standard perft suite. Castling rights follow
// from the king and rook placement since there is no history.
func TestPerft(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		toMove    chess.Colour
		want      []uint64 // index i is the count at depth i+1
	}{
		{"initial", StartingPlacement, chess.White, []uint64{20, 400, 8902}},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R", chess.White, []uint64{48, 2039}},
		{"rook endgame with en passant pins", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8", chess.White, []uint64{14, 191, 2812}},
		{"promotions", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1", chess.White, []uint64{6, 264}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := MustParsePlacement(tt.placement)
			for i, want := range tt.want {
				if got := Perft(board, tt.toMove, nil, i+1); got != want {
					t.Errorf("Perft(depth %d) = %d, want %d", i+1, got, want)
				}
			}
		})
	}
}

func TestPerftDepthZero(t *testing.T) {
	board := NewInitialBoard()
	if got := Perft(board, chess.White, nil, 0); got != 1 {
		t.Errorf("Perft(0) = %d, want 1", got)
	}
	if got := PerftDivide(board, chess.White, nil, 0); len(got) != 0 {
		t.Errorf("PerftDivide(0) = %v, want empty", got)
	}
}

func TestPerftDivide(t *testing.T) {
	board := NewInitialBoard()
	div := PerftDivide(board, chess.White, nil, 2)

	if len(div) != 20 {
		t.Fatalf("PerftDivide has %d root moves, want 20", len(div))
	}
	var total uint64
	for move, n := range div {
		if n != 20 {
			t.Errorf("%s: %d replies, want 20", move, n)
		}
		total += n
	}
	if total != 400 {
		t.Errorf("total = %d, want 400", total)
	}
}

func TestPerftDividePromotionKeys(t *testing.T) {
	board := MustParsePlacement("8/P6k/8/8/8/8/8/K7")
	div := PerftDivide(board, chess.White, nil, 1)
	for _, key := range []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n"} {
		if div[key] != 1 {
			t.Errorf("div[%s] = %d, want 1", key, div[key])
		}
	}
}

func TestPerftLeavesBoardUntouched(t *testing.T) {
	board := MustParsePlacement(benchPlacements["Complex"])
	before := *board
	Perft(board, chess.White, nil, 2)
	if *board != before {
		t.Error("Perft modified the board")
	}
}
