package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestApplyMove_Effects(t *testing.T) {
	tests := []struct {
		name          string
		placement     string
		from, to      string
		wantPlacement string
		wantEffects   MoveEffects
	}{
		{
			name:          "quiet pawn push",
			placement:     StartingPlacement,
			from:          "e2",
			to:            "e4",
			wantPlacement: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR",
			wantEffects:   MoveEffects{Moved: chess.W(chess.Pawn)},
		},
		{
			name:          "capture",
			placement:     "4k3/8/8/3p4/4N3/8/8/4K3",
			from:          "e4",
			to:            "d5",
			wantPlacement: "4k3/8/8/3N4/8/8/8/4K3",
			wantEffects:   MoveEffects{Moved: chess.W(chess.Knight), Captured: chess.B(chess.Pawn)},
		},
		{
			name:          "white castles king side",
			placement:     "r3k2r/8/8/8/8/8/8/R3K2R",
			from:          "e1",
			to:            "g1",
			wantPlacement: "r3k2r/8/8/8/8/8/8/R4RK1",
			wantEffects:   MoveEffects{Moved: chess.W(chess.King), KingSideCastle: true},
		},
		{
			name:          "white castles queen side",
			placement:     "r3k2r/8/8/8/8/8/8/R3K2R",
			from:          "e1",
			to:            "c1",
			wantPlacement: "r3k2r/8/8/8/8/8/8/2KR3R",
			wantEffects:   MoveEffects{Moved: chess.W(chess.King), QueenSideCastle: true},
		},
		{
			name:          "black castles queen side",
			placement:     "r3k2r/8/8/8/8/8/8/R3K2R",
			from:          "e8",
			to:            "c8",
			wantPlacement: "2kr3r/8/8/8/8/8/8/R3K2R",
			wantEffects:   MoveEffects{Moved: chess.B(chess.King), QueenSideCastle: true},
		},
		{
			name:          "en passant removes the passed pawn",
			placement:     "4k3/8/8/3pP3/8/8/8/4K3",
			from:          "e5",
			to:            "d6",
			wantPlacement: "4k3/8/3P4/8/8/8/8/4K3",
			wantEffects:   MoveEffects{Moved: chess.W(chess.Pawn), Captured: chess.B(chess.Pawn), EnPassant: true},
		},
		{
			name:          "pawn reaches last row",
			placement:     "8/4P1k1/8/8/8/8/8/4K3",
			from:          "e7",
			to:            "e8",
			wantPlacement: "4P3/6k1/8/8/8/8/8/4K3",
			wantEffects:   MoveEffects{Moved: chess.W(chess.Pawn), ReachedLastRow: true},
		},
		{
			name:          "black pawn reaches last row with capture",
			placement:     "4k3/8/8/8/8/8/6p1/4K2R",
			from:          "g2",
			to:            "h1",
			wantPlacement: "4k3/8/8/8/8/8/8/4K2p",
			wantEffects:   MoveEffects{Moved: chess.B(chess.Pawn), Captured: chess.W(chess.Rook), ReachedLastRow: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := MustParsePlacement(tt.placement)
			got := ApplyMove(board, chess.MustParseCoordinate(tt.from), chess.MustParseCoordinate(tt.to))
			if got != tt.wantEffects {
				t.Errorf("ApplyMove() effects = %+v, want %+v", got, tt.wantEffects)
			}
			if placement := SerializePlacement(board); placement != tt.wantPlacement {
				t.Errorf("placement = %q, want %q", placement, tt.wantPlacement)
			}
		})
	}
}

func TestPromote(t *testing.T) {
	board := MustParsePlacement("4P3/6k1/8/8/8/8/8/4K3")
	e8 := chess.MustParseCoordinate("e8")
	Promote(board, e8, chess.Knight)
	if got := board.Get(e8); got != chess.W(chess.Knight) {
		t.Errorf("e8 = %v, want white knight", got)
	}
}

func TestEnPassant(t *testing.T) {
	t.Run("available straight after double push", func(t *testing.T) {
		board, history := replay(t, StartingPlacement, "e2e4", "a7a6", "e4e5", "d7d5")
		got := movesFrom(t, board, history, "e5")
		want := squares("e6", "d6")
		if !sameSquares(got, want) {
			t.Errorf("moves from e5 = %v, want %v", got, want)
		}
	})

	t.Run("capture removes the pawn", func(t *testing.T) {
		board, history := replay(t, StartingPlacement, "e2e4", "a7a6", "e4e5", "d7d5", "e5d6")
		if !board.Get(chess.MustParseCoordinate("d5")).IsEmpty() {
			t.Error("d5 still occupied after en passant")
		}
		last := history[len(history)-1]
		if !last.IsEnPassant || !last.Capture {
			t.Errorf("last move = %+v, want en passant capture", last)
		}
		if last.Notation() != "exd6" {
			t.Errorf("Notation() = %q, want %q", last.Notation(), "exd6")
		}
	})

	t.Run("expires after one move", func(t *testing.T) {
		board, history := replay(t, StartingPlacement, "e2e4", "a7a6", "e4e5", "d7d5", "h2h3", "h7h6")
		got := movesFrom(t, board, history, "e5")
		want := squares("e6")
		if !sameSquares(got, want) {
			t.Errorf("moves from e5 = %v, want %v", got, want)
		}
	})

	t.Run("not after single steps", func(t *testing.T) {
		board, history := replay(t, StartingPlacement, "e2e4", "d7d6", "e4e5", "d6d5")
		got := movesFrom(t, board, history, "e5")
		want := squares("e6")
		if !sameSquares(got, want) {
			t.Errorf("moves from e5 = %v, want %v", got, want)
		}
	})

	t.Run("black captures", func(t *testing.T) {
		board, history := replay(t, StartingPlacement, "a2a3", "d7d5", "a3a4", "d5d4", "c2c4")
		got := movesFrom(t, board, history, "d4")
		want := squares("d3", "c3")
		if !sameSquares(got, want) {
			t.Errorf("moves from d4 = %v, want %v", got, want)
		}
	})

	t.Run("illegal when it exposes the king", func(t *testing.T) {
		// Both pawns leave the fourth row, opening it to the rook.
		board, history := replay(t, "4k3/1p6/8/K1P4r/8/8/8/8", "b7b5")
		got := movesFrom(t, board, history, "c5")
		want := squares("c6")
		if !sameSquares(got, want) {
			t.Errorf("moves from c5 = %v, want %v", got, want)
		}
	})
}

func TestCastling(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		moves     []string
		square    string
		wantKing  bool
		wantQueen bool
	}{
		{"both sides open", "r3k2r/8/8/8/8/8/8/R3K2R", nil, "e1", true, true},
		{"black both sides open", "r3k2r/8/8/8/8/8/8/R3K2R", []string{"a1a2"}, "e8", true, true},
		{"king in check", "4k3/8/8/8/4r3/8/8/R3K2R", nil, "e1", false, false},
		{"crossing square attacked", "4k3/8/8/8/5r2/8/8/R3K2R", nil, "e1", false, true},
		{"landing square attacked", "4k3/8/8/8/2r5/8/8/R3K2R", nil, "e1", true, false},
		{"b-file attack does not matter", "4k3/8/8/8/8/n7/8/R3K2R", nil, "e1", true, true},
		{"path blocked", "4k3/8/8/8/8/8/8/RN2K1NR", nil, "e1", false, false},
		{"queen side knight blocks only b1", "4k3/8/8/8/8/8/8/RN2K2R", nil, "e1", true, false},
		{"king has moved", "r3k2r/8/8/8/8/8/8/R3K2R", []string{"e1e2", "a8b8", "e2e1", "b8a8"}, "e1", false, false},
		{"queen rook has moved", "r3k2r/8/8/8/8/8/8/R3K2R", []string{"e1e2", "a8b8", "e2e1", "b8a8", "h1h2"}, "e8", true, false},
		{"king rook has moved", "r3k2r/8/8/8/8/8/8/R3K2R", []string{"h1h2", "h8h7", "h2h1", "h7h8"}, "e1", false, true},
		{"rook captured in its corner", "r3k2r/8/8/8/8/8/6b1/R3K2R", []string{"a1b1", "g2h1"}, "e1", false, false},
		{"no rook in the corner", "4k3/8/8/8/8/8/8/4K2R", nil, "e1", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, history := replay(t, tt.placement, tt.moves...)
			got := movesFrom(t, board, history, tt.square)
			from := chess.MustParseCoordinate(tt.square)
			if has := containsSquare(got, from.Offset(0, 2)); has != tt.wantKing {
				t.Errorf("king side castle available = %v, want %v (moves %v)", has, tt.wantKing, got)
			}
			if has := containsSquare(got, from.Offset(0, -2)); has != tt.wantQueen {
				t.Errorf("queen side castle available = %v, want %v (moves %v)", has, tt.wantQueen, got)
			}
		})
	}
}

func TestHasCastlingRight(t *testing.T) {
	board, history := replay(t, "r3k2r/8/8/8/8/8/8/R3K2R", "a1a8")
	tests := []struct {
		colour chess.Colour
		side   CastleSide
		want   bool
	}{
		{chess.White, KingSide, true},
		{chess.White, QueenSide, false},
		{chess.Black, KingSide, true},
		{chess.Black, QueenSide, false},
	}
	for _, tt := range tests {
		if got := HasCastlingRight(board, tt.colour, tt.side, history); got != tt.want {
			t.Errorf("HasCastlingRight(%v, %v) = %v, want %v", tt.colour, tt.side, got, tt.want)
		}
	}
}

func containsSquare(moves []chess.Coordinate, c chess.Coordinate) bool {
	for _, m := range moves {
		if m == c {
			return true
		}
	}
	return false
}
