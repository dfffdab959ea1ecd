package engine

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		wantErr   bool
		checkFn   func(*chess.Board) bool
	}{
		{
			name:      "initial position",
			placement: StartingPlacement,
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.MustParseCoordinate("e1")) == chess.W(chess.King) &&
					b.Get(chess.MustParseCoordinate("e8")) == chess.B(chess.King) &&
					b.Get(chess.MustParseCoordinate("e2")) == chess.W(chess.Pawn) &&
					b.Get(chess.MustParseCoordinate("d8")) == chess.B(chess.Queen) &&
					b.Count() == 32
			},
		},
		{
			name:      "after 1.e4",
			placement: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR",
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.MustParseCoordinate("e4")) == chess.W(chess.Pawn) &&
					b.Get(chess.MustParseCoordinate("e2")).IsEmpty()
			},
		},
		{
			name:      "uppercase is white",
			placement: "k7/8/8/8/8/8/8/7K",
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.Coord(0, 0)) == chess.B(chess.King) &&
					b.Get(chess.Coord(7, 7)) == chess.W(chess.King)
			},
		},
		{
			name:      "surrounding whitespace",
			placement: "  8/8/8/8/8/8/8/8\n",
			checkFn:   func(b *chess.Board) bool { return b.Count() == 0 },
		},
		{name: "empty string", placement: "", wantErr: true},
		{name: "too few ranks", placement: "8/8/8/8/8/8/8", wantErr: true},
		{name: "too many ranks", placement: "8/8/8/8/8/8/8/8/8", wantErr: true},
		{name: "short rank", placement: "7/8/8/8/8/8/8/8", wantErr: true},
		{name: "rank overflow by digit", placement: "44p/8/8/8/8/8/8/8", wantErr: true},
		{name: "rank overflow by piece", placement: "ppppppppp/8/8/8/8/8/8/8", wantErr: true},
		{name: "unknown piece letter", placement: "rnbqkbnx/8/8/8/8/8/8/8", wantErr: true},
		{name: "full FEN is not a placement", placement: StartingPlacement + " w KQkq - 0 1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := ParsePlacement(tt.placement)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePlacement() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !stderrors.Is(err, errors.ErrInvalidPlacement) {
					t.Errorf("error %v does not wrap ErrInvalidPlacement", err)
				}
				return
			}
			if tt.checkFn != nil && !tt.checkFn(board) {
				t.Errorf("ParsePlacement(%q) board check failed", tt.placement)
			}
		})
	}
}

func TestPlacementRoundTrip(t *testing.T) {
	placements := []string{
		StartingPlacement,
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R",
		"8/8/8/8/8/8/8/8",
		"7k/5Q2/6K1/8/8/8/8/8",
	}

	for _, placement := range placements {
		t.Run(placement, func(t *testing.T) {
			board := MustParsePlacement(placement)
			if got := SerializePlacement(board); got != placement {
				t.Errorf("SerializePlacement(ParsePlacement(%q)) = %q", placement, got)
			}
		})
	}
}

func TestNewInitialBoard(t *testing.T) {
	board := NewInitialBoard()
	want := chess.NewBoard()
	want.SetupInitialPosition()
	if *board != *want {
		t.Errorf("NewInitialBoard() = %q, want %q", SerializePlacement(board), SerializePlacement(want))
	}
}

func TestFEN(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		moves     []string
		toMove    chess.Colour
		want      string
	}{
		{
			name:      "initial position",
			placement: StartingPlacement,
			toMove:    chess.White,
			want:      "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		},
		{
			name:      "after 1.e4",
			placement: StartingPlacement,
			moves:     []string{"e2e4"},
			toMove:    chess.Black,
			want:      "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:      "after 1.e4 c5 2.Nf3",
			placement: StartingPlacement,
			moves:     []string{"e2e4", "c7c5", "g1f3"},
			toMove:    chess.Black,
			want:      "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
		},
		{
			name:      "king move loses both rights",
			placement: StartingPlacement,
			moves:     []string{"e2e4", "e7e5", "e1e2"},
			toMove:    chess.Black,
			want:      "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPPKPPP/RNBQ1BNR b kq - 1 2",
		},
		{
			name:      "bare kings",
			placement: "4k3/8/8/8/8/8/8/4K3",
			toMove:    chess.White,
			want:      "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, history := replay(t, tt.placement, tt.moves...)
			if got := FEN(board, tt.toMove, history); got != tt.want {
				t.Errorf("FEN() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHalfmoveClock(t *testing.T) {
	_, history := replay(t, StartingPlacement, "g1f3", "g8f6", "f3g1", "f6g8", "e2e4", "b8c6", "g1f3")
	if got := HalfmoveClock(history); got != 2 {
		t.Errorf("HalfmoveClock() = %d, want 2", got)
	}
}

func TestConvertFENCharToPiece(t *testing.T) {
	tests := []struct {
		c    byte
		want chess.Piece
	}{
		{'K', chess.King}, {'q', chess.Queen}, {'R', chess.Rook},
		{'b', chess.Bishop}, {'N', chess.Knight}, {'p', chess.Pawn},
		{'x', chess.Empty}, {'1', chess.Empty},
	}
	for _, tt := range tests {
		if got := ConvertFENCharToPiece(tt.c); got != tt.want {
			t.Errorf("ConvertFENCharToPiece(%q) = %v, want %v", tt.c, got, tt.want)
		}
	}
}
