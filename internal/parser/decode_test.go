package parser

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		text      string
		from, to  string
		promotion chess.Piece
	}{
		{"e2e4", "e2", "e4", chess.Empty},
		{"E2E4", "e2", "e4", chess.Empty},
		{"e2-e4", "e2", "e4", chess.Empty},
		{"d5xe6", "d5", "e6", chess.Empty},
		{"d5:e6", "d5", "e6", chess.Empty},
		{"g1f3+", "g1", "f3", chess.Empty},
		{"h5f7#", "h5", "f7", chess.Empty},
		{"e2e4!?", "e2", "e4", chess.Empty},
		{"e7e8q", "e7", "e8", chess.Queen},
		{"e7e8=Q", "e7", "e8", chess.Queen},
		{"a2a1n", "a2", "a1", chess.Knight},
		{"b7a8R+", "b7", "a8", chess.Rook},
		{"c7c8b", "c7", "c8", chess.Bishop},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			m, err := ParseMove(tt.text)
			if err != nil {
				t.Fatalf("ParseMove(%q) error: %v", tt.text, err)
			}
			if m.From != chess.MustParseCoordinate(tt.from) || m.To != chess.MustParseCoordinate(tt.to) {
				t.Errorf("ParseMove(%q) = %v%v, want %s%s", tt.text, m.From, m.To, tt.from, tt.to)
			}
			if m.Promotion != tt.promotion {
				t.Errorf("ParseMove(%q).Promotion = %v, want %v", tt.text, m.Promotion, tt.promotion)
			}
			if m.Text != tt.text {
				t.Errorf("Text = %q, want %q", m.Text, tt.text)
			}
		})
	}
}

func TestParseMoveErrors(t *testing.T) {
	for _, text := range []string{
		"", "e2", "e2e", "e4", "Nf3", "O-O", "i2i4", "e0e4", "e2e9",
		"e7e8k", "e7e8=", "e7e8qq", "e2e2", "e2--e4",
	} {
		t.Run(text, func(t *testing.T) {
			if _, err := ParseMove(text); !stderrors.Is(err, errors.ErrParseFailure) {
				t.Errorf("ParseMove(%q) error = %v, want ErrParseFailure", text, err)
			}
		})
	}
}

func TestScriptMoveString(t *testing.T) {
	m, _ := ParseMove("e7-e8=N")
	if got := m.String(); got != "e7e8n" {
		t.Errorf("String() = %q, want e7e8n", got)
	}
}

func TestParseColour(t *testing.T) {
	tests := []struct {
		in      string
		want    chess.Colour
		wantErr bool
	}{
		{"w", chess.White, false},
		{"White", chess.White, false},
		{" b ", chess.Black, false},
		{"BLACK", chess.Black, false},
		{"red", chess.White, true},
		{"", chess.White, true},
	}
	for _, tt := range tests {
		got, err := ParseColour(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseColour(%q) = %v, %v; want %v, wantErr %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}
