package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	sentinels := []error{
		ErrInvalidPlacement,
		ErrInvalidPosition,
		ErrIllegalMove,
		ErrInvalidPiece,
		ErrInvalidPromotion,
		ErrNoPendingPromotion,
		ErrParseFailure,
		ErrInvalidConfig,
		ErrOracleMismatch,
	}

	for _, sentinel := range sentinels {
		t.Run(sentinel.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("outer context: %w", sentinel)
			if !errors.Is(wrapped, sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", sentinel)
			}
		})
	}
}

// TestGameError_Error verifies the error message format
func TestGameError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *GameError
		contains []string
	}{
		{
			name: "full context",
			err: &GameError{
				Err:      ErrIllegalMove,
				GameNum:  5,
				PlyNum:   12,
				MoveText: "e1g1",
				File:     "opening.moves",
				Line:     42,
			},
			contains: []string{"game 5", "ply 12", "e1g1", "opening.moves", "42", "illegal move"},
		},
		{
			name: "minimal context",
			err: &GameError{
				Err:     ErrParseFailure,
				GameNum: 1,
			},
			contains: []string{"game 1", "parse failure"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("GameError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestGameError_As verifies that errors.As works with GameError
func TestGameError_As(t *testing.T) {
	gameErr := &GameError{
		Err:      ErrIllegalMove,
		GameNum:  3,
		PlyNum:   24,
		MoveText: "e8c8",
	}

	wrapped := fmt.Errorf("replay failed: %w", gameErr)

	var extractedErr *GameError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract GameError")
	}
	if extractedErr.PlyNum != 24 {
		t.Errorf("extractedErr.PlyNum = %d, want 24", extractedErr.PlyNum)
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		contains []string
	}{
		{
			name: "script location",
			err: &ParseError{
				Err:      ErrParseFailure,
				File:     "game.moves",
				Line:     7,
				Column:   3,
				Expected: "square",
				Got:      "\"z9\"",
			},
			contains: []string{"game.moves:7:3", "expected square", "z9", "parse failure"},
		},
		{
			name: "placement column only",
			err: &ParseError{
				Err:    ErrInvalidPlacement,
				Column: 12,
				Got:    "'x'",
			},
			contains: []string{"column 12", "unexpected 'x'", "invalid piece placement"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("ParseError.Error() = %q, should contain %q", msg, s)
				}
			}
			if !errors.Is(tt.err, tt.err.Err) {
				t.Errorf("errors.Is(parseErr, %v) = false, want true", tt.err.Err)
			}
		})
	}
}

// TestWrap verifies the Wrap helpers
func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	wrapped := Wrapf(ErrInvalidPlacement, "rank %d", 3)
	if !errors.Is(wrapped, ErrInvalidPlacement) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "rank 3") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
