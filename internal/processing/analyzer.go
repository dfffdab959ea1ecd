// Package processing replays move scripts through the rules engine and
// summarises the games they produce.
package processing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	Plies             int
	Captures          int
	Checks            int
	Castles           int
	EnPassant         int
	Promotions        int
	HasUnderpromotion bool

	// Final position
	Repetitions int // Occurrences of the final position, itself included
	Result      string
	DrawReason  chess.DrawReason

	// ResultMatches is false when the script claimed a result the replay
	// did not reach. Scripts without a claimed result always match.
	ResultMatches bool
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.HasUnderpromotion
}

// AnalyzeGame summarises the moves and final state of g. claimed is the
// result a script declared, or "" when it declared none.
func AnalyzeGame(g *game.Game, claimed string) *GameAnalysis {
	s := g.State()
	analysis := &GameAnalysis{
		Plies:       len(s.Moves),
		Repetitions: g.Repetitions(),
		Result:      output.ResultString(s),
		DrawReason:  s.DrawReason,
	}

	for i := range s.Moves {
		m := &s.Moves[i]
		if m.IsCapture() {
			analysis.Captures++
		}
		if m.Check || m.Checkmate {
			analysis.Checks++
		}
		if m.IsCastle() {
			analysis.Castles++
		}
		if m.IsEnPassant {
			analysis.EnPassant++
		}
		if m.IsPromotion() {
			analysis.Promotions++
			if m.PromotionPiece != chess.Queen {
				analysis.HasUnderpromotion = true
			}
		}
	}

	// A game that ended, or stopped for a promotion, has not recorded its
	// final position yet.
	if s.IsGameOver || s.PendingPromotion != nil {
		analysis.Repetitions++
	}

	analysis.ResultMatches = claimed == "" || claimed == "*" || claimed == analysis.Result
	return analysis
}
