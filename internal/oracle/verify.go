package oracle

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// Verifier checks positions against a fixed set of backends. It holds no
// mutable state and may be shared between goroutines.
type Verifier struct {
	oracles []Oracle
}

// NewVerifier creates a verifier consulting oracles in order.
func NewVerifier(oracles ...Oracle) *Verifier {
	return &Verifier{oracles: oracles}
}

// FromConfig creates a verifier for the oracles named in cfg. It returns
// nil when verification is disabled.
func FromConfig(cfg *config.VerifyConfig) (*Verifier, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}
	oracles, err := New(cfg.Oracles...)
	if err != nil {
		return nil, err
	}
	return NewVerifier(oracles...), nil
}

// Oracles returns the names of the backends consulted.
func (v *Verifier) Oracles() []string {
	names := make([]string, len(v.oracles))
	for i, o := range v.oracles {
		names[i] = o.Name()
	}
	return names
}

// VerifyPosition compares the engine's legal moves and check status for
// toMove with every backend. It returns the first *Mismatch found, or an
// error from a backend that rejected the position.
func (v *Verifier) VerifyPosition(board *chess.Board, toMove chess.Colour, history []chess.Move) error {
	kingPos, ok := board.FindKing(toMove)
	if !ok {
		return fmt.Errorf("no %v king: %w", toMove, errors.ErrInvalidPosition)
	}
	ours := Report{
		Moves:   FromDestinations(engine.AllLegalMoves(board, toMove, kingPos, history)),
		InCheck: engine.DetectCheck(board, toMove, kingPos),
	}
	fen := engine.FEN(board, toMove, history)

	for _, o := range v.oracles {
		theirs, err := o.Analyze(fen)
		if err != nil {
			return err
		}
		if m := Compare(o.Name(), fen, ours, theirs); m != nil {
			return m
		}
	}
	return nil
}

// VerifyGame checks the current position of g. Once the game is over the
// position is checked from the point of view of the side that would move
// next, so checkmate and stalemate verdicts are compared too. Positions
// with a pending promotion are skipped.
func (v *Verifier) VerifyGame(g *game.Game) error {
	s := g.State()
	if s.PendingPromotion != nil {
		return nil
	}
	toMove := s.Turn
	if s.IsGameOver && len(s.Moves) > 0 {
		toMove = s.Moves[len(s.Moves)-1].Colour.Opposite()
	}
	return v.VerifyPosition(&s.Board, toMove, s.Moves)
}

// PerftMismatch describes root moves whose perft counts differ.
type PerftMismatch struct {
	FEN   string
	Depth int
	// Counts maps a move to the engine's and the backend's count. A move
	// one side does not generate has a zero count there.
	Counts map[string][2]uint64
}

// Error lists the differing moves.
func (m *PerftMismatch) Error() string {
	moves := make([]string, 0, len(m.Counts))
	for mv := range m.Counts {
		moves = append(moves, mv)
	}
	sort.Strings(moves)
	parts := make([]string, len(moves))
	for i, mv := range moves {
		c := m.Counts[mv]
		parts[i] = fmt.Sprintf("%s %d/%d", mv, c[0], c[1])
	}
	return fmt.Sprintf("perft %d: %s: %s: %v", m.Depth, m.FEN, strings.Join(parts, ", "), errors.ErrOracleMismatch)
}

// Unwrap returns ErrOracleMismatch.
func (m *PerftMismatch) Unwrap() error {
	return errors.ErrOracleMismatch
}

// CheckPerft compares the engine's perft divide with the goose backend's
// and returns the total node count when they agree.
func CheckPerft(board *chess.Board, toMove chess.Colour, history []chess.Move, depth int) (uint64, error) {
	fen := engine.FEN(board, toMove, history)
	theirs, err := Goose{}.PerftDivide(fen, depth)
	if err != nil {
		return 0, err
	}
	ours := engine.PerftDivide(board, toMove, history, depth)

	mismatch := &PerftMismatch{FEN: fen, Depth: depth, Counts: make(map[string][2]uint64)}
	var total uint64
	for mv, n := range ours {
		total += n
		if theirs[mv] != n {
			mismatch.Counts[mv] = [2]uint64{n, theirs[mv]}
		}
	}
	for mv, n := range theirs {
		if _, ok := ours[mv]; !ok {
			mismatch.Counts[mv] = [2]uint64{0, n}
		}
	}
	if len(mismatch.Counts) > 0 {
		return total, mismatch
	}
	return total, nil
}
