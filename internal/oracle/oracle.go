// Package oracle cross-checks the rules engine against independent move
// generators. Each backend receives a FEN string and reports the legal
// moves and check status it finds there.
package oracle

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MoveKey identifies a move by its squares. Promotion choices collapse
// onto one key.
type MoveKey struct {
	From, To chess.Coordinate
}

// String returns the move in coordinate form, e.g. "e2e4".
func (k MoveKey) String() string {
	return k.From.String() + k.To.String()
}

// MoveSet is a set of moves.
type MoveSet map[MoveKey]struct{}

// Add inserts a move.
func (s MoveSet) Add(from, to chess.Coordinate) {
	s[MoveKey{From: from, To: to}] = struct{}{}
}

// Has reports whether the set holds from→to.
func (s MoveSet) Has(from, to chess.Coordinate) bool {
	_, ok := s[MoveKey{From: from, To: to}]
	return ok
}

// FromDestinations builds a set from destinations keyed by origin, the
// form the engine returns.
func FromDestinations(all map[chess.Coordinate][]chess.Coordinate) MoveSet {
	set := make(MoveSet)
	for from, dests := range all {
		for _, to := range dests {
			set.Add(from, to)
		}
	}
	return set
}

// Minus returns the moves of s that are not in other, sorted.
func (s MoveSet) Minus(other MoveSet) []string {
	var out []string
	for k := range s {
		if _, ok := other[k]; !ok {
			out = append(out, k.String())
		}
	}
	sort.Strings(out)
	return out
}

// Sorted returns the moves in coordinate form, sorted.
func (s MoveSet) Sorted() []string {
	keys := maps.Keys(s)
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.String()
	}
	sort.Strings(out)
	return out
}

// Report is what a backend found in a position.
type Report struct {
	Moves   MoveSet
	InCheck bool
}

// Checkmate reports whether the side to move is mated.
func (r Report) Checkmate() bool {
	return r.InCheck && len(r.Moves) == 0
}

// Stalemate reports whether the side to move has no move and is not in check.
func (r Report) Stalemate() bool {
	return !r.InCheck && len(r.Moves) == 0
}

// Oracle is an independent move generator.
type Oracle interface {
	Name() string
	Analyze(fen string) (Report, error)
}

// New returns the backends with the given names, as listed in
// config.KnownOracles.
func New(names ...string) ([]Oracle, error) {
	oracles := make([]Oracle, 0, len(names))
	for _, name := range names {
		switch name {
		case config.OracleDragontooth:
			oracles = append(oracles, Dragontooth{})
		case config.OracleGoose:
			oracles = append(oracles, Goose{})
		default:
			return nil, fmt.Errorf("unknown oracle %q: %w", name, errors.ErrInvalidConfig)
		}
	}
	return oracles, nil
}

// Mismatch describes a disagreement between the engine and a backend.
type Mismatch struct {
	Oracle string
	FEN    string
	// Missing holds moves the backend allows and the engine does not.
	Missing []string
	// Extra holds moves the engine allows and the backend does not.
	Extra []string
	// CheckDiffers is set when the two disagree on whether the side to
	// move is in check.
	CheckDiffers bool
	InCheck      bool
}

// Error describes the disagreement.
func (m *Mismatch) Error() string {
	var parts []string
	if len(m.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(m.Missing, " "))
	}
	if len(m.Extra) > 0 {
		parts = append(parts, "extra "+strings.Join(m.Extra, " "))
	}
	if m.CheckDiffers {
		parts = append(parts, fmt.Sprintf("%s reports check=%v", m.Oracle, m.InCheck))
	}
	return fmt.Sprintf("%s: %s: %s: %v", m.Oracle, m.FEN, strings.Join(parts, "; "), errors.ErrOracleMismatch)
}

// Unwrap returns ErrOracleMismatch.
func (m *Mismatch) Unwrap() error {
	return errors.ErrOracleMismatch
}

// Compare checks the engine's view of a position against a backend report.
// It returns nil when they agree.
func Compare(name, fen string, ours Report, theirs Report) *Mismatch {
	m := &Mismatch{
		Oracle:  name,
		FEN:     fen,
		Missing: theirs.Moves.Minus(ours.Moves),
		Extra:   ours.Moves.Minus(theirs.Moves),
		InCheck: theirs.InCheck,
	}
	m.CheckDiffers = ours.InCheck != theirs.InCheck
	if len(m.Missing) == 0 && len(m.Extra) == 0 && !m.CheckDiffers {
		return nil
	}
	return m
}
