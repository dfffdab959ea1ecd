package processing

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/oracle"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/parser"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Replayer plays move scripts through fresh games. It may be shared by
// the workers of a pool: every script gets its own game.
type Replayer struct {
	cfg        *config.Config
	verifier   *oracle.Verifier
	duplicates *hashing.ThreadSafeDuplicateDetector
}

// NewReplayer creates a replayer for cfg. Verification and duplicate
// detection are set up when cfg enables them.
func NewReplayer(cfg *config.Config) (*Replayer, error) {
	verifier, err := oracle.FromConfig(cfg.Verify)
	if err != nil {
		return nil, err
	}
	r := &Replayer{cfg: cfg, verifier: verifier}
	if cfg.Duplicate.Suppress {
		r.duplicates = hashing.NewThreadSafeDuplicateDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.MaxCapacity)
	}
	return r, nil
}

// ReplayScript plays every move of script. gameNum is the 1-based number
// used in error messages.
//
// The record is returned even when replay stops early; it then holds the
// position reached and the error. Errors are *errors.GameError values
// wrapping ErrIllegalMove, ErrInvalidPromotion, ErrInvalidPosition or
// ErrOracleMismatch.
func (r *Replayer) ReplayScript(script *parser.Script, gameNum int) (*output.Record, *GameAnalysis, error) {
	placement, turn := r.startOf(script)
	g, err := r.newGame(script, placement, turn)
	if err != nil {
		return nil, nil, &errors.GameError{Err: err, GameNum: gameNum, File: script.File, Line: script.Line}
	}

	startFEN := ""
	if placement != engine.StartingPlacement || turn != chess.White {
		startFEN = g.FEN()
	}
	finish := func(err error) (*output.Record, *GameAnalysis, error) {
		rec := output.NewRecord(script.Name, script.Tags, startFEN, g)
		analysis := AnalyzeGame(g, script.Result)
		if err != nil {
			rec.Err = err
			r.logf(1, "%v\n", err)
			return rec, analysis, err
		}
		if !analysis.ResultMatches {
			r.logf(1, "%s:%d: game %d: script claims %s, replay reached %s\n",
				script.File, script.Line, gameNum, script.Result, analysis.Result)
		}
		return rec, analysis, nil
	}

	if err := r.verify(g); err != nil {
		return finish(&errors.GameError{Err: err, GameNum: gameNum, File: script.File, Line: script.Line})
	}
	for i, m := range script.Moves {
		err := r.play(g, m)
		if err == nil {
			err = r.verify(g)
		}
		if err != nil {
			return finish(&errors.GameError{
				Err:      err,
				GameNum:  gameNum,
				PlyNum:   i + 1,
				MoveText: m.Text,
				File:     script.File,
				Line:     m.Line,
			})
		}
	}
	return finish(nil)
}

// startOf returns the placement and side to move script starts from.
// Scripts without a placement use the configured start.
func (r *Replayer) startOf(script *parser.Script) (string, chess.Colour) {
	if script.Placement != "" {
		return script.Placement, script.Turn
	}
	return r.cfg.Rules.StartPlacement, r.cfg.Rules.StartTurn
}

func (r *Replayer) newGame(script *parser.Script, placement string, turn chess.Colour) (*game.Game, error) {
	if script.Placement == "" {
		return game.FromConfig(r.cfg)
	}
	return game.NewFromPlacement(placement, turn,
		game.WithRules(r.cfg.Rules), game.WithLog(r.cfg.LogFile, r.cfg.Verbosity))
}

// play applies one scripted move, resolving a promotion it causes.
func (r *Replayer) play(g *game.Game, m parser.ScriptMove) error {
	if g.IsGameOver() {
		return fmt.Errorf("game is already over: %w", errors.ErrIllegalMove)
	}
	outcome := g.AttemptMove(m.From, m.To)
	if !outcome.Applied {
		return fmt.Errorf("not legal for %v: %w", g.Turn(), errors.ErrIllegalMove)
	}
	if !outcome.PromotionPending {
		if m.Promotion != chess.Empty {
			return fmt.Errorf("%v named for a move that does not promote: %w", m.Promotion, errors.ErrInvalidPromotion)
		}
		return nil
	}

	piece := m.Promotion
	if piece == chess.Empty {
		piece = r.cfg.Rules.DefaultPromotion
	}
	return g.ResolvePromotion(m.To, piece)
}

func (r *Replayer) verify(g *game.Game) error {
	if r.verifier == nil {
		return nil
	}
	return r.verifier.VerifyGame(g)
}

// Process replays the script of item. It has the worker.ProcessFunc
// signature.
func (r *Replayer) Process(item worker.WorkItem) worker.ProcessResult {
	rec, _, err := r.ReplayScript(item.Script, item.Index+1)
	return worker.ProcessResult{
		Script: item.Script,
		Index:  item.Index,
		Record: rec,
		Error:  err,
	}
}

// IsDuplicate reports whether rec ends in a position an earlier record
// ended in. It is always false when duplicate suppression is off.
// Callers that want the first occurrence kept must call it in input order.
func (r *Replayer) IsDuplicate(rec *output.Record) bool {
	if r.duplicates == nil || rec == nil {
		return false
	}
	s := &rec.State
	return r.duplicates.CheckAndAdd(&s.Board, s.Turn, len(s.Moves))
}

// DuplicateCount returns the number of duplicates found so far.
func (r *Replayer) DuplicateCount() int {
	if r.duplicates == nil {
		return 0
	}
	return r.duplicates.DuplicateCount()
}

// Verifying reports whether positions are checked against oracles.
func (r *Replayer) Verifying() bool {
	return r.verifier != nil
}

// logf writes to the log when the verbosity is at least level.
func (r *Replayer) logf(level int, format string, args ...interface{}) {
	if r.cfg.LogFile == nil || r.cfg.Verbosity < level {
		return
	}
	fmt.Fprintf(r.cfg.LogFile, format, args...)
}
