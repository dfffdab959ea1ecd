package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"runtime"
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/oracle"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/parser"
	"github.com/lgbarn/chess-rules-go/internal/processing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// runStats counts what happened to the scripts of a run.
type runStats struct {
	scripts     int
	output      int
	duplicates  int
	failed      int
	parseErrors int
	stopped     bool
}

// readScripts parses every script in r. Scripts that fail to parse are
// reported to the log and skipped.
func readScripts(r io.Reader, name string, cfg *config.Config, stats *runStats) []*parser.Script {
	p := parser.NewParser(r, name)
	var scripts []*parser.Script
	for {
		script, err := p.Next()
		if err == io.EOF {
			return scripts
		}
		if err != nil {
			stats.parseErrors++
			if cfg.Verbosity > 0 {
				fmt.Fprintf(cfg.LogFile, "%v\n", err)
			}
			continue
		}
		scripts = append(scripts, script)
	}
}

// replayScripts replays scripts on a worker pool and hands the results to
// w in input order.
func replayScripts(scripts []*parser.Script, replayer *processing.Replayer, cfg *config.Config, w output.GameWriter, stats *runStats) {
	if len(scripts) == 0 || stats.stopped {
		return
	}

	numWorkers := cfg.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	bufferSize := len(scripts)
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPool(numWorkers, bufferSize, replayer.Process)
	pool.Start()

	go func() {
		for i, script := range scripts {
			if pool.IsStopped() {
				break
			}
			pool.Submit(worker.WorkItem{Script: script, Index: i})
		}
		pool.Close()
	}()

	worker.InOrder(pool.Results(), func(result worker.ProcessResult) {
		if stats.stopped {
			return
		}
		handleResult(result, replayer, cfg, w, stats)
		if stats.stopped {
			pool.Stop()
		}
	})
}

// handleResult writes one replay result unless it is a duplicate.
func handleResult(result worker.ProcessResult, replayer *processing.Replayer, cfg *config.Config, w output.GameWriter, stats *runStats) {
	stats.scripts++
	if result.Error != nil {
		stats.failed++
		if cfg.Verify.StopOnMismatch && stderrors.Is(result.Error, errors.ErrOracleMismatch) {
			stats.stopped = true
		}
	}
	if result.Record == nil {
		return
	}

	if replayer.IsDuplicate(result.Record) {
		stats.duplicates++
		outputDuplicate(result, cfg)
		return
	}
	if *reportOnly {
		return
	}
	if err := w.WriteGame(result.Record); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error writing game %d: %v\n", result.Index+1, err)
		return
	}
	stats.output++
}

// outputDuplicate names a suppressed game in the duplicate file.
func outputDuplicate(result worker.ProcessResult, cfg *config.Config) {
	if cfg.Duplicate.DuplicateFile == nil {
		return
	}
	name := result.Script.Name
	if name == "" {
		name = fmt.Sprintf("game %d", result.Index+1)
	}
	fmt.Fprintf(cfg.Duplicate.DuplicateFile, "%s:%d: %s\n", result.Script.File, result.Script.Line, name)
}

// runPerft counts leaf nodes from the configured start position, checks
// the count against the goose move generator and writes it to w.
func runPerft(cfg *config.Config, depth int, divide bool, w io.Writer) error {
	board, err := engine.ParsePlacement(cfg.Rules.StartPlacement)
	if err != nil {
		return err
	}
	turn := cfg.Rules.StartTurn

	if divide {
		counts := engine.PerftDivide(board, turn, nil, depth)
		moves := make([]string, 0, len(counts))
		for mv := range counts {
			moves = append(moves, mv)
		}
		sort.Strings(moves)
		for _, mv := range moves {
			fmt.Fprintf(w, "%s: %d\n", mv, counts[mv])
		}
	}

	total, err := oracle.CheckPerft(board, turn, nil, depth)
	fmt.Fprintf(w, "perft(%d) = %d\n", depth, total)
	return err
}
