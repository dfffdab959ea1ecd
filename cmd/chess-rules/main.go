// chess-rules replays chess move scripts through a rules engine, printing
// the games they produce and optionally checking every position against
// independent move generators.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)

	if *perftDepth > 0 {
		if err := runPerft(cfg, *perftDepth, *perftDivide, cfg.OutputFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	replayer, err := processing.NewReplayer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	writer := output.NewWriter(cfg.OutputFile, cfg.Output, *jsonLines)
	stats := processAllInputs(flag.Args(), replayer, cfg, writer)
	if err := writer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	// Report statistics
	if cfg.Verbosity > 0 {
		reportStatistics(cfg.LogFile, stats, replayer.Verifying())
	}
	if stats.failed > 0 || stats.parseErrors > 0 {
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
}

// processAllInputs replays the scripts of every input file, or of stdin
// when there are none.
func processAllInputs(args []string, replayer *processing.Replayer, cfg *config.Config, w output.GameWriter) *runStats {
	stats := &runStats{}

	if len(args) == 0 {
		scripts := readScripts(os.Stdin, "stdin", cfg, stats)
		replayScripts(scripts, replayer, cfg, w, stats)
		return stats
	}

	for _, filename := range args {
		if stats.stopped {
			break
		}

		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", filename, err)
			stats.parseErrors++
			continue
		}

		scripts := readScripts(file, filename, cfg, stats)
		file.Close() //nolint:errcheck,gosec // G104: read-only file
		replayScripts(scripts, replayer, cfg, w, stats)
	}

	return stats
}

// reportStatistics prints the final statistics to w.
func reportStatistics(w io.Writer, stats *runStats, verified bool) {
	fmt.Fprintf(w, "%d game(s) output, %d duplicate(s), %d failed out of %d.\n",
		stats.output, stats.duplicates, stats.failed, stats.scripts)
	if stats.parseErrors > 0 {
		fmt.Fprintf(w, "%d script(s) could not be read.\n", stats.parseErrors)
	}
	if verified && stats.stopped {
		fmt.Fprintf(w, "Stopped at the first oracle mismatch.\n")
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options] [script-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess move scripts and prints the resulting games.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nScript format:\n")
	fmt.Fprintf(os.Stderr, "  [Name \"...\"]        optional tags; Placement, FEN and Turn set the start\n")
	fmt.Fprintf(os.Stderr, "  1. e2e4 e7e5 2. ...  coordinate moves, promotion as e7e8q or e7e8=Q\n")
	fmt.Fprintf(os.Stderr, "  1-0                  optional result ending the script\n")
}
