package main

import (
	"bytes"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/processing"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestProcessAllInputs(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)
	replayer, err := processing.NewReplayer(cfg)
	testutil.AssertNoError(t, err)

	w := output.NewWriter(&out, cfg.Output, false)
	stats := processAllInputs([]string{testdataPath("games.txt"), testdataPath("errors.txt")}, replayer, cfg, w)
	testutil.AssertNoError(t, w.Close())

	assertStats(t, stats, runStats{scripts: 6, output: 6, failed: 1, parseErrors: 1})
	testutil.AssertContains(t, out.String(), `[Name "Opening"]`)
}

func TestProcessAllInputsMissingFile(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)
	replayer, err := processing.NewReplayer(cfg)
	testutil.AssertNoError(t, err)

	stats := processAllInputs([]string{testdataPath("no-such-file.txt")}, replayer, cfg, output.NewWriter(&out, cfg.Output, false))
	testutil.AssertEqual(t, stats.parseErrors, 1)
	testutil.AssertEqual(t, stats.scripts, 0)
}

func TestReportStatistics(t *testing.T) {
	tests := []struct {
		name     string
		stats    runStats
		verified bool
		want     string
	}{
		{
			name:  "clean run",
			stats: runStats{scripts: 3, output: 3},
			want:  "3 game(s) output, 0 duplicate(s), 0 failed out of 3.\n",
		},
		{
			name:  "parse errors",
			stats: runStats{scripts: 2, output: 1, failed: 1, parseErrors: 2},
			want:  "1 game(s) output, 0 duplicate(s), 1 failed out of 2.\n2 script(s) could not be read.\n",
		},
		{
			name:     "stopped",
			stats:    runStats{scripts: 1, failed: 1, stopped: true},
			verified: true,
			want:     "0 game(s) output, 0 duplicate(s), 1 failed out of 1.\nStopped at the first oracle mismatch.\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reportStatistics(&buf, &tt.stats, tt.verified)
			testutil.AssertEqual(t, buf.String(), tt.want)
		})
	}
}
