// Package output renders replayed games as text or JSON.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// Record is one replayed game ready to be written.
type Record struct {
	Name string
	Tags map[string]string
	// StartFEN is empty when the game began from the standard position.
	StartFEN   string
	State      game.State
	FEN        string
	LegalMoves map[chess.Coordinate][]chess.Coordinate
	// Err is the error that stopped the replay, if any.
	Err error
}

// NewRecord snapshots g. startFEN is empty for the standard position.
func NewRecord(name string, tags map[string]string, startFEN string, g *game.Game) *Record {
	return &Record{
		Name:       name,
		Tags:       tags,
		StartFEN:   startFEN,
		State:      g.State(),
		FEN:        g.FEN(),
		LegalMoves: g.AllLegalMoves(),
	}
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer. A maxLineLength of zero
// disables wrapping.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.maxLineLength > 0 && o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// ResultString returns the result of s in the usual notation: "1-0",
// "0-1", "1/2-1/2", or "*" while the game is running.
func ResultString(s game.State) string {
	switch {
	case !s.IsGameOver:
		return "*"
	case s.Winner == nil:
		return "1/2-1/2"
	case *s.Winner == chess.White:
		return "1-0"
	default:
		return "0-1"
	}
}

// Termination describes how a finished game ended.
func Termination(s game.State) string {
	switch {
	case !s.IsGameOver:
		return ""
	case s.Winner != nil:
		return "Checkmate"
	default:
		return s.DrawReason.String()
	}
}

// FormatMove renders m in the configured notation.
func FormatMove(m *chess.Move, notation config.MoveNotation, keepChecks bool) string {
	if notation == config.UCI {
		return m.UCI()
	}
	text := m.Notation()
	if !keepChecks {
		text = strings.TrimRight(text, "+#")
	}
	return text
}

// WriteMoves writes the move list followed by result, wrapping lines.
func WriteMoves(w io.Writer, moves []chess.Move, result string, cfg *config.OutputConfig) {
	ow := NewOutputWriter(w, int(cfg.MaxLineLength))
	moveNumber := 1
	for i := range moves {
		m := &moves[i]
		if cfg.KeepMoveNumbers {
			switch {
			case m.Colour == chess.White:
				ow.Write(fmt.Sprintf("%d.", moveNumber))
			case i == 0:
				ow.Write(fmt.Sprintf("%d...", moveNumber))
			}
		}
		ow.Write(FormatMove(m, cfg.Notation, cfg.KeepChecks))
		if m.Colour == chess.Black {
			moveNumber++
		}
	}
	ow.Write(result)
	ow.NewLine()
}

// MoveListText returns the move list and result as one string.
func MoveListText(moves []chess.Move, result string, cfg *config.OutputConfig) string {
	var sb strings.Builder
	WriteMoves(&sb, moves, result, cfg)
	return strings.TrimSuffix(sb.String(), "\n")
}

// BoardText draws board with rank 8 at the top. Empty squares are dots.
func BoardText(board *chess.Board) string {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		sb.WriteByte(byte('8' - row))
		for col := 0; col < chess.BoardSize; col++ {
			sb.WriteByte(' ')
			cp := board.Get(chess.Coord(row, col))
			if cp.IsEmpty() {
				sb.WriteByte('.')
				continue
			}
			sb.WriteByte(engine.ColouredPieceToFENLetter(cp))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// LegalMovesText lists legal moves by origin, e.g. "b1: a3 c3".
func LegalMovesText(all map[chess.Coordinate][]chess.Coordinate) string {
	lines := make([]string, 0, len(all))
	for from, dests := range all {
		if len(dests) == 0 {
			continue
		}
		names := make([]string, len(dests))
		for i, to := range dests {
			names[i] = to.String()
		}
		sort.Strings(names)
		lines = append(lines, from.String()+": "+strings.Join(names, " "))
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

// OutputRecord writes rec as text: tags, a blank line, the move list, and
// the optional board, FEN and legal move sections.
func OutputRecord(w io.Writer, rec *Record, cfg *config.OutputConfig) {
	outputTags(w, rec)
	fmt.Fprintln(w)

	WriteMoves(w, rec.State.Moves, ResultString(rec.State), cfg)

	if rec.Err != nil {
		fmt.Fprintf(w, "{Error: %v}\n", rec.Err)
	}
	if cfg.ShowBoard {
		fmt.Fprintln(w)
		fmt.Fprint(w, BoardText(&rec.State.Board))
	}
	if cfg.ShowFEN {
		fmt.Fprintf(w, "FEN: %s\n", rec.FEN)
	}
	if cfg.ShowLegalMoves && !rec.State.IsGameOver {
		if text := LegalMovesText(rec.LegalMoves); text != "" {
			fmt.Fprintln(w, text)
		}
	}
	fmt.Fprintln(w)
}

// outputTags writes Name, Result and Termination first, then the
// remaining script tags in name order.
func outputTags(w io.Writer, rec *Record) {
	if rec.Name != "" {
		writeTag(w, "Name", rec.Name)
	}
	writeTag(w, "Result", ResultString(rec.State))
	if t := Termination(rec.State); t != "" {
		writeTag(w, "Termination", t)
	}
	if rec.StartFEN != "" {
		writeTag(w, "FEN", rec.StartFEN)
	}

	names := make([]string, 0, len(rec.Tags))
	for name := range rec.Tags {
		switch name {
		case "Name", "Event", "Result", "Termination", "FEN", "Placement", "Turn", "ToMove":
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		writeTag(w, name, rec.Tags[name])
	}
}

func writeTag(w io.Writer, name, value string) {
	fmt.Fprintf(w, "[%s \"%s\"]\n", name, escapeTagValue(value))
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 4)
	for _, c := range s {
		if c == '"' || c == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteRune(c)
	}
	return sb.String()
}
