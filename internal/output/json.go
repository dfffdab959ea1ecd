package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// JSONGame represents a replayed game in JSON format.
type JSONGame struct {
	Name        string              `json:"name,omitempty"`
	Tags        map[string]string   `json:"tags,omitempty"`
	InitialFEN  string              `json:"initialFEN,omitempty"`
	Moves       []JSONMove          `json:"moves"`
	PlyCount    int                 `json:"plyCount"`
	Result      string              `json:"result"`
	Termination string              `json:"termination,omitempty"`
	Winner      string              `json:"winner,omitempty"`
	Turn        string              `json:"turn"`
	InCheck     bool                `json:"inCheck,omitempty"`
	Pending     string              `json:"pendingPromotion,omitempty"`
	FinalFEN    string              `json:"finalFEN,omitempty"`
	Board       []string            `json:"board,omitempty"`
	LegalMoves  map[string][]string `json:"legalMoves,omitempty"`
	Error       string              `json:"error,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Capture    bool   `json:"capture,omitempty"`
	EnPassant  bool   `json:"enPassant,omitempty"`
	Castle     string `json:"castle,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Check      bool   `json:"check,omitempty"`
	Checkmate  bool   `json:"checkmate,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputRecordJSON writes a single record as an indented JSON object.
func OutputRecordJSON(w io.Writer, rec *Record, cfg *config.OutputConfig) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(RecordToJSON(rec, cfg))
}

// RecordToJSON converts a record to JSON form. The board, FEN and legal
// move fields follow the Show settings of cfg.
func RecordToJSON(rec *Record, cfg *config.OutputConfig) *JSONGame {
	s := rec.State
	jg := &JSONGame{
		Name:        rec.Name,
		Tags:        rec.Tags,
		InitialFEN:  rec.StartFEN,
		Moves:       convertMoves(s.Moves),
		PlyCount:    len(s.Moves),
		Result:      ResultString(s),
		Termination: Termination(s),
		Turn:        colorName(s.Turn),
	}
	if s.Winner != nil {
		jg.Winner = colorName(*s.Winner)
	}
	if n := len(s.Moves); n > 0 && !s.IsGameOver {
		jg.InCheck = s.Moves[n-1].Check
	}
	if s.PendingPromotion != nil {
		jg.Pending = s.PendingPromotion.String()
	}
	if rec.Err != nil {
		jg.Error = rec.Err.Error()
	}

	if cfg.ShowFEN {
		jg.FinalFEN = rec.FEN
	}
	if cfg.ShowBoard {
		jg.Board = strings.Split(strings.TrimSuffix(BoardText(&s.Board), "\n"), "\n")
	}
	if cfg.ShowLegalMoves && !s.IsGameOver {
		jg.LegalMoves = convertLegalMoves(rec.LegalMoves)
	}
	return jg
}

func convertMoves(moves []chess.Move) []JSONMove {
	result := make([]JSONMove, 0, len(moves))
	moveNumber := 1
	for i := range moves {
		m := &moves[i]
		jm := JSONMove{
			MoveNumber: moveNumber,
			Color:      colorName(m.Colour),
			SAN:        m.Notation(),
			UCI:        m.UCI(),
			From:       m.From.String(),
			To:         m.To.String(),
			Piece:      pieceTypeName(m.Piece),
			Capture:    m.Capture,
			EnPassant:  m.IsEnPassant,
			Check:      m.Check,
			Checkmate:  m.Checkmate,
		}
		switch {
		case m.KingSideCastle:
			jm.Castle = "kingside"
		case m.QueenSideCastle:
			jm.Castle = "queenside"
		}
		if m.IsPromotion() {
			jm.Promotion = pieceTypeName(m.PromotionPiece)
		}
		result = append(result, jm)
		if m.Colour == chess.Black {
			moveNumber++
		}
	}
	return result
}

func convertLegalMoves(all map[chess.Coordinate][]chess.Coordinate) map[string][]string {
	result := make(map[string][]string, len(all))
	for from, dests := range all {
		if len(dests) == 0 {
			continue
		}
		names := make([]string, len(dests))
		for i, to := range dests {
			names[i] = to.String()
		}
		result[from.String()] = names
	}
	return result
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// pieceTypeName returns the piece type as a string.
func pieceTypeName(p chess.Piece) string {
	switch p {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	default:
		return ""
	}
}
