// Package game runs a single chess game: it accepts move attempts from a
// caller, enforces turn order and the rules of chess, and reports the
// resulting state to observers.
package game

import (
	"fmt"
	"io"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// State is a snapshot of a game. It shares no memory with the game.
type State struct {
	Board      chess.Board
	Turn       chess.Colour
	IsGameOver bool
	// Winner is nil while the game is running and for draws.
	Winner     *chess.Colour
	DrawReason chess.DrawReason
	Moves      []chess.Move
	// PendingPromotion is the square of a pawn awaiting promotion.
	PendingPromotion *chess.Coordinate
}

// MoveOutcome reports the effect of AttemptMove.
type MoveOutcome struct {
	// Applied is false when the attempt was ignored.
	Applied bool
	// PromotionPending is set when the move put a pawn on its last row;
	// ResolvePromotion must be called before play continues.
	PromotionPending bool
}

// Game holds the authoritative state of one game. A Game is not safe for
// concurrent use; see SafeGame.
type Game struct {
	board      *chess.Board
	turn       chess.Colour
	kings      [2]chess.Coordinate
	gameOver   bool
	winner     *chess.Colour
	drawReason chess.DrawReason
	moves      []chess.Move
	positions  *hashing.PositionHistory
	pending    *chess.Coordinate

	startBoard *chess.Board
	startTurn  chess.Colour
	signer     engine.Signer

	observers    []observerEntry
	nextObserver int

	logFile   io.Writer
	verbosity int
}

// New creates a game at the standard starting position with White to move.
func New(opts ...Option) *Game {
	g := newGame(engine.NewInitialBoard(), chess.White, opts)
	g.start()
	return g
}

// NewFromPlacement creates a game from a piece placement with turn to
// move. The placement must hold exactly one king of each colour.
func NewFromPlacement(placement string, turn chess.Colour, opts ...Option) (*Game, error) {
	board, err := engine.ParsePlacement(placement)
	if err != nil {
		return nil, err
	}
	if err := checkKings(board); err != nil {
		return nil, err
	}
	g := newGame(board, turn, opts)
	g.start()
	return g, nil
}

func newGame(board *chess.Board, turn chess.Colour, opts []Option) *Game {
	g := &Game{
		startBoard: board,
		startTurn:  turn,
		signer:     engine.PositionSignature,
		positions:  hashing.NewPositionHistory(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// checkKings verifies there is exactly one king of each colour.
func checkKings(board *chess.Board) error {
	var kings [2]int
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if p := board.Squares[row][col]; p.Piece == chess.King {
				kings[colourIndex(p.Colour)]++
			}
		}
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := kings[colourIndex(colour)]; n != 1 {
			return fmt.Errorf("%d %v kings: %w", n, colour, errors.ErrInvalidPosition)
		}
	}
	return nil
}

// start puts the game at its start position with an empty history. The
// start position counts as its own first occurrence.
func (g *Game) start() {
	g.board = g.startBoard.Copy()
	g.turn = g.startTurn
	g.gameOver = false
	g.winner = nil
	g.drawReason = chess.NoDraw
	g.moves = nil
	g.pending = nil
	g.positions.Reset()
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		g.kings[colourIndex(colour)], _ = g.board.FindKing(colour)
	}
	g.positions.Record(g.signer(g.board, g.turn, g.moves))
}

// Reset returns the game to its start position, clears the history and
// notifies observers.
func (g *Game) Reset() {
	g.start()
	g.logf(2, "game reset\n")
	g.notify(GameReset, nil)
}

// LegalMoves returns the legal destinations of the piece of the given
// colour on from. It returns nil if from does not hold such a piece.
func (g *Game) LegalMoves(colour chess.Colour, from chess.Coordinate) []chess.Coordinate {
	if chess.OutOfBounds(from) {
		return nil
	}
	piece := g.board.Get(from)
	if piece.IsEmpty() || piece.Colour != colour {
		return nil
	}
	return engine.GenerateMoves(g.board, colour, piece.Piece, from, g.kings[colourIndex(colour)], g.moves)
}

// AllLegalMoves returns every legal move of the side to move, keyed by
// origin square. It is empty once the game is over or while a promotion
// is pending.
func (g *Game) AllLegalMoves() map[chess.Coordinate][]chess.Coordinate {
	if g.gameOver || g.pending != nil {
		return map[chess.Coordinate][]chess.Coordinate{}
	}
	return engine.AllLegalMoves(g.board, g.turn, g.kings[colourIndex(g.turn)], g.moves)
}

// AttemptMove plays from→to for the side to move if it is legal. Illegal
// and out-of-turn attempts, and attempts made after the game ended or
// while a promotion is pending, are ignored.
func (g *Game) AttemptMove(from, to chess.Coordinate) MoveOutcome {
	if g.gameOver || g.pending != nil {
		return MoveOutcome{}
	}
	if !slices.Contains(g.LegalMoves(g.turn, from), to) {
		g.logf(2, "ignored %v%v for %v\n", from, to, g.turn)
		return MoveOutcome{}
	}
	return g.commit(from, to)
}

// commit applies a legal move and records it.
func (g *Game) commit(from, to chess.Coordinate) MoveOutcome {
	mover := g.turn
	effects := engine.ApplyMove(g.board, from, to)
	if effects.Moved.Piece == chess.King {
		g.kings[colourIndex(mover)] = to
	}

	g.moves = append(g.moves, effects.Record(from, to))
	last := &g.moves[len(g.moves)-1]

	if effects.ReachedLastRow {
		g.pending = &to
		g.logf(2, "%d. %v%v promotion pending\n", len(g.moves), from, to)
		g.notify(MoveCommitted, last)
		return MoveOutcome{Applied: true, PromotionPending: true}
	}

	g.annotate(last)
	g.logf(2, "%d. %s\n", len(g.moves), last.Notation())
	g.endTurn()
	g.notify(MoveCommitted, last)
	return MoveOutcome{Applied: true}
}

// ResolvePromotion replaces the pawn awaiting promotion on target with
// piece. Empty means Queen. The move is then annotated and the turn ends
// as for any other move.
func (g *Game) ResolvePromotion(target chess.Coordinate, piece chess.Piece) error {
	if g.pending == nil || *g.pending != target {
		return fmt.Errorf("promotion on %v: %w", target, errors.ErrNoPendingPromotion)
	}
	if piece == chess.Empty {
		piece = chess.Queen
	}
	switch piece {
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
	default:
		return fmt.Errorf("promotion to %v: %w", piece, errors.ErrInvalidPromotion)
	}

	engine.Promote(g.board, target, piece)
	g.pending = nil
	last := &g.moves[len(g.moves)-1]
	last.PromotionPiece = piece
	g.annotate(last)
	g.logf(2, "%d. %s\n", len(g.moves), last.Notation())
	g.endTurn()
	g.notify(PromotionResolved, last)
	return nil
}

// annotate sets the check and checkmate flags of the last move, which
// must already be in the history.
func (g *Game) annotate(m *chess.Move) {
	opponent := m.Colour.Opposite()
	kingPos := g.kings[colourIndex(opponent)]
	m.Check = engine.DetectCheck(g.board, opponent, kingPos)
	m.Checkmate = m.Check && !engine.HasLegalMoves(g.board, opponent, kingPos, g.moves)
}

// endTurn decides whether the game is over after the last move and
// otherwise passes the turn.
func (g *Game) endTurn() {
	last := &g.moves[len(g.moves)-1]
	opponent := last.Colour.Opposite()

	if last.Checkmate {
		winner := last.Colour
		g.gameOver = true
		g.winner = &winner
		g.logf(1, "checkmate: %v wins after %d plies\n", winner, len(g.moves))
		return
	}

	reason := engine.ComputeDrawReason(g.board, opponent, g.kings[colourIndex(opponent)], g.moves, g.positions, g.signer)
	if reason != chess.NoDraw {
		g.gameOver = true
		g.drawReason = reason
		g.logf(1, "draw by %v after %d plies\n", reason, len(g.moves))
		return
	}

	g.turn = opponent
	g.positions.Record(g.signer(g.board, g.turn, g.moves))
}

// State returns a snapshot of the game.
func (g *Game) State() State {
	s := State{
		Board:      *g.board,
		Turn:       g.turn,
		IsGameOver: g.gameOver,
		DrawReason: g.drawReason,
		Moves:      slices.Clone(g.moves),
	}
	if g.winner != nil {
		w := *g.winner
		s.Winner = &w
	}
	if g.pending != nil {
		p := *g.pending
		s.PendingPromotion = &p
	}
	return s
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.turn
}

// IsGameOver reports whether the game has ended.
func (g *Game) IsGameOver() bool {
	return g.gameOver
}

// KingPosition returns the square of colour's king.
func (g *Game) KingPosition(colour chess.Colour) chess.Coordinate {
	return g.kings[colourIndex(colour)]
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return engine.DetectCheck(g.board, g.turn, g.kings[colourIndex(g.turn)])
}

// FEN returns the current position as a FEN string.
func (g *Game) FEN() string {
	return engine.FEN(g.board, g.turn, g.moves)
}

// Repetitions returns how often the current position has occurred.
func (g *Game) Repetitions() int {
	return g.positions.Count(g.signer(g.board, g.turn, g.moves))
}

// logf writes to the log when the verbosity is at least level.
func (g *Game) logf(level int, format string, args ...interface{}) {
	if g.logFile == nil || g.verbosity < level {
		return
	}
	fmt.Fprintf(g.logFile, format, args...)
}
