package game

import (
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// SafeGame wraps Game with mutex protection for concurrent access.
// Observers run while the lock is held and must not call back into the
// SafeGame; the Event they receive carries a full State snapshot.
type SafeGame struct {
	game *Game
	mu   sync.RWMutex
}

// NewSafeGame wraps g. g must not be used directly afterwards.
func NewSafeGame(g *Game) *SafeGame {
	return &SafeGame{game: g}
}

// LegalMoves returns the legal destinations of colour's piece on from.
func (s *SafeGame) LegalMoves(colour chess.Colour, from chess.Coordinate) []chess.Coordinate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.LegalMoves(colour, from)
}

// AttemptMove atomically validates and plays a move.
func (s *SafeGame) AttemptMove(from, to chess.Coordinate) MoveOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.AttemptMove(from, to)
}

// ResolvePromotion atomically completes a pending promotion.
func (s *SafeGame) ResolvePromotion(target chess.Coordinate, piece chess.Piece) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.ResolvePromotion(target, piece)
}

// State returns a snapshot of the game.
func (s *SafeGame) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.State()
}

// Reset returns the game to its start position.
func (s *SafeGame) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Reset()
}

// Subscribe registers an observer.
func (s *SafeGame) Subscribe(o Observer) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	unsub := s.game.Subscribe(o)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		unsub()
	}
}

// FEN returns the current position as a FEN string.
func (s *SafeGame) FEN() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.FEN()
}
