package game

import "github.com/lgbarn/chess-rules-go/internal/chess"

// EventKind identifies what changed in a game.
type EventKind int

const (
	MoveCommitted EventKind = iota
	PromotionResolved
	GameReset
)

// String returns the name of the event kind.
func (k EventKind) String() string {
	switch k {
	case MoveCommitted:
		return "MoveCommitted"
	case PromotionResolved:
		return "PromotionResolved"
	case GameReset:
		return "GameReset"
	default:
		return "Unknown"
	}
}

// Event describes a change to a game. State is a snapshot taken after the
// change; Move is the affected move (nil for a reset).
type Event struct {
	Kind  EventKind
	Move  *chess.Move
	State State
}

// Observer is notified of every change to a game. Observers are called
// synchronously and must not modify the game they observe.
type Observer interface {
	GameChanged(ev Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ev Event)

// GameChanged calls f(ev).
func (f ObserverFunc) GameChanged(ev Event) {
	f(ev)
}

// Subscribe registers o and returns a function that unregisters it.
func (g *Game) Subscribe(o Observer) (unsubscribe func()) {
	id := g.nextObserver
	g.nextObserver++
	g.observers = append(g.observers, observerEntry{id: id, observer: o})
	return func() {
		for i, e := range g.observers {
			if e.id == id {
				g.observers = append(g.observers[:i:i], g.observers[i+1:]...)
				return
			}
		}
	}
}

type observerEntry struct {
	id       int
	observer Observer
}

// notify sends an event to every observer.
func (g *Game) notify(kind EventKind, move *chess.Move) {
	if len(g.observers) == 0 {
		return
	}
	ev := Event{Kind: kind, State: g.State()}
	if move != nil {
		m := *move
		ev.Move = &m
	}
	for _, e := range g.observers {
		e.observer.GameChanged(ev)
	}
}
