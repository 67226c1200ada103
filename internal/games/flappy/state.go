// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
//
// The simulation is frame-driven: one Tick is one frame, and every constant
// is expressed per tick. Rendering is a separate pass over a Snapshot.
package flappy

import "fmt"

// GameID identifies the game in persistent storage.
const GameID = "flappy"

// SessionState is the phase of a play session.
type SessionState int

const (
	StateStart    SessionState = iota // Bird hovers, waiting for the first flap
	StatePlaying                      // Physics and pipes active
	StateGameOver                     // Frozen until restart
)

// String returns the state name.
func (s SessionState) String() string {
	switch s {
	case StateStart:
		return "START"
	case StatePlaying:
		return "PLAYING"
	case StateGameOver:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("SessionState(%d)", int(s))
	}
}

// EventKind classifies something that happened during a tick.
type EventKind int

const (
	EventSpawned EventKind = iota // A new pipe entered at the right edge
	EventScored                   // The bird cleared a pipe
	EventCrashed                  // The session ended
)

func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventScored:
		return "scored"
	case EventCrashed:
		return "crashed"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// CrashCause says what ended a session.
type CrashCause int

const (
	CauseNone CrashCause = iota
	CauseGround
	CausePipe
)

func (c CrashCause) String() string {
	switch c {
	case CauseGround:
		return "ground"
	case CausePipe:
		return "pipe"
	default:
		return "none"
	}
}

// Event is emitted by Tick. Score is the score after the event.
type Event struct {
	Kind  EventKind
	Cause CrashCause
	Score int
}

// StepResult reports the outcome of a single tick.
type StepResult struct {
	State  SessionState
	Score  int
	Events []Event
}

// Has reports whether an event of the given kind happened in this tick.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
