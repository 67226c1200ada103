package flappy

import "fmt"

// ScoreObserver is told about finished or improving scores.
// highscore.Tracker satisfies it.
type ScoreObserver interface {
	Observe(score int) bool
	Best() int
}

// Session glues a Simulation to a high-score observer and enforces the
// rules the frontends share: restart only from GAME_OVER, and the best
// score is recorded whenever it is beaten or a session ends.
type Session struct {
	sim  *Simulation
	best ScoreObserver
}

// NewSession wraps sim. best may be nil.
func NewSession(sim *Simulation, best ScoreObserver) *Session {
	return &Session{sim: sim, best: best}
}

// Simulation returns the wrapped simulation.
func (s *Session) Simulation() *Simulation {
	return s.sim
}

// Tick advances one frame and forwards new scores to the observer.
func (s *Session) Tick() StepResult {
	res := s.sim.Tick()
	if s.best != nil && (res.Has(EventScored) || res.Has(EventCrashed)) {
		s.best.Observe(res.Score)
	}
	return res
}

// Flap forwards a flap intent.
func (s *Session) Flap() bool {
	return s.sim.Flap()
}

// Restart starts a new session. Only valid in GAME_OVER; the finished
// score is recorded before the reset.
func (s *Session) Restart() bool {
	if s.sim.State() != StateGameOver {
		return false
	}
	if s.best != nil {
		s.best.Observe(s.sim.Score())
	}
	s.sim.Restart()
	return true
}

// Resize forwards a viewport change.
func (s *Session) Resize(width, height float64) {
	s.sim.Resize(width, height)
}

// Snapshot returns the current render state.
func (s *Session) Snapshot() Snapshot {
	return s.sim.Snapshot()
}

// Best returns the best known score, including the running one.
func (s *Session) Best() int {
	best := s.sim.Score()
	if s.best != nil && s.best.Best() > best {
		best = s.best.Best()
	}
	return best
}

// Banner is the text of the overlay shown for a state.
type Banner struct {
	Title  string
	Lines  []string
	Button string // Empty when the overlay has no button
}

// BannerFor returns the overlay for snap, or false while playing.
func BannerFor(snap Snapshot, best int) (Banner, bool) {
	switch snap.State {
	case StateStart:
		return Banner{
			Title: "GET READY",
			Lines: []string{
				"Press SPACE or click to flap",
				fmt.Sprintf("Best: %d", best),
			},
		}, true
	case StateGameOver:
		return Banner{
			Title: "GAME OVER",
			Lines: []string{
				fmt.Sprintf("Score: %d", snap.Score),
				fmt.Sprintf("Best: %d", best),
			},
			Button: "PLAY AGAIN",
		}, true
	default:
		return Banner{}, false
	}
}
