// Package highscore keeps the best score of a game in memory and mirrors it
// to a persistent store. Persistence is best effort: a failing store is
// logged and the in-memory value stays authoritative for the process.
package highscore

import (
	"io"

	"github.com/charmbracelet/log"
)

// Store persists one integer per game. storage.Store satisfies it.
type Store interface {
	HighScore(gameID string) (int, error)
	SetHighScore(gameID string, score int) error
}

// Tracker holds the process-wide best score. It is loaded once and written
// back only when beaten. Not safe for concurrent use.
type Tracker struct {
	gameID string
	store  Store
	logger *log.Logger
	best   int
}

// Load reads the stored best score for gameID. A nil store or a read error
// starts from zero. A nil logger discards output.
func Load(store Store, gameID string, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	t := &Tracker{gameID: gameID, store: store, logger: logger}
	if store == nil {
		return t
	}

	best, err := store.HighScore(gameID)
	if err != nil {
		logger.Warn("high score unavailable", "game", gameID, "err", err)
		return t
	}
	t.best = best
	logger.Debug("high score loaded", "game", gameID, "best", best)
	return t
}

// Best returns the best score seen so far.
func (t *Tracker) Best() int {
	return t.best
}

// Observe records score and reports whether it beat the previous best.
// A new best is written to the store immediately.
func (t *Tracker) Observe(score int) bool {
	if score <= t.best {
		return false
	}
	t.best = score
	if t.store != nil {
		if err := t.store.SetHighScore(t.gameID, score); err != nil {
			t.logger.Warn("high score not saved", "game", t.gameID, "score", score, "err", err)
		} else {
			t.logger.Debug("high score saved", "game", t.gameID, "best", score)
		}
	}
	return true
}

// MemoryStore is a Store that lives only as long as the process.
type MemoryStore struct {
	scores map[string]int
	writes int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scores: make(map[string]int)}
}

// HighScore returns the stored score, 0 if absent.
func (m *MemoryStore) HighScore(gameID string) (int, error) {
	return m.scores[gameID], nil
}

// SetHighScore stores score if it is higher than the current value.
func (m *MemoryStore) SetHighScore(gameID string, score int) error {
	m.writes++
	if score > m.scores[gameID] {
		m.scores[gameID] = score
	}
	return nil
}

// Writes returns how many times SetHighScore was called.
func (m *MemoryStore) Writes() int {
	return m.writes
}
