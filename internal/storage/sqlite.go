// Package storage provides SQLite-based persistence for high scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is where the high-score database lives unless overridden.
const DefaultPath = "~/.arcade/scores.db"

// Store manages the SQLite database connection for high-score persistence.
// Each game keeps a single high-water mark.
type Store struct {
	db *sql.DB
}

// HighScoreEntry is the stored best score of one game.
type HighScoreEntry struct {
	GameID    string
	Score     int
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			game_id TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// HighScore returns the stored best score for the given game.
// Returns 0 if nothing has been stored yet.
func (s *Store) HighScore(gameID string) (int, error) {
	entry, err := s.HighScoreEntry(gameID)
	if err != nil {
		return 0, err
	}
	return entry.Score, nil
}

// HighScoreEntry returns the stored best score with its timestamp.
// A game with no record yields a zero entry and no error.
func (s *Store) HighScoreEntry(gameID string) (HighScoreEntry, error) {
	entry := HighScoreEntry{GameID: gameID}
	var updatedAt any

	err := s.db.QueryRow(
		"SELECT score, updated_at FROM high_scores WHERE game_id = ?",
		gameID,
	).Scan(&entry.Score, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return entry, nil
	}
	if err != nil {
		return entry, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := updatedAt.(type) {
	case time.Time:
		entry.UpdatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			entry.UpdatedAt = parsed
		}
	}

	return entry, nil
}

// SetHighScore raises the stored best score for the given game to score.
// A lower score never replaces a higher one.
func (s *Store) SetHighScore(gameID string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (game_id, score) VALUES (?, ?)
		 ON CONFLICT(game_id) DO UPDATE SET
			score = MAX(score, excluded.score),
			updated_at = CASE WHEN excluded.score > score THEN CURRENT_TIMESTAMP ELSE updated_at END`,
		gameID, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// ResetHighScore removes the stored best score for the given game.
func (s *Store) ResetHighScore(gameID string) error {
	_, err := s.db.Exec("DELETE FROM high_scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot reset high score: %w", err)
	}
	return nil
}
