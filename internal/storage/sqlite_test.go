package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its parent were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for empty store, got %d", score)
	}

	entry, err := store.HighScoreEntry("flappy")
	if err != nil {
		t.Fatalf("HighScoreEntry() failed: %v", err)
	}
	if !entry.UpdatedAt.IsZero() {
		t.Errorf("Expected zero timestamp, got %v", entry.UpdatedAt)
	}
}

func TestSetHighScoreKeepsMaximum(t *testing.T) {
	store := openTestStore(t)

	steps := []struct {
		set  int
		want int
	}{
		{5, 5},
		{3, 5},
		{12, 12},
		{12, 12},
		{0, 12},
	}

	for _, step := range steps {
		if err := store.SetHighScore("flappy", step.set); err != nil {
			t.Fatalf("SetHighScore(%d) failed: %v", step.set, err)
		}
		got, err := store.HighScore("flappy")
		if err != nil {
			t.Fatalf("HighScore() failed: %v", err)
		}
		if got != step.want {
			t.Errorf("after SetHighScore(%d): got %d, expected %d", step.set, got, step.want)
		}
	}

	entry, err := store.HighScoreEntry("flappy")
	if err != nil {
		t.Fatalf("HighScoreEntry() failed: %v", err)
	}
	if entry.UpdatedAt.IsZero() {
		t.Error("Expected a timestamp on a stored score")
	}
}

func TestHighScoresArePerGame(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetHighScore("flappy", 40); err != nil {
		t.Fatal(err)
	}
	if err := store.SetHighScore("flappy-hard", 9); err != nil {
		t.Fatal(err)
	}

	got, _ := store.HighScore("flappy")
	if got != 40 {
		t.Errorf("flappy = %d, expected 40", got)
	}
	got, _ = store.HighScore("flappy-hard")
	if got != 9 {
		t.Errorf("flappy-hard = %d, expected 9", got)
	}
}

func TestResetHighScore(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetHighScore("flappy", 40); err != nil {
		t.Fatal(err)
	}
	if err := store.SetHighScore("other", 3); err != nil {
		t.Fatal(err)
	}
	if err := store.ResetHighScore("flappy"); err != nil {
		t.Fatalf("ResetHighScore() failed: %v", err)
	}

	if got, _ := store.HighScore("flappy"); got != 0 {
		t.Errorf("flappy = %d after reset, expected 0", got)
	}
	if got, _ := store.HighScore("other"); got != 3 {
		t.Errorf("other = %d, reset should not touch other games", got)
	}
}

func TestPersistenceAcrossOpens(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetHighScore("flappy", 21); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if got, _ := store.HighScore("flappy"); got != 21 {
		t.Errorf("got %d after reopen, expected 21", got)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/.arcade/scores.db")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	if want := filepath.Join(home, ".arcade", "scores.db"); got != want {
		t.Errorf("ExpandPath() = %q, expected %q", got, want)
	}

	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed to %q", got)
	}
}
