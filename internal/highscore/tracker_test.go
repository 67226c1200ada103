package highscore

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

type failingStore struct {
	readErr, writeErr error
	writes            int
}

func (f *failingStore) HighScore(string) (int, error) {
	return 99, f.readErr
}

func (f *failingStore) SetHighScore(string, int) error {
	f.writes++
	return f.writeErr
}

func TestLoadReadsStoredValue(t *testing.T) {
	store := NewMemoryStore()
	store.SetHighScore("flappy", 5)

	tr := Load(store, "flappy", nil)
	if tr.Best() != 5 {
		t.Errorf("Best() = %d, expected 5", tr.Best())
	}
}

func TestLoadAbsentIsZero(t *testing.T) {
	tr := Load(NewMemoryStore(), "flappy", nil)
	if tr.Best() != 0 {
		t.Errorf("Best() = %d, expected 0", tr.Best())
	}

	if tr := Load(nil, "flappy", nil); tr.Best() != 0 {
		t.Errorf("nil store: Best() = %d, expected 0", tr.Best())
	}
}

func TestObserveWritesOnlyWhenBeaten(t *testing.T) {
	store := NewMemoryStore()
	store.SetHighScore("flappy", 5)
	tr := Load(store, "flappy", nil)
	before := store.Writes()

	tests := []struct {
		score    int
		improved bool
		best     int
	}{
		{3, false, 5},
		{5, false, 5},
		{6, true, 6},
		{7, true, 7},
		{0, false, 7},
	}
	for _, tc := range tests {
		if got := tr.Observe(tc.score); got != tc.improved {
			t.Errorf("Observe(%d) = %v, expected %v", tc.score, got, tc.improved)
		}
		if tr.Best() != tc.best {
			t.Errorf("after Observe(%d): Best() = %d, expected %d", tc.score, tr.Best(), tc.best)
		}
	}

	if got := store.Writes() - before; got != 2 {
		t.Errorf("store written %d times, expected 2", got)
	}
	if got, _ := store.HighScore("flappy"); got != 7 {
		t.Errorf("stored %d, expected 7", got)
	}
}

func TestStoreFailuresAreNotFatal(t *testing.T) {
	store := &failingStore{readErr: errors.New("locked"), writeErr: errors.New("disk full")}

	tr := Load(store, "flappy", nil)
	if tr.Best() != 0 {
		t.Errorf("Best() = %d after read error, expected 0", tr.Best())
	}

	if !tr.Observe(4) {
		t.Error("Observe() should still track a new best when the write fails")
	}
	if tr.Best() != 4 || store.writes != 1 {
		t.Errorf("Best() = %d, writes = %d", tr.Best(), store.writes)
	}
}

func TestTrackerWithSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	tr := Load(store, "flappy", nil)
	tr.Observe(7)
	store.Close()

	store, err = storage.Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if tr := Load(store, "flappy", nil); tr.Best() != 7 {
		t.Errorf("Best() = %d after reopen, expected 7", tr.Best())
	}
}
