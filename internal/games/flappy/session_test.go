package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/highscore"
)

func newTestSession(t *testing.T, stored int) (*Session, *highscore.MemoryStore) {
	t.Helper()
	store := highscore.NewMemoryStore()
	if stored > 0 {
		store.SetHighScore(GameID, stored)
	}
	tracker := highscore.Load(store, GameID, nil)
	return NewSession(newTestSim(t), tracker), store
}

func TestRestartRecordsHighScore(t *testing.T) {
	sess, store := newTestSession(t, 5)
	sim := sess.Simulation()
	sim.state = StateGameOver
	sim.score = 7
	sim.pipes.Push(Pipe{X: 200, TopHeight: 100})

	if !sess.Restart() {
		t.Fatal("Restart() from GAME_OVER should apply")
	}

	if got, _ := store.HighScore(GameID); got != 7 {
		t.Errorf("stored high score = %d, expected 7", got)
	}
	if sess.Best() != 7 {
		t.Errorf("Best() = %d, expected 7", sess.Best())
	}
	if sim.State() != StateStart || sim.Score() != 0 || len(sim.Pipes()) != 0 {
		t.Errorf("new session: state %v score %d pipes %d", sim.State(), sim.Score(), len(sim.Pipes()))
	}
}

func TestRestartOnlyFromGameOver(t *testing.T) {
	sess, _ := newTestSession(t, 0)

	if sess.Restart() {
		t.Error("Restart() in START should be ignored")
	}
	sess.Flap()
	if sess.Restart() {
		t.Error("Restart() in PLAYING should be ignored")
	}
	if sess.Simulation().State() != StatePlaying {
		t.Errorf("state = %v, expected PLAYING to continue", sess.Simulation().State())
	}
}

func TestLowerScoreKeepsHighScore(t *testing.T) {
	sess, store := newTestSession(t, 10)
	sim := sess.Simulation()
	sim.state = StateGameOver
	sim.score = 4
	writes := store.Writes()

	sess.Restart()

	if got, _ := store.HighScore(GameID); got != 10 {
		t.Errorf("stored high score = %d, expected 10", got)
	}
	if store.Writes() != writes {
		t.Error("a lower score should not be written")
	}
}

func TestTickRecordsScoreAsItHappens(t *testing.T) {
	sess, store := newTestSession(t, 0)
	sim := sess.Simulation()
	playing(sim, 191.75)
	sim.pipes.Push(Pipe{X: 26, TopHeight: 150})

	res := sess.Tick()
	if !res.Has(EventScored) {
		t.Fatalf("expected a score, got %v", res.Events)
	}
	if got, _ := store.HighScore(GameID); got != 1 {
		t.Errorf("stored high score = %d, expected 1 without waiting for the crash", got)
	}
}

func TestBestIncludesRunningScore(t *testing.T) {
	sess, _ := newTestSession(t, 2)
	sess.Simulation().score = 3
	if sess.Best() != 3 {
		t.Errorf("Best() = %d, expected the running score 3", sess.Best())
	}

	noStore := NewSession(newTestSim(t), nil)
	if noStore.Best() != 0 {
		t.Errorf("Best() without observer = %d, expected 0", noStore.Best())
	}
}

func TestBannerFor(t *testing.T) {
	tests := []struct {
		state  SessionState
		ok     bool
		title  string
		button string
	}{
		{StateStart, true, "GET READY", ""},
		{StatePlaying, false, "", ""},
		{StateGameOver, true, "GAME OVER", "PLAY AGAIN"},
	}

	for _, tc := range tests {
		t.Run(tc.state.String(), func(t *testing.T) {
			b, ok := BannerFor(Snapshot{State: tc.state, Score: 3}, 9)
			if ok != tc.ok || b.Title != tc.title || b.Button != tc.button {
				t.Errorf("BannerFor() = %+v, %v", b, ok)
			}
		})
	}

	b, _ := BannerFor(Snapshot{State: StateGameOver, Score: 3}, 9)
	if b.Lines[0] != "Score: 3" || b.Lines[1] != "Best: 9" {
		t.Errorf("game over lines = %q", b.Lines)
	}
}
