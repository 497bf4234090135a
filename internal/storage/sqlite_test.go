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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{GameID: "eggtoss", Score: 4}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore("eggtoss"); high != 4 {
		t.Errorf("HighScore() after reopen = %d, expected 4", high)
	}
}

func TestStoreTopRunsOrdering(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "eggtoss", Score: 3, Ticks: 900},
		{GameID: "eggtoss", Score: 7, Ticks: 1200, Difficulty: "hard"},
		{GameID: "eggtoss", Score: 3, Ticks: 2000},
		{GameID: "eggtoss", Score: 0, Ticks: 100},
		{GameID: "other", Score: 50},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("eggtoss", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(top))
	}

	want := []struct{ score, ticks int }{{7, 1200}, {3, 2000}, {3, 900}}
	for i, w := range want {
		if top[i].Score != w.score || top[i].Ticks != w.ticks {
			t.Errorf("run %d = %d/%d, expected %d/%d", i, top[i].Score, top[i].Ticks, w.score, w.ticks)
		}
	}
	if top[0].Difficulty != "hard" {
		t.Errorf("Difficulty = %q, expected hard", top[0].Difficulty)
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreTopRunsDefaultLimit(t *testing.T) {
	store := openTestStore(t)
	for i := range 15 {
		store.SaveRun(Run{GameID: "eggtoss", Score: i})
	}

	top, err := store.TopRuns("eggtoss", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 10 || top[0].Score != 14 {
		t.Errorf("got %d runs, best %d; expected 10 runs, best 14", len(top), top[0].Score)
	}
}

func TestStoreSaveRunRequiresGameID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(Run{Score: 1}); err == nil {
		t.Error("SaveRun() without a game id should fail")
	}
}

func TestStoreHighScoreAndStats(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("eggtoss")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	empty, err := store.Stats("eggtoss")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(Run{GameID: "eggtoss", Score: 2, Ticks: 500})
	store.SaveRun(Run{GameID: "eggtoss", Score: 6, Ticks: 300})
	store.SaveRun(Run{GameID: "eggtoss", Score: 4, Ticks: 800})

	if high, _ := store.HighScore("eggtoss"); high != 6 {
		t.Errorf("Expected high score of 6, got %d", high)
	}

	st, err := store.Stats("eggtoss")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 3 || st.HighScore != 6 || st.AvgScore != 4 || st.LongestRun != 800 {
		t.Errorf("stats = %+v", st)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(Run{GameID: "eggtoss", Score: 1})
	store.SaveRun(Run{GameID: "other", Score: 2})

	if err := store.ClearRuns("eggtoss"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.TopRuns("eggtoss", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("other", 10); len(runs) != 1 {
		t.Error("other games should not be affected")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := expandHome("~/.eggtoss/scores.db")
	if err != nil {
		t.Fatalf("expandHome() error: %v", err)
	}
	if want := filepath.Join(home, ".eggtoss", "scores.db"); got != want {
		t.Errorf("expandHome() = %q, expected %q", got, want)
	}

	if got, _ := expandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute paths should pass through, got %q", got)
	}
}
