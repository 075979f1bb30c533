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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Score: 100, Frames: 400},
		{Score: 50, Frames: 250, Seed: 7},
		{Score: 200, Frames: 900, Player: "alice"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v", top)
	}
	if top[0].Player != "alice" || top[0].Frames != 900 {
		t.Errorf("Unexpected best run: %+v", top[0])
	}
	if top[1].Player != "local" {
		t.Errorf("Empty player should default to local, got %q", top[1].Player)
	}
	if top[2].Seed != 7 {
		t.Errorf("Seed not stored, got %d", top[2].Seed)
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{Score: (i + 1) * 100})
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", top)
	}
}

func TestStoreTopRunsTies(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveRun(Run{Score: 300, Player: "first"})
	store.SaveRun(Run{Score: 300, Player: "second"})

	top, err := store.TopRuns(2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if top[0].ID != first {
		t.Errorf("Earlier run should win a tie, got %+v", top[0])
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{300, 100, 200} {
		store.SaveRun(Run{Score: score})
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 200 || recent[1].Score != 100 {
		t.Errorf("Unexpected recent runs: %v", recent)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	store.SaveRun(Run{Score: 100})
	store.SaveRun(Run{Score: 300})
	store.SaveRun(Run{Score: 200})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Empty store stats: %+v", stats)
	}

	store.SaveRun(Run{Score: 100, Frames: 300})
	store.SaveRun(Run{Score: 300, Frames: 700})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalFrames != 1000 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Score: 100})
	store.SaveRun(Run{Score: 200})

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	top, _ := store.TopRuns(10)
	if len(top) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(top))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
