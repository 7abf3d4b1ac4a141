package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	score, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected high score 0 for fresh database, got %d", score)
	}
}

func TestStoreHighScoreRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if err := store.SaveHighScore(150); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	score, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 150 {
		t.Errorf("Expected high score 150, got %d", score)
	}

	// Overwrite with a new value
	if err := store.SaveHighScore(275); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	score, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 275 {
		t.Errorf("Expected high score 275 after overwrite, got %d", score)
	}
}

func TestStoreHighScoreSurvivesReopen(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveHighScore(42); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	store.Close()

	// Reopen and read back
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Open() after close failed: %v", err)
	}
	defer store.Close()

	score, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 42 {
		t.Errorf("Expected persisted high score 42, got %d", score)
	}
}

func TestStoreHighScoreMalformed(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Corrupt the stored value directly
	_, err = store.db.Exec(
		"INSERT INTO settings (key, value) VALUES (?, ?)",
		highScoreKey, "not-a-number",
	)
	if err != nil {
		t.Fatalf("failed to insert malformed value: %v", err)
	}

	score, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed on malformed value: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected malformed value to read as 0, got %d", score)
	}
}

func TestStoreRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveRun(score); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted descending
	if runs[0].Score != 200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveRun((i + 1) * 100)
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}

	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreClearRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 3; i++ {
		store.SaveRun((i + 1) * 10)
	}
	if err := store.SaveHighScore(30); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	count, err := store.ClearRuns()
	if err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 cleared runs, got %d", count)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}

	// High score is independent of runs
	score, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 30 {
		t.Errorf("Expected high score 30 to survive ClearRuns, got %d", score)
	}
}
