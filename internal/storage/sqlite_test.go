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

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieveScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("tetris", score, score/100, 1); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("tetris_bot", 5000, 42, 5); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}

	botScores, err := store.TopScores("tetris_bot", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(botScores) != 1 || botScores[0].Lines != 42 {
		t.Errorf("Bot scores kept separately with lines, got %v", botScores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("tetris", (i+1)*100, 0, 1)
	}

	scores, err := store.TopScores("tetris", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("tetris", 100, 1, 1)
	store.SaveScore("tetris", 300, 3, 1)
	store.SaveScore("tetris", 200, 2, 1)

	high, err = store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tetris", 100, 1, 1)
	store.SaveScore("tetris", 200, 2, 1)
	store.SaveScore("tetris_bot", 300, 3, 1)

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("tetris", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	botScores, _ := store.TopScores("tetris_bot", 10)
	if len(botScores) != 1 {
		t.Error("Bot scores should not be affected by clearing the player game")
	}
}

func TestStoreBotRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []BotRun{
		{Seed: 42, Depth: 1, Pieces: 100, Lines: 40, Score: 5000, DurationMS: 1200},
		{Seed: 42, Depth: 2, Pieces: 100, Lines: 44, Score: 6200, DurationMS: 4800},
		{Seed: 7, Depth: 1, Pieces: 50, Lines: 12, Score: 900, DurationMS: 600},
	}
	for _, run := range runs {
		if _, err := store.SaveBotRun(run); err != nil {
			t.Fatalf("SaveBotRun() failed: %v", err)
		}
	}

	forSeed, err := store.RunsForSeed(42, 10)
	if err != nil {
		t.Fatalf("RunsForSeed() failed: %v", err)
	}
	if len(forSeed) != 2 {
		t.Fatalf("Expected 2 runs for seed 42, got %d", len(forSeed))
	}
	for _, run := range forSeed {
		if run.Seed != 42 {
			t.Errorf("RunsForSeed returned seed %d", run.Seed)
		}
	}

	recent, err := store.RecentBotRuns(10)
	if err != nil {
		t.Fatalf("RecentBotRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Errorf("Expected 3 recent runs, got %d", len(recent))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tetris", 100, 4, 1)
	store.SaveScore("tetris", 300, 10, 2)

	stats, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.TotalLines != 14 {
		t.Errorf("TotalLines = %d, want 14", stats.TotalLines)
	}
}
