package bot

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

func headlessConfig(seed int64, pieces int) HeadlessConfig {
	return HeadlessConfig{
		Seed:      seed,
		MaxPieces: pieces,
		Engine:    tetris.DefaultConfig(),
		Weights:   DefaultWeights(),
		// No time budget so runs are reproducible on any machine.
		Search: SearchConfig{Depth: 0, MaxNodes: 0},
	}
}

func TestRunHeadlessPlaysRequestedPieces(t *testing.T) {
	res, err := RunHeadless(headlessConfig(42, 10))
	if err != nil {
		t.Fatalf("RunHeadless failed: %v", err)
	}
	if res.Pieces != 10 {
		t.Errorf("Pieces = %d, want 10", res.Pieces)
	}
	if res.TopOut {
		t.Error("Default weights should survive 10 pieces on an empty board")
	}
	if res.Score < 0 || res.Level < 1 {
		t.Errorf("Implausible result: %+v", res)
	}
}

func TestRunHeadlessDeterministicForSeed(t *testing.T) {
	a, err := RunHeadless(headlessConfig(7, 30))
	if err != nil {
		t.Fatalf("RunHeadless failed: %v", err)
	}
	b, err := RunHeadless(headlessConfig(7, 30))
	if err != nil {
		t.Fatalf("RunHeadless failed: %v", err)
	}

	if a.Pieces != b.Pieces || a.Lines != b.Lines || a.Score != b.Score {
		t.Errorf("Same seed diverged: %+v vs %+v", a, b)
	}
}

func TestRunHeadlessRejectsInvalidEngineConfig(t *testing.T) {
	cfg := headlessConfig(1, 5)
	cfg.Engine.Width = 0

	if _, err := RunHeadless(cfg); err == nil {
		t.Error("Invalid engine config should fail before playing")
	}
}
