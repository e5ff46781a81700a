package bot

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// HeadlessConfig drives a full bot game without a terminal. Used for
// benchmarking weight changes on fixed seeds.
type HeadlessConfig struct {
	Seed      int64
	MaxPieces int // stop after this many locked pieces, 0 = play until top out
	Engine    tetris.Config
	Weights   Weights
	Search    SearchConfig
}

// HeadlessResult summarizes one headless run.
type HeadlessResult struct {
	Pieces   int
	Lines    int
	Score    int
	Level    int
	TopOut   bool
	Duration time.Duration
}

// RunHeadless plays one game to completion at full speed. Plans are
// computed synchronously, so the run is deterministic for a given seed
// when the search has no time budget.
func RunHeadless(cfg HeadlessConfig) (HeadlessResult, error) {
	game, err := tetris.NewGame(cfg.Engine, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return HeadlessResult{}, fmt.Errorf("bot: headless run: %w", err)
	}

	search := NewSearch(NewEvaluator(cfg.Weights), cfg.Search, nil)
	start := time.Now()

	pieces := 0
	planned := -1
	for !game.Over() && (cfg.MaxPieces <= 0 || pieces < cfg.MaxPieces) {
		game.Tick()

		snap, ok := game.Snapshot()
		if !ok || snap.Spawn == planned {
			continue
		}
		planned = snap.Spawn

		plan, planErr := search.Plan(snap)
		if planErr != nil {
			// No reachable placement. Let gravity lock the piece wherever
			// it stands; the game usually tops out shortly after.
			for !game.Over() && game.SpawnCount() == snap.Spawn {
				game.Tick()
			}
			pieces++
			continue
		}

		for _, cmd := range plan.Path() {
			game.Apply(cmd)
		}
		pieces++
	}

	score := game.Score()
	return HeadlessResult{
		Pieces:   pieces,
		Lines:    score.Lines,
		Score:    score.Score,
		Level:    score.Level,
		TopOut:   game.Over(),
		Duration: time.Since(start),
	}, nil
}
