package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/bot"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagHeadless bool
	flagPieces   int
	flagDepth    int
	flagRuns     int
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Watch the bot play, or benchmark it headless",
	Long: `Run the heuristic bot.

By default the bot plays in the terminal so you can watch it. With
--headless it plays at full speed without rendering and records the
run (seed, depth, pieces, lines, score) in the database, so weight
changes can be compared on identical piece sequences.

Examples:
  tetris bot
  tetris bot --seed 42 --depth 2
  tetris bot --headless --pieces 500
  tetris bot --headless --seed 42 --runs 5
  tetris bot --bot-config ./my-weights.yaml`,
	Run: runBot,
}

func init() {
	botCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run without rendering, at full speed")
	botCmd.Flags().IntVar(&flagPieces, "pieces", 0, "Stop after this many pieces (0 = until top out)")
	botCmd.Flags().IntVar(&flagDepth, "depth", -1, "Lookahead depth override (-1 = from config)")
	botCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of headless runs (seed increments per run)")
}

func runBot(cmd *cobra.Command, args []string) {
	engineCfg, err := loadEngineConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	botCfg, err := config.LoadBot(flagBotConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bot config: %v\n", err)
		os.Exit(1)
	}

	searchCfg := botCfg.SearchOptions()
	if flagDepth >= 0 {
		searchCfg.Depth = flagDepth
	}

	if flagHeadless {
		runBotHeadless(engineCfg, botCfg, searchCfg)
		return
	}

	// Watch mode: the registered variant drives the engine on screen.
	tetris.SetEngineConfig(engineCfg)
	bot.SetAutoplayWeights(botCfg.Weights)
	bot.SetAutoplaySearch(searchCfg)
	bot.SetAutoplayMoveEvery(botCfg.Search.MoveEveryTicks)

	game, err := registry.Create("tetris_bot")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	runErr := tui.Run(game, store, runtimeConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runBotHeadless plays full-speed games and records each run.
func runBotHeadless(engineCfg tetris.Config, botCfg config.BotConfig, searchCfg bot.SearchConfig) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database, runs will not be recorded: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runs := flagRuns
	if runs < 1 {
		runs = 1
	}

	fmt.Printf("%-20s  %8s  %8s  %8s  %10s  %8s\n", "Seed", "Pieces", "Lines", "Score", "Duration", "TopOut")
	for i := 0; i < runs; i++ {
		runSeed := seed + int64(i)
		result, err := bot.RunHeadless(bot.HeadlessConfig{
			Seed:      runSeed,
			MaxPieces: flagPieces,
			Engine:    engineCfg,
			Weights:   botCfg.Weights,
			Search:    searchCfg,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%-20d  %8d  %8d  %8d  %10s  %8v\n",
			runSeed, result.Pieces, result.Lines, result.Score,
			result.Duration.Round(time.Millisecond), result.TopOut)

		if store != nil {
			//nolint:errcheck // Best-effort recording
			store.SaveBotRun(storage.BotRun{
				Seed:       runSeed,
				Depth:      searchCfg.Depth,
				Pieces:     result.Pieces,
				Lines:      result.Lines,
				Score:      result.Score,
				DurationMS: result.Duration.Milliseconds(),
			})
			if result.Score > 0 {
				//nolint:errcheck // Best-effort save
				store.SaveScore("tetris_bot", result.Score, result.Lines, result.Level)
			}
		}
	}
}
