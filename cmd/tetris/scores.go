package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagShowRuns bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for the given mode (default "tetris").

Examples:
  tetris scores
  tetris scores tetris_bot
  tetris scores tetris_bot --runs`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagShowRuns, "runs", false, "Also show recent headless bot runs")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "tetris"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tetris list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetris play' to set the first high score!")
	} else {
		fmt.Printf("  %-4s  %-10s  %-7s  %-7s  %s\n", "Rank", "Score", "Lines", "Level", "Date")
		fmt.Printf("  %-4s  %-10s  %-7s  %-7s  %s\n", "----", "-----", "-----", "-----", "----")

		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-10d  %-7d  %-7d  %s\n", i+1, entry.Score, entry.Lines, entry.Level, dateStr)
		}

		stats, statsErr := store.GetGameStats(gameID)
		if statsErr == nil {
			fmt.Println()
			fmt.Printf("Games: %d   Best: %d   Avg: %.0f   Total lines: %d\n",
				stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalLines)
		}
	}

	if flagShowRuns {
		printRecentRuns(store)
	}
}

// printRecentRuns lists the latest headless bot runs.
func printRecentRuns(store *storage.Store) {
	runs, err := store.RecentBotRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving bot runs: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("Recent bot runs:")
	if len(runs) == 0 {
		fmt.Println("  none recorded")
		return
	}

	fmt.Printf("  %-20s  %-6s  %-8s  %-7s  %-8s  %s\n", "Seed", "Depth", "Pieces", "Lines", "Score", "Date")
	for _, run := range runs {
		fmt.Printf("  %-20d  %-6d  %-8d  %-7d  %-8d  %s\n",
			run.Seed, run.Depth, run.Pieces, run.Lines, run.Score,
			run.CreatedAt.Format("2006-01-02 15:04"))
	}
}
