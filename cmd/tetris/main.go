// tetris is a terminal falling-block puzzle with a built-in bot player.
//
// Usage:
//
//	tetris play              - Play the game
//	tetris bot               - Watch the bot play, or benchmark it headless
//	tetris menu              - Interactive mode picker
//	tetris list              - List available modes
//	tetris scores [mode]     - Show high scores
//	tetris serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.tetris/scores.db)
//	--config <path>      - Custom game config YAML
//	--bot-config <path>  - Custom bot config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/vovakirdan/tui-tetris/internal/bot"
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagConfig    string
	flagBotConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Terminal Tetris with a bot player",
	Long: `A terminal falling-block puzzle with guideline-style rotation,
hold, next queue, and a heuristic bot that can play for you.

Available commands:
  play     - Play the game yourself
  bot      - Watch the bot play, or run it headless for benchmarking
  menu     - Interactive mode picker
  list     - Show all registered modes
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  tetris play
  tetris play --seed 42
  tetris bot --headless --pieces 500
  tetris serve --ssh :2222
  tetris scores tetris_bot`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBotConfig, "bot-config", "", "Path to custom bot config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(botCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
