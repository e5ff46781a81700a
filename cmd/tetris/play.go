package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagStartLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game in the current terminal.

Controls:
  Left/Right/A/D  - Move piece
  Down/S          - Soft drop
  Space           - Hard drop
  Up/X            - Rotate clockwise
  Z               - Rotate counter-clockwise
  V               - Rotate 180
  C               - Hold piece
  P               - Pause
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Examples:
  tetris play
  tetris play --seed 42
  tetris play --level 5
  tetris play --config ./my-rules.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagStartLevel, "level", 0, "Starting level (0 = from config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	engineCfg, err := loadEngineConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	tetris.SetEngineConfig(engineCfg)

	game, err := registry.Create("tetris")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
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

// loadEngineConfig loads the game rules, applying the --level override.
func loadEngineConfig() (tetris.Config, error) {
	fileCfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return tetris.Config{}, err
	}
	engineCfg := fileCfg.Engine()
	if flagStartLevel > 0 {
		engineCfg.StartLevel = flagStartLevel
	}
	return engineCfg, engineCfg.Validate()
}

// runtimeConfig builds the platform config from terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
