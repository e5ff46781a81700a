package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-tetris/internal/bot"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed defaults/bot.yaml
var defaultBotYAML []byte

// DefaultTetrisConfig returns the default game configuration: the guideline
// 10x20 field with a five-piece preview and 7-bag randomization.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Field: FieldConfig{
			Width:      10,
			Height:     20,
			BufferRows: 2,
		},
		Rules: RulesConfig{
			QueueSize:      5,
			LockDelayTicks: 30,
			MaxLockResets:  15,
			StartLevel:     1,
			Randomizer:     "bag",
			KickTable:      "srs",
		},
	}
}

// DefaultBotConfig returns the default bot configuration.
func DefaultBotConfig() BotConfig {
	w := bot.DefaultWeights()
	return BotConfig{
		Weights: w,
		Search: BotSearchConfig{
			Depth:          1,
			MaxNodes:       200000,
			TimeBudgetMS:   50,
			MoveEveryTicks: 3,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML by name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "tetris":
		return defaultTetrisYAML
	case "bot":
		return defaultBotYAML
	default:
		return nil
	}
}
