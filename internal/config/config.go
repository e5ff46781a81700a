// Package config provides YAML-based configuration loading for the game
// engine and the bot.
package config

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/bot"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// TetrisConfig contains all configuration for the playable game.
type TetrisConfig struct {
	Field FieldConfig `yaml:"field"`
	Rules RulesConfig `yaml:"rules"`
}

// FieldConfig defines the playfield dimensions.
type FieldConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	BufferRows int `yaml:"buffer_rows"`
}

// RulesConfig defines gameplay rules.
type RulesConfig struct {
	QueueSize      int    `yaml:"queue_size"`
	LockDelayTicks int    `yaml:"lock_delay_ticks"`
	MaxLockResets  int    `yaml:"max_lock_resets"`
	StartLevel     int    `yaml:"start_level"`
	Randomizer     string `yaml:"randomizer"` // "bag" or "uniform"
	KickTable      string `yaml:"kick_table"` // "srs"

	// GravityFrames is a per-level speed curve (ticks per gravity row,
	// entry i for level i+1). Empty means the built-in guideline curve.
	GravityFrames []int `yaml:"gravity_frames"`
}

// Engine converts the file representation into the engine options.
func (c TetrisConfig) Engine() tetris.Config {
	return tetris.Config{
		Width:          c.Field.Width,
		Height:         c.Field.Height,
		BufferRows:     c.Field.BufferRows,
		QueueSize:      c.Rules.QueueSize,
		LockDelayTicks: c.Rules.LockDelayTicks,
		MaxLockResets:  c.Rules.MaxLockResets,
		StartLevel:     c.Rules.StartLevel,
		Randomizer:     c.Rules.Randomizer,
		KickTable:      c.Rules.KickTable,
		GravityFrames:  c.Rules.GravityFrames,
	}
}

// BotConfig contains all configuration for the bot player.
type BotConfig struct {
	Weights bot.Weights     `yaml:"weights"`
	Search  BotSearchConfig `yaml:"search"`
}

// BotSearchConfig bounds the bot's lookahead.
type BotSearchConfig struct {
	Depth          int `yaml:"depth"`
	MaxNodes       int `yaml:"max_nodes"`
	TimeBudgetMS   int `yaml:"time_budget_ms"`
	MoveEveryTicks int `yaml:"move_every_ticks"`
}

// SearchOptions converts the file representation into the search options.
func (c BotConfig) SearchOptions() bot.SearchConfig {
	return bot.SearchConfig{
		Depth:      c.Search.Depth,
		MaxNodes:   c.Search.MaxNodes,
		TimeBudget: time.Duration(c.Search.TimeBudgetMS) * time.Millisecond,
	}
}
