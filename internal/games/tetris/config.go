package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Randomizer algorithm names accepted in Config.
const (
	RandomizerBag     = "bag"
	RandomizerUniform = "uniform"
)

// Kick table variants accepted in Config. Only SRS data is shipped; the
// option exists so an unknown variant fails fast instead of silently
// playing with the wrong tables.
const KickTableSRS = "srs"

// Config holds the engine options. Zero values are not usable; start from
// DefaultConfig and override.
type Config struct {
	Width      int // columns (standard 10)
	Height     int // visible rows (standard 20)
	BufferRows int // hidden spawn rows above the field

	QueueSize      int    // preview pieces kept ahead of the active piece
	LockDelayTicks int    // ticks a grounded piece may float before locking
	MaxLockResets  int    // successful moves that may restart the lock timer
	StartLevel     int    // starting level (1-based)
	Randomizer     string // "bag" or "uniform"
	KickTable      string // "srs" (empty means "srs")

	// GravityFrames overrides the speed curve: entry i is the ticks per
	// gravity row at level i+1, with the last entry used for all higher
	// levels. Empty means the guideline curve.
	GravityFrames []int
}

// DefaultConfig returns the guideline setup: 10x20 with two hidden rows,
// five-piece preview, half-second lock delay at 60 ticks/s, 15 resets.
func DefaultConfig() Config {
	return Config{
		Width:          10,
		Height:         20,
		BufferRows:     2,
		QueueSize:      5,
		LockDelayTicks: 30,
		MaxLockResets:  15,
		StartLevel:     1,
		Randomizer:     RandomizerBag,
		KickTable:      KickTableSRS,
	}
}

// Validate checks the configuration before any game state exists.
func (c Config) Validate() error {
	if c.Width < 4 {
		return fmt.Errorf("tetris: board width %d too small (need >= 4)", c.Width)
	}
	if c.Height < 4 {
		return fmt.Errorf("tetris: board height %d too small (need >= 4)", c.Height)
	}
	if c.BufferRows < 2 {
		return fmt.Errorf("tetris: need at least 2 buffer rows for spawning, got %d", c.BufferRows)
	}
	if c.QueueSize < 1 {
		return fmt.Errorf("tetris: queue size must be positive, got %d", c.QueueSize)
	}
	if c.LockDelayTicks < 1 {
		return fmt.Errorf("tetris: lock delay must be positive, got %d", c.LockDelayTicks)
	}
	if c.MaxLockResets < 0 {
		return fmt.Errorf("tetris: max lock resets must be non-negative, got %d", c.MaxLockResets)
	}
	if c.StartLevel < 1 {
		return fmt.Errorf("tetris: start level must be >= 1, got %d", c.StartLevel)
	}
	switch c.Randomizer {
	case RandomizerBag, RandomizerUniform:
	default:
		return fmt.Errorf("tetris: unknown randomizer %q", c.Randomizer)
	}
	switch c.KickTable {
	case "", KickTableSRS:
	default:
		return fmt.Errorf("tetris: unknown kick table %q", c.KickTable)
	}
	for i, frames := range c.GravityFrames {
		if frames < 1 {
			return fmt.Errorf("tetris: gravity frames for level %d must be positive, got %d", i+1, frames)
		}
	}
	return nil
}

// gravityTicks is the configured ticks per gravity row at the given level:
// the override curve when one is set, the guideline curve otherwise.
func (c Config) gravityTicks(level int) int {
	if len(c.GravityFrames) == 0 {
		return gravityFrames(level)
	}
	return c.GravityFrames[core.Clamp(level, 1, len(c.GravityFrames))-1]
}
