package tetris

import (
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Arcade adapts the engine to the platform game interface: it maps input
// actions to engine commands, drives the fixed-tick simulation, and renders
// the field into a screen buffer.
type Arcade struct {
	cfg  core.RuntimeConfig
	game *Game

	paused   bool
	tooSmall bool

	// flashText shows transient clear announcements on the HUD.
	flashText  string
	flashTicks int
}

// Package-level engine options, set by the CLI before the platform resets
// the game (same pattern the config file loader uses).
var engineConfig = DefaultConfig()

// SetEngineConfig overrides the engine options used by the next Reset.
func SetEngineConfig(cfg Config) {
	engineConfig = cfg
}

// New creates the playable variant.
func New() *Arcade {
	return &Arcade{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (a *Arcade) ID() string { return "tetris" }

// Title returns the display name.
func (a *Arcade) Title() string { return "Tetris" }

// Reset initializes/restarts the game.
func (a *Arcade) Reset(cfg core.RuntimeConfig) {
	a.cfg = cfg
	a.paused = false
	a.flashText = ""
	a.flashTicks = 0

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := NewGame(engineConfig, rand.New(rand.NewSource(seed)))
	if err != nil {
		// Config is validated where it is loaded; defaults always pass.
		panic(err)
	}
	a.game = game

	a.tooSmall = cfg.ScreenW < a.requiredWidth() || cfg.ScreenH < a.requiredHeight()
}

// Game exposes the underlying engine (used by the bot variant and tests).
func (a *Arcade) Game() *Game { return a.game }

// Step advances the game by one tick.
func (a *Arcade) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) && a.game.Over() {
		a.Reset(core.RuntimeConfig{
			ScreenW:  a.cfg.ScreenW,
			ScreenH:  a.cfg.ScreenH,
			TickRate: a.cfg.TickRate,
			Seed:     time.Now().UnixNano(),
		})
		return core.StepResult{State: a.State()}
	}

	if input.Has(core.ActionPause) && !a.game.Over() {
		a.paused = !a.paused
	}

	if a.paused || a.tooSmall || a.game.Over() {
		return core.StepResult{State: a.State()}
	}

	for _, m := range actionCommands {
		if input.Has(m.action) {
			a.game.Apply(m.cmd)
		}
	}

	a.game.Tick()
	a.consumeEvents()

	if a.flashTicks > 0 {
		a.flashTicks--
		if a.flashTicks == 0 {
			a.flashText = ""
		}
	}

	return core.StepResult{State: a.State()}
}

// actionCommands maps input actions to engine commands in a fixed order so
// simultaneous presses resolve deterministically.
var actionCommands = []struct {
	action core.Action
	cmd    Command
}{
	{core.ActionLeft, CmdLeft},
	{core.ActionRight, CmdRight},
	{core.ActionRotateCW, CmdRotateCW},
	{core.ActionRotateCCW, CmdRotateCCW},
	{core.ActionRotate180, CmdRotate180},
	{core.ActionHold, CmdHold},
	{core.ActionSoftDrop, CmdSoftDrop},
	{core.ActionHardDrop, CmdHardDrop},
}

// consumeEvents turns engine events into HUD flash messages.
func (a *Arcade) consumeEvents() {
	for _, ev := range a.game.DrainEvents() {
		switch ev.Kind {
		case EventLinesCleared:
			a.flash(clearName(ev.Lines, ev.TSpin))
		case EventPieceLocked:
			if ev.TSpin != TSpinNone {
				a.flash(clearName(0, ev.TSpin))
			}
		case EventPerfectClear:
			a.flash("PERFECT CLEAR!")
		}
	}
}

func clearName(lines int, tspin TSpin) string {
	switch tspin {
	case TSpinFull:
		return strings.TrimSpace("T-SPIN " + clearTier(lines))
	case TSpinMini:
		return strings.TrimSpace("T-SPIN MINI " + clearTier(lines))
	}
	return clearTier(lines)
}

func clearTier(lines int) string {
	switch lines {
	case 1:
		return "SINGLE"
	case 2:
		return "DOUBLE"
	case 3:
		return "TRIPLE"
	case 4:
		return "TETRIS!"
	default:
		return ""
	}
}

func (a *Arcade) flash(text string) {
	if text == "" {
		return
	}
	a.flashText = text
	a.flashTicks = 90 // ~1.5s at 60 ticks/s
}

// State returns the platform-visible game status.
func (a *Arcade) State() core.GameState {
	s := a.game.Score()
	return core.GameState{
		Score:    s.Score,
		Lines:    s.Lines,
		Level:    s.Level,
		GameOver: a.game.Over(),
		Paused:   a.paused,
	}
}
