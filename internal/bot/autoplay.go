package bot

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Autoplay is the spectator variant: the engine runs as usual while the
// search supplies the commands. Player input is reduced to pause, restart,
// and quit.
type Autoplay struct {
	inner  *tetris.Arcade
	runner *Runner

	// Current plan being executed.
	path       []tetris.Command
	planSpawn  int // spawn the path was computed for, -1 when none
	stuckSpawn int // spawn with no legal placement, left to gravity

	ticker int
}

// Package-level tuning, set by the CLI before Reset.
var (
	autoplayWeights   = DefaultWeights()
	autoplaySearch    = DefaultSearchConfig()
	autoplayMoveEvery = 3 // ticks between bot commands, for watchable play
)

// SetAutoplayWeights overrides the evaluator weights for the bot variant.
func SetAutoplayWeights(w Weights) {
	autoplayWeights = w
}

// SetAutoplaySearch overrides the search bounds for the bot variant.
func SetAutoplaySearch(cfg SearchConfig) {
	autoplaySearch = cfg
}

// SetAutoplayMoveEvery sets the pacing of bot commands in ticks.
func SetAutoplayMoveEvery(ticks int) {
	if ticks > 0 {
		autoplayMoveEvery = ticks
	}
}

// NewAutoplay creates the bot-driven variant.
func NewAutoplay() *Autoplay {
	return &Autoplay{inner: tetris.New(), planSpawn: -1, stuckSpawn: -1}
}

func init() {
	registry.Register("tetris_bot", func() registry.Game {
		return NewAutoplay()
	})
}

// ID returns the game identifier.
func (a *Autoplay) ID() string { return "tetris_bot" }

// Title returns the display name.
func (a *Autoplay) Title() string { return "Tetris (Bot)" }

// Reset initializes/restarts the game and a fresh search.
func (a *Autoplay) Reset(cfg core.RuntimeConfig) {
	a.inner.Reset(cfg)
	a.runner = NewRunner(NewSearch(NewEvaluator(autoplayWeights), autoplaySearch, nil))
	a.path = nil
	a.planSpawn = -1
	a.stuckSpawn = -1
	a.ticker = 0
}

// Game exposes the underlying engine for the headless runner and tests.
func (a *Autoplay) Game() *tetris.Game { return a.inner.Game() }

// Step advances the simulation, injecting bot commands at a steady pace.
func (a *Autoplay) Step(input core.InputFrame) core.StepResult {
	// Only meta actions pass through; movement keys are the bot's job.
	meta := core.NewInputFrame()
	for _, action := range []core.Action{core.ActionPause, core.ActionRestart, core.ActionQuit} {
		if input.Has(action) {
			meta.Set(action)
		}
	}
	if meta.Has(core.ActionRestart) {
		a.path = nil
		a.planSpawn = -1
		a.stuckSpawn = -1
	}

	res := a.inner.Step(meta)
	if res.State.GameOver || res.State.Paused {
		return res
	}
	a.drive()
	return res
}

// drive requests a plan for the current piece and feeds the queued path to
// the engine.
func (a *Autoplay) drive() {
	game := a.inner.Game()
	snap, ok := game.Snapshot()
	if !ok || snap.Spawn == a.stuckSpawn {
		return
	}

	if a.planSpawn != snap.Spawn {
		if plan, done, err := a.runner.Poll(snap.Spawn); done {
			if err != nil {
				// No reachable placement: leave this piece to gravity.
				a.stuckSpawn = snap.Spawn
				return
			}
			a.planSpawn = snap.Spawn
			a.path = plan.Path()
		} else if !a.runner.Busy() {
			a.runner.Submit(snap)
		}
		return
	}

	if len(a.path) == 0 {
		return
	}
	a.ticker++
	if a.ticker < autoplayMoveEvery {
		return
	}
	a.ticker = 0

	cmd := a.path[0]
	a.path = a.path[1:]
	game.Apply(cmd)
}

// Render draws the underlying game with a bot tag.
func (a *Autoplay) Render(dst *core.Screen) {
	a.inner.Render(dst)
	tag := fmt.Sprintf("[BOT] moves every %d ticks", autoplayMoveEvery)
	dst.DrawTextColored(1, dst.Height()-1, tag, core.ColorGray)
}

// State returns the platform-visible game status.
func (a *Autoplay) State() core.GameState {
	return a.inner.State()
}

// Path returns the full command sequence of a plan: the optional hold
// press followed by the movement path.
func (p Plan) Path() []tetris.Command {
	if !p.UseHold {
		return p.Placement.Path
	}
	path := make([]tetris.Command, 0, len(p.Placement.Path)+1)
	path = append(path, tetris.CmdHold)
	return append(path, p.Placement.Path...)
}
