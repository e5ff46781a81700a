package bot

import (
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// Runner runs searches off the game loop. The loop submits a snapshot when
// a new piece spawns and polls every tick; a result computed against an
// earlier piece is discarded by comparing spawn counters, so a plan is
// never replayed against the wrong piece.
type Runner struct {
	search  *Search
	results chan plannedResult
	pending int // spawn counter of the in-flight request, -1 when idle
}

type plannedResult struct {
	spawn int
	plan  Plan
	err   error
}

// NewRunner creates a runner around the given search.
func NewRunner(search *Search) *Runner {
	return &Runner{
		search:  search,
		results: make(chan plannedResult, 1),
		pending: -1,
	}
}

// Busy reports whether a request is in flight.
func (r *Runner) Busy() bool {
	return r.pending >= 0
}

// Submit starts planning for the snapshot unless a request is already in
// flight.
func (r *Runner) Submit(snap tetris.Snapshot) {
	if r.Busy() {
		return
	}
	r.pending = snap.Spawn
	go func() {
		plan, err := r.search.Plan(snap)
		r.results <- plannedResult{spawn: snap.Spawn, plan: plan, err: err}
	}()
}

// Poll returns a finished plan for the piece identified by spawn. Results
// for earlier pieces are dropped. ok is false while no matching result is
// ready.
func (r *Runner) Poll(spawn int) (plan Plan, ok bool, err error) {
	select {
	case res := <-r.results:
		r.pending = -1
		if res.spawn != spawn {
			return Plan{}, false, nil
		}
		return res.plan, true, res.err
	default:
		return Plan{}, false, nil
	}
}
