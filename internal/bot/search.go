package bot

import (
	"errors"
	"time"

	"github.com/coder/quartz"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// ErrNoLegalMove is returned when the active piece has no reachable
// resting position. It mirrors how the engine itself ends the game: the
// caller decides whether to stop or wait for the next piece.
var ErrNoLegalMove = errors.New("bot: no legal placement for the active piece")

// SearchConfig bounds the lookahead.
type SearchConfig struct {
	// Depth is how many queue pieces to look ahead past the active piece.
	Depth int
	// MaxNodes caps the number of simulated placements per decision.
	MaxNodes int
	// TimeBudget caps wall-clock time per decision. Zero means no limit.
	TimeBudget time.Duration
}

// DefaultSearchConfig looks one preview piece ahead, which is enough to
// play clean stacking at interactive speeds.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		Depth:      1,
		MaxNodes:   200000,
		TimeBudget: 50 * time.Millisecond,
	}
}

// Plan is the search result for one decision: where to put the piece, how
// to get it there, and whether to press hold first.
type Plan struct {
	Placement Placement
	UseHold   bool
	Score     float64
	Nodes     int
}

// Search picks placements by expanding every reachable resting position of
// the current piece (and, when hold is available, of the hold alternative),
// simulating each lock on a copied board, and scoring the deepest boards
// with the evaluator. The search is deterministic for a given snapshot.
type Search struct {
	eval  *Evaluator
	cfg   SearchConfig
	clock quartz.Clock
}

// NewSearch creates a search. A nil clock falls back to the real clock;
// tests inject a mock.
func NewSearch(eval *Evaluator, cfg SearchConfig, clock quartz.Clock) *Search {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Search{eval: eval, cfg: cfg, clock: clock}
}

// searchRun carries the per-decision budget state.
type searchRun struct {
	s        *Search
	deadline time.Time
	nodes    int
}

func (r *searchRun) exhausted() bool {
	if r.s.cfg.MaxNodes > 0 && r.nodes >= r.s.cfg.MaxNodes {
		return true
	}
	return !r.deadline.IsZero() && !r.s.clock.Now().Before(r.deadline)
}

// Plan decides the placement for the snapshot's active piece.
func (s *Search) Plan(snap tetris.Snapshot) (Plan, error) {
	run := &searchRun{s: s}
	if s.cfg.TimeBudget > 0 {
		run.deadline = s.clock.Now().Add(s.cfg.TimeBudget)
	}

	best, ok := s.planPiece(run, snap.Board, snap.Active, snap.Queue, false)

	// The hold alternative replaces the active piece with the held one, or
	// with the next queue piece when the slot is empty.
	if !snap.HoldUsed {
		alt, altQueue := holdAlternative(snap)
		if alt != nil {
			spawn := tetris.SpawnPiece(*alt, snap.Board.Width())
			if held, okHold := s.planPiece(run, snap.Board, spawn, altQueue, true); okHold {
				if !ok || held.Score > best.Score {
					best, ok = held, true
				}
			}
		}
	}

	if !ok {
		return Plan{Nodes: run.nodes}, ErrNoLegalMove
	}
	best.Nodes = run.nodes
	return best, nil
}

// holdAlternative returns the piece type that pressing hold would put in
// play, and the queue as the deeper search would then see it.
func holdAlternative(snap tetris.Snapshot) (*tetris.PieceType, []tetris.PieceType) {
	if snap.Hold != nil {
		t := *snap.Hold
		return &t, snap.Queue
	}
	if len(snap.Queue) == 0 {
		return nil, nil
	}
	t := snap.Queue[0]
	return &t, snap.Queue[1:]
}

// planPiece scores every placement of one piece and returns the best plan.
func (s *Search) planPiece(run *searchRun, board *tetris.Board, piece tetris.Piece, queue []tetris.PieceType, usedHold bool) (Plan, bool) {
	var best Plan
	var bestHeights int
	found := false

	for _, placement := range GeneratePlacements(board, piece) {
		score, after, ok := s.simulate(run, board, placement.Target, queue, s.cfg.Depth)
		if !ok {
			continue
		}
		heights := sum(after.ColumnHeights())
		if !found || score > best.Score || (score == best.Score && heights < bestHeights) {
			best = Plan{Placement: placement, UseHold: usedHold, Score: score}
			bestHeights = heights
			found = true
		}
		if run.exhausted() {
			break
		}
	}
	return best, found
}

// simulate locks the placement on a copy of the board and either scores
// the surface or recurses over the next queue piece. It returns the board
// after the lock for tie-breaking at the top level.
func (s *Search) simulate(run *searchRun, board *tetris.Board, target tetris.Piece, queue []tetris.PieceType, depth int) (float64, *tetris.Board, bool) {
	run.nodes++

	after := board.Clone()
	if _, err := after.LockPiece(target); err != nil {
		return 0, nil, false
	}
	cleared := after.ClearFullRows()
	immediate := s.eval.Score(after, cleared, target.Row)

	if depth <= 0 || len(queue) == 0 || run.exhausted() {
		return immediate, after, true
	}

	next := tetris.SpawnPiece(queue[0], after.Width())
	bestDeep, deepFound := 0.0, false
	for _, placement := range GeneratePlacements(after, next) {
		score, _, ok := s.simulate(run, after, placement.Target, queue[1:], depth-1)
		if !ok {
			continue
		}
		if !deepFound || score > bestDeep {
			bestDeep, deepFound = score, true
		}
		if run.exhausted() {
			break
		}
	}
	if !deepFound {
		// The next piece tops out from here; rate this surface by its own
		// merits so a dead end is still comparable.
		return immediate, after, true
	}
	return immediate + bestDeep, after, true
}
