package bot

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

func newRunnerForTest() *Runner {
	return NewRunner(NewSearch(NewEvaluator(DefaultWeights()), DefaultSearchConfig(), nil))
}

func pollUntil(t *testing.T, r *Runner, spawn int) (Plan, bool) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatal("Timed out waiting for the runner")
		default:
		}
		if plan, ok, err := r.Poll(spawn); ok {
			if err != nil {
				t.Fatalf("Plan failed: %v", err)
			}
			return plan, true
		}
		if !r.Busy() {
			return Plan{}, false
		}
		time.Sleep(time.Millisecond)
	}
}

func TestRunnerDeliversPlan(t *testing.T) {
	r := newRunnerForTest()
	snap := tetris.Snapshot{
		Board:    emptyBoard(),
		Active:   tetris.SpawnPiece(tetris.PieceL, 10),
		Queue:    []tetris.PieceType{tetris.PieceT},
		HoldUsed: true,
		Spawn:    1,
	}

	r.Submit(snap)
	if !r.Busy() {
		t.Fatal("Runner should be busy after a submit")
	}

	plan, ok := pollUntil(t, r, 1)
	if !ok {
		t.Fatal("Expected a plan for the submitted spawn")
	}
	if len(plan.Placement.Path) == 0 {
		t.Error("Delivered plan should carry a path")
	}
	if r.Busy() {
		t.Error("Runner should be idle after delivery")
	}
}

func TestRunnerDiscardsStaleResult(t *testing.T) {
	r := newRunnerForTest()
	snap := tetris.Snapshot{
		Board:    emptyBoard(),
		Active:   tetris.SpawnPiece(tetris.PieceL, 10),
		Queue:    []tetris.PieceType{tetris.PieceT},
		HoldUsed: true,
		Spawn:    1,
	}

	r.Submit(snap)

	// The piece locked before the result arrived; polling for the next
	// spawn must never surface the stale plan.
	if _, ok := pollUntil(t, r, 2); ok {
		t.Error("Stale plan should be discarded, not delivered")
	}
}
