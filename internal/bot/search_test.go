package bot

import (
	"errors"
	"testing"
	"time"

	"github.com/coder/quartz"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

func newTestSearch(t *testing.T, cfg SearchConfig) *Search {
	t.Helper()
	return NewSearch(NewEvaluator(DefaultWeights()), cfg, quartz.NewMock(t))
}

// tetrisWell fills the bottom rows except the rightmost column.
func tetrisWell(b *tetris.Board, rows int) {
	for r := b.Rows() - rows; r < b.Rows(); r++ {
		for col := 0; col < b.Width()-1; col++ {
			b.SetCell(r, col, tetris.Cell(tetris.PieceJ))
		}
	}
}

func TestPlanNoLegalMove(t *testing.T) {
	b := emptyBoard()
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Width(); col++ {
			b.SetCell(row, col, tetris.Cell(tetris.PieceI))
		}
	}
	snap := tetris.Snapshot{
		Board:    b,
		Active:   tetris.SpawnPiece(tetris.PieceT, b.Width()),
		HoldUsed: true,
	}

	s := newTestSearch(t, DefaultSearchConfig())
	if _, err := s.Plan(snap); !errors.Is(err, ErrNoLegalMove) {
		t.Fatalf("Expected ErrNoLegalMove, got %v", err)
	}
}

func TestPlanTakesTheTetris(t *testing.T) {
	b := emptyBoard()
	tetrisWell(b, 4)
	snap := tetris.Snapshot{
		Board:    b,
		Active:   tetris.SpawnPiece(tetris.PieceI, b.Width()),
		Queue:    []tetris.PieceType{tetris.PieceO},
		HoldUsed: true,
	}

	s := newTestSearch(t, DefaultSearchConfig())
	plan, err := s.Plan(snap)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	well := b.Width() - 1
	for _, blk := range plan.Placement.Target.Blocks() {
		if blk.Col != well {
			t.Fatalf("Best placement should fill the well, got block at col %d", blk.Col)
		}
	}
	if plan.UseHold {
		t.Error("Hold is spent and must not be planned")
	}
}

func TestPlanUsesHold(t *testing.T) {
	b := emptyBoard()
	tetrisWell(b, 4)
	// The active S can only damage the surface; holding brings out the I.
	snap := tetris.Snapshot{
		Board:  b,
		Active: tetris.SpawnPiece(tetris.PieceS, b.Width()),
		Queue:  []tetris.PieceType{tetris.PieceI},
	}

	cfg := DefaultSearchConfig()
	cfg.Depth = 0
	s := newTestSearch(t, cfg)

	plan, err := s.Plan(snap)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if !plan.UseHold {
		t.Fatal("Expected the plan to hold for the I piece")
	}
	if path := plan.Path(); path[0] != tetris.CmdHold {
		t.Errorf("Plan path should start with hold, got %s", path[0])
	}
}

func TestPlanDeterministic(t *testing.T) {
	b := emptyBoard()
	b.SetCell(b.Rows()-1, 0, tetris.Cell(tetris.PieceL))
	snap := tetris.Snapshot{
		Board:  b,
		Active: tetris.SpawnPiece(tetris.PieceT, b.Width()),
		Queue:  []tetris.PieceType{tetris.PieceZ, tetris.PieceL},
	}

	s := newTestSearch(t, DefaultSearchConfig())
	first, err := s.Plan(snap)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := s.Plan(snap)
		if err != nil {
			t.Fatalf("Replan failed: %v", err)
		}
		if again.Placement.Target != first.Placement.Target || again.UseHold != first.UseHold {
			t.Fatalf("Plan diverged on run %d: %+v vs %+v", i, again.Placement.Target, first.Placement.Target)
		}
	}
}

func TestPlanNodeBudget(t *testing.T) {
	snap := tetris.Snapshot{
		Board:    emptyBoard(),
		Active:   tetris.SpawnPiece(tetris.PieceT, 10),
		Queue:    []tetris.PieceType{tetris.PieceI},
		HoldUsed: true,
	}

	cfg := SearchConfig{Depth: 1, MaxNodes: 3, TimeBudget: time.Second}
	s := newTestSearch(t, cfg)

	plan, err := s.Plan(snap)
	if err != nil {
		t.Fatalf("A tight budget should still produce a plan, got %v", err)
	}
	if plan.Nodes > cfg.MaxNodes+1 {
		t.Errorf("Expanded %d nodes, budget was %d", plan.Nodes, cfg.MaxNodes)
	}
	if len(plan.Placement.Path) == 0 {
		t.Error("Budgeted plan should still carry a path")
	}
}
