package bot

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

func emptyBoard() *tetris.Board {
	cfg := tetris.DefaultConfig()
	return tetris.NewBoard(cfg.Width, cfg.Height, cfg.BufferRows)
}

func TestCountHoles(t *testing.T) {
	b := emptyBoard()
	bottom := b.Rows() - 1

	// A column with two buried empties.
	b.SetCell(bottom-3, 2, tetris.Cell(tetris.PieceI))
	b.SetCell(bottom-1, 2, tetris.Cell(tetris.PieceI))

	heights := b.ColumnHeights()
	if got := countHoles(b, heights); got != 2 {
		t.Errorf("countHoles = %d, want 2", got)
	}
}

func TestBumpiness(t *testing.T) {
	tests := []struct {
		name    string
		heights []int
		want    int
	}{
		{"flat", []int{3, 3, 3, 3}, 0},
		{"staircase", []int{1, 2, 3, 4}, 3},
		{"spiky", []int{0, 5, 0, 5}, 15},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := bumpiness(tc.heights); got != tc.want {
				t.Errorf("bumpiness(%v) = %d, want %d", tc.heights, got, tc.want)
			}
		})
	}
}

func TestDeepestWell(t *testing.T) {
	tests := []struct {
		name    string
		heights []int
		want    int
	}{
		{"flat", []int{2, 2, 2}, 0},
		{"center well", []int{4, 0, 4}, 4},
		{"edge well", []int{0, 3, 3}, 3},
		{"shallow dips", []int{2, 1, 2, 1, 2}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := deepestWell(tc.heights); got != tc.want {
				t.Errorf("deepestWell(%v) = %d, want %d", tc.heights, got, tc.want)
			}
		})
	}
}

func TestScorePrefersFlatSurfaces(t *testing.T) {
	eval := NewEvaluator(DefaultWeights())

	flat := emptyBoard()
	for col := 0; col < flat.Width(); col++ {
		flat.SetCell(flat.Rows()-1, col, tetris.Cell(tetris.PieceI))
	}

	tower := emptyBoard()
	for i := 0; i < flat.Width(); i++ {
		tower.SetCell(tower.Rows()-1-i, 4, tetris.Cell(tetris.PieceI))
	}

	bottom := flat.Rows() - 1
	if eval.Score(flat, 0, bottom) <= eval.Score(tower, 0, bottom) {
		t.Error("A flat surface should outscore a tower of the same cell count")
	}
}

func TestScoreRewardsClears(t *testing.T) {
	eval := NewEvaluator(DefaultWeights())
	b := emptyBoard()
	bottom := b.Rows() - 1

	with := eval.Score(b, 1, bottom)
	without := eval.Score(b, 0, bottom)
	if with <= without {
		t.Errorf("Clearing a line should raise the score: %f vs %f", with, without)
	}
}
