package bot

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// Evaluator scores a board surface after a hypothetical placement. Higher
// is better. The features follow the classic Dellacherie-style heuristics:
// aggregate column height, cleared lines, buried holes, surface bumpiness,
// the landing height of the placed piece, and the depth of the deepest
// well.
type Evaluator struct {
	weights Weights
}

// NewEvaluator creates an evaluator with the given weights.
func NewEvaluator(w Weights) *Evaluator {
	return &Evaluator{weights: w}
}

// Score rates a board as left behind by a placement. linesCleared is the
// clear count of that placement and landingRow the origin row the piece
// locked at (larger means deeper, which is safer).
func (e *Evaluator) Score(b *tetris.Board, linesCleared, landingRow int) float64 {
	heights := b.ColumnHeights()

	return e.weights.AggregateHeight*float64(sum(heights)) +
		e.weights.CompleteLines*float64(linesCleared) +
		e.weights.Holes*float64(countHoles(b, heights)) +
		e.weights.Bumpiness*float64(bumpiness(heights)) +
		e.weights.LandingHeight*float64(b.Rows()-landingRow) +
		e.weights.WellDepth*float64(deepestWell(heights))
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

// countHoles counts empty cells with at least one filled cell above them in
// the same column.
func countHoles(b *tetris.Board, heights []int) int {
	holes := 0
	for col := 0; col < b.Width(); col++ {
		top := b.Rows() - heights[col]
		for row := top; row < b.Rows(); row++ {
			if !b.CellAt(row, col).Filled() {
				holes++
			}
		}
	}
	return holes
}

// bumpiness sums the absolute height differences of adjacent columns.
func bumpiness(heights []int) int {
	total := 0
	for i := 0; i+1 < len(heights); i++ {
		total += core.Abs(heights[i] - heights[i+1])
	}
	return total
}

// deepestWell finds the deepest column strictly lower than both neighbors
// (the walls count as full-height neighbors).
func deepestWell(heights []int) int {
	deepest := 0
	for i, h := range heights {
		left := int(^uint(0) >> 1)
		right := left
		if i > 0 {
			left = heights[i-1]
		}
		if i+1 < len(heights) {
			right = heights[i+1]
		}
		depth := min(left, right) - h
		if depth > deepest {
			deepest = depth
		}
	}
	return deepest
}
