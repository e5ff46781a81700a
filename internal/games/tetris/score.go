package tetris

// LockResult summarizes one locking event for the scoring engine.
type LockResult struct {
	Lines        int
	TSpin        TSpin
	PerfectClear bool
}

// ScoreSystem accumulates score, level, and the combo / back-to-back
// counters from lock events. It is driven entirely by the state machine.
type ScoreSystem struct {
	Score      int
	Level      int
	Lines      int
	Combo      int // consecutive clearing locks; 0 when broken
	BackToBack int // consecutive Tetris/T-spin clears; 0 when broken
}

// NewScoreSystem starts scoring at the given level.
func NewScoreSystem(startLevel int) ScoreSystem {
	return ScoreSystem{Level: startLevel}
}

// base line-clear points per tier, multiplied by level.
var lineClearPoints = [5]int{0, 100, 300, 500, 800}

// T-spin points by (kind, lines). Full T-spins outscore even a Tetris.
var tspinFullPoints = [4]int{400, 800, 1200, 1600}
var tspinMiniPoints = [3]int{100, 200, 400}

// perfect-clear bonus per lines cleared, on top of the line-clear points.
var perfectClearBonus = [5]int{0, 800, 1200, 1800, 2000}

// ApplyLock scores one lock event and returns the score delta. Combo and
// back-to-back state advance as a side effect; the level rises every ten
// cleared lines (but never below the starting level).
func (s *ScoreSystem) ApplyLock(res LockResult) int {
	delta := 0

	switch {
	case res.Lines == 0:
		// Spins with no lines still score; a non-clearing lock breaks combo.
		switch res.TSpin {
		case TSpinFull:
			delta += tspinFullPoints[0] * s.Level
		case TSpinMini:
			delta += tspinMiniPoints[0] * s.Level
		}
		s.Combo = 0
	default:
		base := 0
		switch res.TSpin {
		case TSpinFull:
			if res.Lines < len(tspinFullPoints) {
				base = tspinFullPoints[res.Lines]
			}
		case TSpinMini:
			if res.Lines < len(tspinMiniPoints) {
				base = tspinMiniPoints[res.Lines]
			}
		default:
			if res.Lines < len(lineClearPoints) {
				base = lineClearPoints[res.Lines]
			}
		}

		// Back-to-back: consecutive difficult clears (Tetris or any T-spin
		// clear) grant a 1.5x multiplier on the base points.
		difficult := res.Lines == 4 || res.TSpin != TSpinNone
		if difficult {
			s.BackToBack++
			if s.BackToBack > 1 {
				base = base * 3 / 2
			}
		} else {
			s.BackToBack = 0
		}

		delta += base * s.Level

		s.Combo++
		if s.Combo > 1 {
			delta += 50 * (s.Combo - 1) * s.Level
		}

		if res.PerfectClear && res.Lines < len(perfectClearBonus) {
			delta += perfectClearBonus[res.Lines] * s.Level
		}

		s.Lines += res.Lines
		if lvl := s.Lines/10 + 1; lvl > s.Level {
			s.Level = lvl
		}
	}

	s.Score += delta
	return delta
}

// AddSoftDrop awards one point per manually dropped row.
func (s *ScoreSystem) AddSoftDrop(rows int) {
	s.Score += rows
}

// AddHardDrop awards two points per hard-dropped row.
func (s *ScoreSystem) AddHardDrop(rows int) {
	s.Score += 2 * rows
}

// gravityFrames maps level to ticks per gravity row at 60 ticks/s,
// following the guideline curve.
func gravityFrames(level int) int {
	switch {
	case level <= 1:
		return 60
	case level == 2:
		return 48
	case level == 3:
		return 36
	case level == 4:
		return 28
	case level == 5:
		return 22
	case level == 6:
		return 16
	case level == 7:
		return 12
	case level == 8:
		return 8
	case level == 9:
		return 6
	case level <= 12:
		return 4
	case level <= 15:
		return 3
	case level <= 18:
		return 2
	default:
		return 1
	}
}
