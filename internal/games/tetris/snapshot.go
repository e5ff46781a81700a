package tetris

import (
	"fmt"
	"strings"
)

// Snapshot is a deep copy of everything a planner needs: the field, the
// active piece, the preview queue, and the hold slot. The bot searches over
// snapshots so the live game is never mutated off the game loop.
type Snapshot struct {
	Board    *Board
	Active   Piece
	Queue    []PieceType
	Hold     *PieceType
	HoldUsed bool
	Level    int
	Spawn    int // SpawnCount at capture time, for staleness checks
}

// Snapshot captures the current state. It returns false when no piece is
// active (between spawns or after game over), in which case there is
// nothing to plan for.
func (g *Game) Snapshot() (Snapshot, bool) {
	if g.active == nil {
		return Snapshot{}, false
	}
	s := Snapshot{
		Board:    g.board.Clone(),
		Active:   *g.active,
		Queue:    g.Queue(),
		HoldUsed: g.holdUsed,
		Level:    g.score.Level,
		Spawn:    g.spawns,
	}
	if g.hold != nil {
		h := *g.hold
		s.Hold = &h
	}
	return s, true
}

// Fingerprint renders the full observable state as a string. Two games fed
// the same seed and command sequence produce identical fingerprints at
// every step, which the determinism tests rely on.
func (g *Game) Fingerprint() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "phase=%s score=%d lines=%d level=%d combo=%d b2b=%d",
		g.phase, g.score.Score, g.score.Lines, g.score.Level, g.score.Combo, g.score.BackToBack)
	if g.active != nil {
		fmt.Fprintf(&sb, " active=%s/%s@%d,%d", g.active.Type, g.active.Rot, g.active.Row, g.active.Col)
	}
	if g.hold != nil {
		fmt.Fprintf(&sb, " hold=%s", *g.hold)
	}
	sb.WriteString(" queue=")
	for _, t := range g.queue {
		sb.WriteString(t.String())
	}
	sb.WriteByte('\n')
	for row := 0; row < g.board.Rows(); row++ {
		for col := 0; col < g.board.Width(); col++ {
			if g.board.CellAt(row, col).Filled() {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
