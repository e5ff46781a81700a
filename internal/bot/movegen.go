package bot

import (
	"sort"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// Placement is one reachable resting position for a piece, together with
// the command sequence that steers the piece there from its current
// position. The path always ends with a hard drop, which locks the piece
// once it is in place.
type Placement struct {
	Target tetris.Piece
	Path   []tetris.Command
}

type moveState struct {
	rot tetris.Rotation
	row int
	col int
}

type moveEdge struct {
	from moveState
	cmd  tetris.Command
}

// moveCommands are the edges the generator explores from every state, in a
// fixed order so generation is deterministic.
var moveCommands = []tetris.Command{
	tetris.CmdLeft,
	tetris.CmdRight,
	tetris.CmdRotateCW,
	tetris.CmdRotateCCW,
	tetris.CmdRotate180,
	tetris.CmdSoftDrop,
}

// GeneratePlacements explores every position the piece can reach with
// shifts, rotations, and downward steps, and returns the resting positions.
// Breadth-first search gives each placement a shortest command path, so
// tucks and spins under overhangs are found as well. Placements whose final
// cells coincide (symmetric rotations of S, Z, and I) are reported once.
func GeneratePlacements(b *tetris.Board, start tetris.Piece) []Placement {
	if !b.IsValidPlacement(start) {
		return nil
	}

	startState := moveState{rot: start.Rot, row: start.Row, col: start.Col}
	parent := map[moveState]moveEdge{startState: {}}
	queue := []moveState{startState}
	seenCells := map[[4]tetris.Offset]bool{}
	var placements []Placement

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		piece := tetris.Piece{Type: start.Type, Rot: cur.rot, Row: cur.row, Col: cur.col}

		for _, cmd := range moveCommands {
			next, ok := applyMove(b, piece, cmd)
			if !ok {
				continue
			}
			state := moveState{rot: next.Rot, row: next.Row, col: next.Col}
			if _, visited := parent[state]; visited {
				continue
			}
			parent[state] = moveEdge{from: cur, cmd: cmd}
			queue = append(queue, state)
		}

		// A state with no room below is a resting position.
		if b.IsValidPlacement(piece.Shifted(1, 0)) {
			continue
		}
		cells := sortedBlocks(piece)
		if seenCells[cells] {
			continue
		}
		seenCells[cells] = true
		placements = append(placements, Placement{
			Target: piece,
			Path:   reconstructPath(parent, startState, cur),
		})
	}
	return placements
}

// applyMove mirrors the engine's handling of one command on a free piece.
func applyMove(b *tetris.Board, p tetris.Piece, cmd tetris.Command) (tetris.Piece, bool) {
	switch cmd {
	case tetris.CmdLeft:
		next := p.Shifted(0, -1)
		return next, b.IsValidPlacement(next)
	case tetris.CmdRight:
		next := p.Shifted(0, 1)
		return next, b.IsValidPlacement(next)
	case tetris.CmdSoftDrop:
		next := p.Shifted(1, 0)
		return next, b.IsValidPlacement(next)
	case tetris.CmdRotateCW:
		next, _, ok := tetris.TryRotate(b, p, p.Rot.CW())
		return next, ok
	case tetris.CmdRotateCCW:
		next, _, ok := tetris.TryRotate(b, p, p.Rot.CCW())
		return next, ok
	case tetris.CmdRotate180:
		next, _, ok := tetris.TryRotate(b, p, p.Rot.Half())
		return next, ok
	default:
		return p, false
	}
}

func sortedBlocks(p tetris.Piece) [4]tetris.Offset {
	cells := p.Blocks()
	sort.Slice(cells[:], func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells
}

// reconstructPath walks the parent edges back to the start and appends the
// locking hard drop.
func reconstructPath(parent map[moveState]moveEdge, start, end moveState) []tetris.Command {
	var reversed []tetris.Command
	for cur := end; cur != start; {
		edge := parent[cur]
		reversed = append(reversed, edge.cmd)
		cur = edge.from
	}

	path := make([]tetris.Command, 0, len(reversed)+1)
	for i := len(reversed) - 1; i >= 0; i-- {
		path = append(path, reversed[i])
	}
	return append(path, tetris.CmdHardDrop)
}
