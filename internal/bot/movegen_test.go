package bot

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

func TestGeneratePlacementsOPiece(t *testing.T) {
	b := emptyBoard()
	start := tetris.SpawnPiece(tetris.PieceO, b.Width())

	placements := GeneratePlacements(b, start)

	// The O piece has one shape and nine resting columns on a 10-wide field.
	if len(placements) != 9 {
		t.Fatalf("Got %d placements for O, want 9", len(placements))
	}
	for _, pl := range placements {
		if b.IsValidPlacement(pl.Target.Shifted(1, 0)) {
			t.Errorf("Placement at col %d is floating", pl.Target.Col)
		}
	}
}

func TestGeneratePlacementsIPiece(t *testing.T) {
	b := emptyBoard()
	start := tetris.SpawnPiece(tetris.PieceI, b.Width())

	placements := GeneratePlacements(b, start)

	// 7 horizontal positions plus 10 vertical ones; the two orientations of
	// each pair cover the same cells and are deduplicated.
	if len(placements) != 17 {
		t.Fatalf("Got %d placements for I, want 17", len(placements))
	}
}

func TestGeneratePlacementsUnreachableStart(t *testing.T) {
	b := emptyBoard()
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Width(); col++ {
			b.SetCell(row, col, tetris.Cell(tetris.PieceI))
		}
	}
	start := tetris.SpawnPiece(tetris.PieceT, b.Width())

	if got := GeneratePlacements(b, start); got != nil {
		t.Errorf("Blocked spawn should yield no placements, got %d", len(got))
	}
}

func TestPathsReplayToTarget(t *testing.T) {
	b := emptyBoard()
	for _, typ := range tetris.AllPieceTypes() {
		start := tetris.SpawnPiece(typ, b.Width())
		for _, pl := range GeneratePlacements(b, start) {
			piece := start
			for _, cmd := range pl.Path {
				if cmd == tetris.CmdHardDrop {
					for b.IsValidPlacement(piece.Shifted(1, 0)) {
						piece = piece.Shifted(1, 0)
					}
					continue
				}
				next, ok := applyMove(b, piece, cmd)
				if !ok {
					t.Fatalf("%s: path step %s rejected at %+v", typ, cmd, piece)
				}
				piece = next
			}
			if sortedBlocks(piece) != sortedBlocks(pl.Target) {
				t.Errorf("%s: path lands at %+v, target %+v", typ, piece, pl.Target)
			}
		}
	}
}

func TestGeneratePlacementsFindsTuck(t *testing.T) {
	b := emptyBoard()
	bottom := b.Rows() - 1
	// A shelf over the two leftmost columns: the only way underneath is to
	// drop beside it and slide left.
	b.SetCell(bottom-2, 0, tetris.Cell(tetris.PieceL))
	b.SetCell(bottom-2, 1, tetris.Cell(tetris.PieceL))

	start := tetris.SpawnPiece(tetris.PieceO, b.Width())
	placements := GeneratePlacements(b, start)

	var tuck *Placement
	for i := range placements {
		pl := &placements[i]
		if pl.Target.Rot == tetris.RotSpawn && pl.Target.Col == 0 && pl.Target.Row == bottom-1 {
			tuck = pl
			break
		}
	}
	if tuck == nil {
		t.Fatal("Expected a placement tucked under the shelf")
	}

	soft := false
	for _, cmd := range tuck.Path {
		if cmd == tetris.CmdSoftDrop {
			soft = true
		}
	}
	if !soft {
		t.Error("Tucked placement should need soft drops in its path")
	}
}
