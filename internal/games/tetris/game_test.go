package tetris

import (
	"math/rand"
	"testing"
)

func newGameForTest(t *testing.T, seed int64) *Game {
	t.Helper()
	g, err := NewGame(DefaultConfig(), rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	g.Tick() // first tick spawns the first piece
	return g
}

// forceActive swaps in a known piece so scenarios do not depend on the
// randomizer.
func forceActive(g *Game, p Piece) {
	g.active = &p
	g.lastRotation = false
}

func TestNewGameValidatesConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 2
	if _, err := NewGame(cfg, rand.New(rand.NewSource(1))); err == nil {
		t.Error("NewGame should reject an invalid config")
	}

	cfg = DefaultConfig()
	cfg.KickTable = "akira"
	if _, err := NewGame(cfg, rand.New(rand.NewSource(1))); err == nil {
		t.Error("NewGame should reject an unknown kick table")
	}

	cfg = DefaultConfig()
	cfg.GravityFrames = []int{60, 0}
	if _, err := NewGame(cfg, rand.New(rand.NewSource(1))); err == nil {
		t.Error("NewGame should reject a non-positive gravity interval")
	}
}

func TestSpawnPositions(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBoard(cfg.Width, cfg.Height, cfg.BufferRows)
	for _, typ := range AllPieceTypes() {
		p := NewPiece(typ, spawnRow(typ), cfg.Width/2-1)
		if !b.IsValidPlacement(p) {
			t.Errorf("%s: spawn placement invalid", typ)
		}
		for _, blk := range p.Blocks() {
			if blk.Row >= cfg.BufferRows {
				t.Errorf("%s: spawn block at row %d leaks below the buffer", typ, blk.Row)
			}
		}
	}
}

func TestHardDropScenario(t *testing.T) {
	g := newGameForTest(t, 1)
	forceActive(g, Piece{Type: PieceO, Rot: RotSpawn, Row: 0, Col: 4})

	if !g.Apply(CmdHardDrop) {
		t.Fatal("Hard drop should always succeed with an active piece")
	}

	bottom := g.board.Rows() - 1
	for _, cell := range [][2]int{{bottom, 4}, {bottom, 5}, {bottom - 1, 4}, {bottom - 1, 5}} {
		if !g.board.CellAt(cell[0], cell[1]).Filled() {
			t.Errorf("Cell (%d,%d) should be filled after the drop", cell[0], cell[1])
		}
	}
	if g.score.Score != 40 {
		t.Errorf("Score = %d, want 40 (two points per dropped row)", g.score.Score)
	}
	if g.phase != PhaseSpawning {
		t.Errorf("Phase = %s after a non-clearing lock, want spawning", g.phase)
	}
	if g.active != nil {
		t.Error("Active piece should be gone after locking")
	}
}

func TestSingleClearScenario(t *testing.T) {
	g := newGameForTest(t, 1)
	fillRow(g.board, g.board.Rows()-1, 4, 5)
	forceActive(g, Piece{Type: PieceO, Rot: RotSpawn, Row: 0, Col: 4})
	g.DrainEvents()

	g.Apply(CmdHardDrop)

	if g.score.Lines != 1 {
		t.Fatalf("Lines = %d, want 1", g.score.Lines)
	}
	// 40 hard-drop points plus a level-1 single.
	if g.score.Score != 140 {
		t.Errorf("Score = %d, want 140", g.score.Score)
	}
	if g.score.Combo != 1 {
		t.Errorf("Combo = %d, want 1", g.score.Combo)
	}
	if g.phase != PhaseLineClear {
		t.Errorf("Phase = %s, want line-clear", g.phase)
	}
	// The O's top half shifts down onto the bottom row.
	if got := g.board.CountFilled(); got != 2 {
		t.Errorf("Filled cells = %d after clear, want 2", got)
	}

	kinds := map[EventKind]bool{}
	for _, ev := range g.DrainEvents() {
		kinds[ev.Kind] = true
	}
	if !kinds[EventPieceLocked] || !kinds[EventLinesCleared] || !kinds[EventComboUpdated] {
		t.Errorf("Missing lock/clear events, got %v", kinds)
	}
	if kinds[EventPerfectClear] {
		t.Error("Partial clear must not report a perfect clear")
	}
}

func TestPerfectClearScenario(t *testing.T) {
	g := newGameForTest(t, 1)
	fillRow(g.board, g.board.Rows()-1, 3, 4, 5, 6)
	forceActive(g, Piece{Type: PieceI, Rot: RotSpawn, Row: 1, Col: 4})

	g.Apply(CmdHardDrop)

	if !g.board.IsEmpty() {
		t.Fatal("Board should be empty after the clear")
	}
	// 40 hard-drop points plus a single with the perfect-clear bonus.
	if g.score.Score != 40+100+800 {
		t.Errorf("Score = %d, want 940", g.score.Score)
	}

	perfect := false
	for _, ev := range g.DrainEvents() {
		if ev.Kind == EventPerfectClear {
			perfect = true
		}
	}
	if !perfect {
		t.Error("Expected a perfect-clear event")
	}
}

func TestSoftDropMovesAndScores(t *testing.T) {
	g := newGameForTest(t, 1)
	forceActive(g, Piece{Type: PieceT, Rot: RotSpawn, Row: 0, Col: 4})

	if !g.Apply(CmdSoftDrop) {
		t.Fatal("Soft drop on an open column should succeed")
	}
	if g.active.Row != 1 {
		t.Errorf("Row = %d after soft drop, want 1", g.active.Row)
	}
	if g.score.Score != 1 {
		t.Errorf("Score = %d, want 1", g.score.Score)
	}
}

func TestSoftDropOnFloorStartsLockDelay(t *testing.T) {
	g := newGameForTest(t, 1)
	forceActive(g, Piece{Type: PieceO, Rot: RotSpawn, Row: g.board.Rows() - 2, Col: 4})

	if g.Apply(CmdSoftDrop) {
		t.Fatal("Soft drop into the floor should be rejected")
	}
	if g.phase != PhaseLockDelay {
		t.Errorf("Phase = %s, want lock-delay", g.phase)
	}
}

func TestGravityDescent(t *testing.T) {
	g := newGameForTest(t, 1)
	start := g.active.Row

	for i := 0; i < gravityFrames(1)-1; i++ {
		g.Tick()
	}
	if g.active.Row != start {
		t.Fatalf("Piece moved after %d ticks, gravity too fast", gravityFrames(1)-1)
	}
	g.Tick()
	if g.active.Row != start+1 {
		t.Errorf("Row = %d after one gravity interval, want %d", g.active.Row, start+1)
	}
}

func TestCustomGravityCurve(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GravityFrames = []int{2}
	g, err := NewGame(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	g.Tick() // spawn
	start := g.active.Row

	g.Tick()
	if g.active.Row != start {
		t.Fatal("Piece fell after one tick, curve says every second tick")
	}
	g.Tick()
	if g.active.Row != start+1 {
		t.Errorf("Row = %d after two ticks, want %d", g.active.Row, start+1)
	}
}

func TestGravityCurveLastEntryRepeats(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GravityFrames = []int{10, 6}

	if got := cfg.gravityTicks(1); got != 10 {
		t.Errorf("gravityTicks(1) = %d, want 10", got)
	}
	if got := cfg.gravityTicks(2); got != 6 {
		t.Errorf("gravityTicks(2) = %d, want 6", got)
	}
	if got := cfg.gravityTicks(9); got != 6 {
		t.Errorf("gravityTicks(9) = %d, want the last entry 6", got)
	}

	cfg.GravityFrames = nil
	if got := cfg.gravityTicks(1); got != gravityFrames(1) {
		t.Errorf("gravityTicks(1) = %d without a curve, want the built-in %d", got, gravityFrames(1))
	}
}

func TestRejectedMoveIsNoOp(t *testing.T) {
	g := newGameForTest(t, 1)
	forceActive(g, Piece{Type: PieceO, Rot: RotSpawn, Row: 10, Col: 0})
	g.DrainEvents()
	before := g.Fingerprint()

	if g.Apply(CmdLeft) {
		t.Fatal("Move into the wall should be rejected")
	}
	if g.Fingerprint() != before {
		t.Error("Rejected command must not mutate any state")
	}
	if len(g.DrainEvents()) != 0 {
		t.Error("Rejected command must not emit events")
	}
}

func TestLockDelayResetCap(t *testing.T) {
	g := newGameForTest(t, 1)
	cfg := g.Config()
	forceActive(g, Piece{Type: PieceO, Rot: RotSpawn, Row: g.board.Rows() - 2, Col: 4})

	// Ground the piece.
	g.Apply(CmdSoftDrop)
	if g.phase != PhaseLockDelay {
		t.Fatal("Piece on the floor should be in lock delay")
	}

	// Wiggle forever: each successful move resets the timer until the cap,
	// after which the timer runs out regardless.
	lockedAt := -1
	for i := 0; i < 4*cfg.LockDelayTicks; i++ {
		if i%2 == 0 {
			g.Apply(CmdLeft)
		} else {
			g.Apply(CmdRight)
		}
		g.Tick()
		if g.SpawnCount() >= 2 {
			lockedAt = i
			break
		}
	}

	if lockedAt < 0 {
		t.Fatal("Piece never locked despite the reset cap")
	}
	if lockedAt < cfg.MaxLockResets {
		t.Errorf("Locked after %d moves, resets should have extended past %d", lockedAt, cfg.MaxLockResets)
	}
	if lockedAt > cfg.MaxLockResets+cfg.LockDelayTicks+2 {
		t.Errorf("Locked after %d ticks, cap should bound it near %d",
			lockedAt, cfg.MaxLockResets+cfg.LockDelayTicks)
	}
}

func TestMoveOffLedgeResumesFalling(t *testing.T) {
	g := newGameForTest(t, 1)
	bottom := g.board.Rows() - 1
	// A single stack cell under the piece; moving right clears the ledge.
	g.board.SetCell(bottom, 4, Cell(PieceI))
	forceActive(g, Piece{Type: PieceO, Rot: RotSpawn, Row: bottom - 2, Col: 4})

	g.Apply(CmdSoftDrop) // blocked by the stack cell
	if g.phase != PhaseLockDelay {
		t.Fatal("Piece resting on the stack should be in lock delay")
	}

	g.Apply(CmdRight)
	if g.phase != PhaseFalling {
		t.Errorf("Phase = %s after moving off the ledge, want falling", g.phase)
	}
}

func TestHoldSwap(t *testing.T) {
	g := newGameForTest(t, 42)
	first := g.active.Type

	if !g.Apply(CmdHold) {
		t.Fatal("First hold should succeed")
	}
	held, ok := g.HoldPiece()
	if !ok || held != first {
		t.Fatalf("Hold slot = %v, want %s", held, first)
	}
	if g.active == nil {
		t.Fatal("Hold should spawn a replacement piece")
	}
	if g.Apply(CmdHold) {
		t.Error("Second hold before locking should be rejected")
	}

	// Lock the replacement; hold becomes available again and swaps back.
	g.Apply(CmdHardDrop)
	g.Tick() // spawn next piece
	if g.active == nil {
		t.Fatal("Expected a piece after respawn")
	}
	if !g.Apply(CmdHold) {
		t.Fatal("Hold should be available again after a lock")
	}
	if g.active.Type != first {
		t.Errorf("Swapped-in piece = %s, want the originally held %s", g.active.Type, first)
	}
}

func TestQueueRefills(t *testing.T) {
	g := newGameForTest(t, 7)
	size := g.Config().QueueSize

	for i := 0; i < 5; i++ {
		if len(g.Queue()) != size {
			t.Fatalf("Queue length = %d, want %d", len(g.Queue()), size)
		}
		g.Apply(CmdHardDrop)
		g.Tick()
	}
}

func TestBlockOutEndsGame(t *testing.T) {
	cfg := DefaultConfig()
	g, err := NewGame(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	for row := 0; row < 4; row++ {
		fillRow(g.board, row)
	}

	g.Tick()

	if !g.Over() {
		t.Fatal("Spawning into a filled area should end the game")
	}
	if g.Apply(CmdLeft) {
		t.Error("Commands after game over should be rejected")
	}

	over := false
	for _, ev := range g.DrainEvents() {
		if ev.Kind == EventGameOver {
			over = true
		}
	}
	if !over {
		t.Error("Expected a game-over event")
	}
}

func TestLockOutEndsGame(t *testing.T) {
	g := newGameForTest(t, 1)
	// Stack reaching the buffer: the piece rests entirely in hidden rows.
	for row := g.board.BufferRows(); row < g.board.Rows(); row++ {
		fillRow(g.board, row, 0)
	}
	forceActive(g, Piece{Type: PieceO, Rot: RotSpawn, Row: 0, Col: 4})

	g.Apply(CmdHardDrop)

	if !g.Over() {
		t.Error("A piece locking fully above the field should end the game")
	}
}

func TestGhostRow(t *testing.T) {
	g := newGameForTest(t, 1)
	forceActive(g, Piece{Type: PieceO, Rot: RotSpawn, Row: 0, Col: 4})

	ghost, ok := g.GhostRow()
	if !ok {
		t.Fatal("GhostRow should report a position for an active piece")
	}
	if ghost != g.board.Rows()-2 {
		t.Errorf("Ghost row = %d, want %d", ghost, g.board.Rows()-2)
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	g := newGameForTest(t, 5)
	snap, ok := g.Snapshot()
	if !ok {
		t.Fatal("Snapshot should capture an active piece")
	}

	snap.Board.SetCell(10, 4, Cell(PieceZ))
	if g.board.CellAt(10, 4).Filled() {
		t.Error("Mutating the snapshot board must not touch the game")
	}
	if snap.Active != *g.active {
		t.Errorf("Snapshot active = %+v, want %+v", snap.Active, *g.active)
	}
	if len(snap.Queue) != g.Config().QueueSize {
		t.Errorf("Snapshot queue length = %d, want %d", len(snap.Queue), g.Config().QueueSize)
	}
}

func TestDeterministicReplay(t *testing.T) {
	// Two games with the same seed and command script stay identical.
	script := func(g *Game, tick int) {
		switch {
		case tick%43 == 0:
			g.Apply(CmdHardDrop)
		case tick%7 == 0:
			g.Apply(CmdLeft)
		case tick%11 == 0:
			g.Apply(CmdRotateCW)
		case tick%13 == 0:
			g.Apply(CmdSoftDrop)
		case tick%17 == 0:
			g.Apply(CmdRight)
		case tick%29 == 0:
			g.Apply(CmdHold)
		}
	}

	g1 := newGameForTest(t, 12345)
	g2 := newGameForTest(t, 12345)

	for tick := 1; tick <= 900; tick++ {
		script(g1, tick)
		script(g2, tick)
		g1.Tick()
		g2.Tick()

		if tick%100 == 0 {
			if a, b := g1.Fingerprint(), g2.Fingerprint(); a != b {
				t.Fatalf("States diverged at tick %d:\n%s\nvs\n%s", tick, a, b)
			}
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	g1 := newGameForTest(t, 1)
	g2 := newGameForTest(t, 2)

	same := true
	for i := 0; i < 10 && same; i++ {
		if g1.Queue()[i%g1.Config().QueueSize] != g2.Queue()[i%g2.Config().QueueSize] {
			same = false
		}
		g1.Apply(CmdHardDrop)
		g2.Apply(CmdHardDrop)
		g1.Tick()
		g2.Tick()
		if g1.active != nil && g2.active != nil && g1.active.Type != g2.active.Type {
			same = false
		}
	}
	if same {
		t.Error("Different seeds produced identical piece sequences")
	}
}
