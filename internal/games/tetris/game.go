package tetris

import (
	"fmt"
	"math/rand"
)

// Phase is the state-machine phase of a game.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLockDelay
	PhaseLocking
	PhaseLineClear
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLockDelay:
		return "lock-delay"
	case PhaseLocking:
		return "locking"
	case PhaseLineClear:
		return "line-clear"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Command is a player (or bot) input to the state machine. Commands that
// physics rejects are silent no-ops; Apply reports whether anything changed.
type Command int

const (
	CmdLeft Command = iota
	CmdRight
	CmdSoftDrop
	CmdHardDrop
	CmdRotateCW
	CmdRotateCCW
	CmdRotate180
	CmdHold
)

func (c Command) String() string {
	switch c {
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdSoftDrop:
		return "soft-drop"
	case CmdHardDrop:
		return "hard-drop"
	case CmdRotateCW:
		return "rotate-cw"
	case CmdRotateCCW:
		return "rotate-ccw"
	case CmdRotate180:
		return "rotate-180"
	case CmdHold:
		return "hold"
	default:
		return "unknown"
	}
}

// Game is the complete engine state for one run. It is driven by Tick (one
// call per fixed simulation step) and Apply (player commands between ticks).
// All randomness flows from the source given to NewGame, so the same seed
// and command sequence replays identically.
type Game struct {
	cfg   Config
	board *Board
	rand  Randomizer

	active   *Piece
	queue    []PieceType
	hold     *PieceType
	holdUsed bool

	phase         Phase
	gravityTicker int
	lockTicks     int
	lockResets    int

	// lastRotation and lastKick feed T-spin classification at lock time.
	lastRotation bool
	lastKick     int

	score  ScoreSystem
	spawns int
	events []Event
}

// NewGame validates the config and creates a game in the Spawning phase.
// The first piece enters the field on the first Tick.
func NewGame(cfg Config, rng *rand.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var rnd Randomizer
	switch cfg.Randomizer {
	case RandomizerUniform:
		rnd = NewUniformRandomizer(rng)
	default:
		rnd = NewBagRandomizer(rng)
	}

	g := &Game{
		cfg:   cfg,
		board: NewBoard(cfg.Width, cfg.Height, cfg.BufferRows),
		rand:  rnd,
		score: NewScoreSystem(cfg.StartLevel),
		phase: PhaseSpawning,
	}
	for i := 0; i < cfg.QueueSize; i++ {
		g.queue = append(g.queue, g.rand.Next())
	}
	return g, nil
}

// Config returns the configuration the game was created with.
func (g *Game) Config() Config { return g.cfg }

// Board exposes the playfield for rendering. Callers must not mutate it.
func (g *Game) Board() *Board { return g.board }

// Active returns the falling piece, if any.
func (g *Game) Active() (Piece, bool) {
	if g.active == nil {
		return Piece{}, false
	}
	return *g.active, true
}

// Queue returns a copy of the preview queue, next piece first.
func (g *Game) Queue() []PieceType {
	out := make([]PieceType, len(g.queue))
	copy(out, g.queue)
	return out
}

// HoldPiece returns the held piece, if any.
func (g *Game) HoldPiece() (PieceType, bool) {
	if g.hold == nil {
		return 0, false
	}
	return *g.hold, true
}

// HoldUsed reports whether hold has been spent for the current piece.
func (g *Game) HoldUsed() bool { return g.holdUsed }

// Phase returns the current state-machine phase.
func (g *Game) Phase() Phase { return g.phase }

// Over reports whether the game has ended.
func (g *Game) Over() bool { return g.phase == PhaseGameOver }

// Score returns the current scoring state.
func (g *Game) Score() ScoreSystem { return g.score }

// SpawnCount returns how many pieces have entered the field. The bot runner
// uses it to discard plans computed against an earlier piece.
func (g *Game) SpawnCount() int { return g.spawns }

// GhostRow returns the row the active piece would rest on if dropped
// straight down. The second return is false when no piece is active.
func (g *Game) GhostRow() (int, bool) {
	if g.active == nil {
		return 0, false
	}
	p := *g.active
	for g.board.IsValidPlacement(p.Shifted(1, 0)) {
		p = p.Shifted(1, 0)
	}
	return p.Row, true
}

// Tick advances the simulation by one fixed step.
func (g *Game) Tick() {
	switch g.phase {
	case PhaseSpawning:
		g.spawn()
	case PhaseFalling:
		g.gravityTicker++
		if g.gravityTicker >= g.cfg.gravityTicks(g.score.Level) {
			g.gravityTicker = 0
			if !g.moveActive(1, 0) {
				g.enterLockDelay()
			}
		}
	case PhaseLockDelay:
		// A reset that opened space below sends the piece back to Falling
		// inside Apply; here the timer only runs down.
		g.lockTicks++
		if g.lockTicks >= g.cfg.LockDelayTicks {
			g.lockActive()
		}
	case PhaseLineClear:
		g.phase = PhaseSpawning
	case PhaseLocking, PhaseGameOver:
	}
}

// Apply executes one command against the current state. It returns false
// when the command had no effect (wall in the way, hold already spent, no
// active piece). Rejected commands never mutate state.
func (g *Game) Apply(cmd Command) bool {
	if g.active == nil || g.phase == PhaseGameOver {
		return false
	}
	if g.phase != PhaseFalling && g.phase != PhaseLockDelay {
		return false
	}

	switch cmd {
	case CmdLeft:
		return g.shiftActive(0, -1)
	case CmdRight:
		return g.shiftActive(0, 1)
	case CmdSoftDrop:
		if g.moveActive(1, 0) {
			g.score.AddSoftDrop(1)
			g.backToFalling()
			return true
		}
		if g.phase == PhaseFalling {
			g.enterLockDelay()
		}
		return false
	case CmdHardDrop:
		rows := 0
		for g.board.IsValidPlacement(g.active.Shifted(1, 0)) {
			*g.active = g.active.Shifted(1, 0)
			rows++
		}
		if rows > 0 {
			g.lastRotation = false
		}
		g.score.AddHardDrop(rows)
		g.lockActive()
		return true
	case CmdRotateCW:
		return g.rotateActive(g.active.Rot.CW())
	case CmdRotateCCW:
		return g.rotateActive(g.active.Rot.CCW())
	case CmdRotate180:
		return g.rotateActive(g.active.Rot.Half())
	case CmdHold:
		return g.holdActive()
	default:
		return false
	}
}

// shiftActive handles the horizontal move commands, including the lock
// delay reset on success.
func (g *Game) shiftActive(dRow, dCol int) bool {
	if !g.moveActive(dRow, dCol) {
		return false
	}
	g.onSuccessfulMove()
	return true
}

// moveActive translates the active piece if the target placement is valid.
func (g *Game) moveActive(dRow, dCol int) bool {
	next := g.active.Shifted(dRow, dCol)
	if !g.board.IsValidPlacement(next) {
		return false
	}
	*g.active = next
	g.lastRotation = false
	g.emit(Event{Kind: EventPieceMoved, Piece: g.active.Type})
	return true
}

func (g *Game) rotateActive(to Rotation) bool {
	rotated, kick, ok := TryRotate(g.board, *g.active, to)
	if !ok {
		return false
	}
	*g.active = rotated
	g.lastRotation = true
	g.lastKick = kick
	g.emit(Event{Kind: EventPieceMoved, Piece: g.active.Type})
	g.onSuccessfulMove()
	return true
}

// onSuccessfulMove restarts the lock delay timer when the piece is sitting
// on a surface, up to the reset cap; past the cap the timer keeps running.
// A move that opens space below resumes normal falling.
func (g *Game) onSuccessfulMove() {
	if g.phase != PhaseLockDelay {
		return
	}
	if g.board.IsValidPlacement(g.active.Shifted(1, 0)) {
		g.backToFalling()
		return
	}
	if g.lockResets < g.cfg.MaxLockResets {
		g.lockResets++
		g.lockTicks = 0
	}
}

func (g *Game) backToFalling() {
	if g.phase == PhaseLockDelay && g.board.IsValidPlacement(g.active.Shifted(1, 0)) {
		g.phase = PhaseFalling
		g.gravityTicker = 0
	}
}

func (g *Game) enterLockDelay() {
	g.phase = PhaseLockDelay
	g.lockTicks = 0
	g.lockResets = 0
}

// holdActive swaps the active piece with the hold slot (or stashes it and
// spawns from the queue on first use). Hold is spent until the next lock.
func (g *Game) holdActive() bool {
	if g.holdUsed || g.phase != PhaseFalling {
		return false
	}

	stashed := g.active.Type
	var next PieceType
	if g.hold != nil {
		next = *g.hold
	} else {
		next = g.popQueue()
	}
	g.hold = &stashed
	g.holdUsed = true
	g.active = nil
	g.spawnPiece(next)
	return true
}

// spawn takes the next queue piece and places it at the spawn position.
func (g *Game) spawn() {
	g.spawnPiece(g.popQueue())
}

// SpawnPiece returns the spawn placement for a piece type on a field of
// the given width: spawn orientation, centered, inside the hidden buffer.
func SpawnPiece(t PieceType, width int) Piece {
	return NewPiece(t, spawnRow(t), width/2-1)
}

func (g *Game) spawnPiece(t PieceType) {
	p := SpawnPiece(t, g.cfg.Width)
	if !g.board.IsValidPlacement(p) {
		// Block-out: the spawn cells are already occupied.
		g.phase = PhaseGameOver
		g.active = nil
		g.emit(Event{Kind: EventGameOver, Piece: t})
		return
	}

	g.active = &p
	g.phase = PhaseFalling
	g.gravityTicker = 0
	g.lockTicks = 0
	g.lockResets = 0
	g.lastRotation = false
	g.lastKick = 0
	g.spawns++
	g.emit(Event{Kind: EventPieceSpawned, Piece: t})
}

// spawnRow places each piece so it occupies only the hidden buffer rows.
// The I and J shapes extend upward from their origin and need row 1.
func spawnRow(t PieceType) int {
	switch t {
	case PieceI, PieceJ:
		return 1
	default:
		return 0
	}
}

func (g *Game) popQueue() PieceType {
	t := g.queue[0]
	copy(g.queue, g.queue[1:])
	g.queue[len(g.queue)-1] = g.rand.Next()
	return t
}

// lockActive writes the active piece into the board, classifies the lock,
// clears lines, and scores the result.
func (g *Game) lockActive() {
	g.phase = PhaseLocking
	p := *g.active

	tspin := ClassifyTSpin(g.board, p, g.lastRotation, g.lastKick)
	if _, err := g.board.LockPiece(p); err != nil {
		// Every path into lockActive validated the placement already.
		panic(fmt.Sprintf("tetris: lock of validated piece failed: %v", err))
	}
	g.active = nil
	g.holdUsed = false

	// Lock-out: a piece that rests entirely inside the hidden buffer ends
	// the game.
	lockedOut := true
	for _, blk := range p.Blocks() {
		if blk.Row >= g.board.BufferRows() {
			lockedOut = false
			break
		}
	}
	if lockedOut {
		g.phase = PhaseGameOver
		g.emit(Event{Kind: EventGameOver, Piece: p.Type})
		return
	}

	cleared := g.board.ClearFullRows()
	res := LockResult{
		Lines:        cleared,
		TSpin:        tspin,
		PerfectClear: cleared > 0 && g.board.IsEmpty(),
	}
	delta := g.score.ApplyLock(res)

	g.emit(Event{Kind: EventPieceLocked, Piece: p.Type, TSpin: tspin})
	if cleared > 0 {
		g.emit(Event{Kind: EventLinesCleared, Piece: p.Type, Lines: cleared, ScoreDelta: delta})
		g.emit(Event{Kind: EventComboUpdated, Combo: g.score.Combo})
		if res.PerfectClear {
			g.emit(Event{Kind: EventPerfectClear, Lines: cleared, ScoreDelta: delta})
		}
		g.phase = PhaseLineClear
		return
	}
	g.phase = PhaseSpawning
}
