package tetris

// EventKind tags an engine event.
type EventKind int

const (
	EventPieceSpawned EventKind = iota
	EventPieceMoved
	EventPieceLocked
	EventLinesCleared
	EventComboUpdated
	EventPerfectClear
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventPieceSpawned:
		return "piece-spawned"
	case EventPieceMoved:
		return "piece-moved"
	case EventPieceLocked:
		return "piece-locked"
	case EventLinesCleared:
		return "lines-cleared"
	case EventComboUpdated:
		return "combo-updated"
	case EventPerfectClear:
		return "perfect-clear"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event is emitted by the state machine and consumed by the platform layer
// (HUD flashes, logging). Fields are populated per kind: Lines/ScoreDelta
// for lines-cleared, Combo for combo-updated, TSpin for piece-locked.
type Event struct {
	Kind       EventKind
	Piece      PieceType
	Lines      int
	ScoreDelta int
	Combo      int
	TSpin      TSpin
}

func (g *Game) emit(ev Event) {
	g.events = append(g.events, ev)
}

// DrainEvents returns the events emitted since the last drain and clears
// the internal buffer. The platform calls this once per step.
func (g *Game) DrainEvents() []Event {
	evs := g.events
	g.events = nil
	return evs
}
