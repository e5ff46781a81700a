package tetris

// SRS wall kicks. Each (from, to) transition maps to an ordered list of
// offsets; the first offset that yields a valid placement wins. The zero
// offset (basic rotation) is always first. The I piece has its own table,
// the O piece never displaces, and the remaining five share one table.

type kickKey struct {
	from, to Rotation
}

var kicksJLSTZ = map[kickKey][]Offset{
	{RotSpawn, RotRight}:   {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{RotRight, RotSpawn}:   {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{RotRight, RotReverse}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{RotReverse, RotRight}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{RotReverse, RotLeft}:  {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{RotLeft, RotReverse}:  {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{RotLeft, RotSpawn}:    {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{RotSpawn, RotLeft}:    {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
}

var kicksI = map[kickKey][]Offset{
	{RotSpawn, RotRight}:   {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	{RotRight, RotSpawn}:   {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{RotRight, RotReverse}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{RotReverse, RotRight}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{RotReverse, RotLeft}:  {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{RotLeft, RotReverse}:  {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	{RotLeft, RotSpawn}:    {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{RotSpawn, RotLeft}:    {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
}

// 180 rotations use a short nudge list rather than full SRS data.
var kicks180 = []Offset{{0, 0}, {-1, 0}, {1, 0}, {0, 1}, {0, -1}}

func kickOffsets(t PieceType, from, to Rotation) []Offset {
	if to == from.Half() {
		return kicks180
	}
	switch t {
	case PieceO:
		return []Offset{{0, 0}}
	case PieceI:
		return kicksI[kickKey{from, to}]
	default:
		return kicksJLSTZ[kickKey{from, to}]
	}
}

// TryRotate attempts to rotate the piece to the given orientation on the
// board, walking the kick table in order. On success it returns the kicked
// piece and the index of the kick that applied (0 means no displacement).
// On failure ok is false and the piece is unchanged.
func TryRotate(b *Board, p Piece, to Rotation) (rotated Piece, kickIndex int, ok bool) {
	turned := p.WithRotation(to)
	for i, off := range kickOffsets(p.Type, p.Rot, to) {
		candidate := turned.Shifted(off.Row, off.Col)
		if b.IsValidPlacement(candidate) {
			return candidate, i, true
		}
	}
	return p, 0, false
}

// TSpin classifies a T-piece lock.
type TSpin int

const (
	TSpinNone TSpin = iota
	TSpinMini
	TSpinFull
)

func (t TSpin) String() string {
	switch t {
	case TSpinMini:
		return "mini"
	case TSpinFull:
		return "full"
	default:
		return "none"
	}
}

// frontCorners gives, per orientation, the two diagonal cells on the side
// the T points toward (the side with the nub).
var frontCorners = [rotationCount][2]Offset{
	RotSpawn:   {{1, -1}, {1, 1}},
	RotRight:   {{-1, 1}, {1, 1}},
	RotReverse: {{-1, -1}, {-1, 1}},
	RotLeft:    {{-1, -1}, {1, -1}},
}

// ClassifyTSpin evaluates the lock of a T piece. It only yields a spin when
// the final move before locking was a rotation. Three or more occupied
// corners around the center qualify as a spin; it is a full T-spin when
// both front corners are occupied or the rotation locked in via a
// non-trivial kick (the far offsets at the end of the kick table), and a
// mini otherwise. Out-of-bounds cells count as occupied.
func ClassifyTSpin(b *Board, p Piece, lastMoveWasRotation bool, kickIndex int) TSpin {
	if p.Type != PieceT || !lastMoveWasRotation {
		return TSpinNone
	}

	corners := [4]Offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	occupied := 0
	for _, c := range corners {
		if b.Occupied(p.Row+c.Row, p.Col+c.Col) {
			occupied++
		}
	}
	if occupied < 3 {
		return TSpinNone
	}

	front := 0
	for _, c := range frontCorners[p.Rot] {
		if b.Occupied(p.Row+c.Row, p.Col+c.Col) {
			front++
		}
	}
	if front == 2 || kickIndex >= 3 {
		return TSpinFull
	}
	return TSpinMini
}
