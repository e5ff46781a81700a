package tetris

// PieceType identifies one of the seven tetrominoes.
type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
	pieceCount = 7
)

// String returns the canonical single-letter name of the piece.
func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	default:
		return "?"
	}
}

// AllPieceTypes lists every tetromino once, in canonical order.
func AllPieceTypes() []PieceType {
	return []PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}
}

// Rotation is one of the four orientation states: spawn (0), clockwise (R),
// twice-rotated (2), and counter-clockwise (L).
type Rotation int

const (
	RotSpawn Rotation = iota
	RotRight
	RotReverse
	RotLeft
	rotationCount = 4
)

// CW returns the rotation state after a clockwise turn.
func (r Rotation) CW() Rotation {
	return (r + 1) % rotationCount
}

// CCW returns the rotation state after a counter-clockwise turn.
func (r Rotation) CCW() Rotation {
	return (r + 3) % rotationCount
}

// Half returns the rotation state after a 180-degree turn.
func (r Rotation) Half() Rotation {
	return (r + 2) % rotationCount
}

func (r Rotation) String() string {
	switch r {
	case RotSpawn:
		return "0"
	case RotRight:
		return "R"
	case RotReverse:
		return "2"
	case RotLeft:
		return "L"
	default:
		return "?"
	}
}

// Offset is a (row, col) displacement relative to a piece origin.
// Rows grow downward.
type Offset struct {
	Row, Col int
}

// blockOffsets holds the four occupied cells of every piece in every
// rotation state, relative to the piece origin. The tables follow the
// guideline SRS shapes; the origin is the rotation center (for I and O the
// conventional corner-adjacent origin).
var blockOffsets = [pieceCount][rotationCount][4]Offset{
	PieceI: {
		RotSpawn:   {{0, -1}, {0, 0}, {0, 1}, {0, 2}},
		RotRight:   {{-1, 1}, {0, 1}, {1, 1}, {2, 1}},
		RotReverse: {{1, -1}, {1, 0}, {1, 1}, {1, 2}},
		RotLeft:    {{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
	},
	PieceO: {
		RotSpawn:   {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		RotRight:   {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		RotReverse: {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		RotLeft:    {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	},
	PieceT: {
		RotSpawn:   {{0, 0}, {0, -1}, {0, 1}, {1, 0}},
		RotRight:   {{0, 0}, {-1, 0}, {1, 0}, {0, 1}},
		RotReverse: {{0, 0}, {0, -1}, {0, 1}, {-1, 0}},
		RotLeft:    {{0, 0}, {-1, 0}, {1, 0}, {0, -1}},
	},
	PieceS: {
		RotSpawn:   {{0, 0}, {0, -1}, {1, 0}, {1, 1}},
		RotRight:   {{0, 0}, {1, 0}, {0, 1}, {-1, 1}},
		RotReverse: {{0, 0}, {0, 1}, {-1, 0}, {-1, -1}},
		RotLeft:    {{0, 0}, {-1, 0}, {0, -1}, {1, -1}},
	},
	PieceZ: {
		RotSpawn:   {{0, 0}, {0, 1}, {1, 0}, {1, -1}},
		RotRight:   {{0, 0}, {-1, 0}, {0, -1}, {1, -1}},
		RotReverse: {{0, 0}, {0, -1}, {-1, 0}, {-1, 1}},
		RotLeft:    {{0, 0}, {1, 0}, {0, 1}, {-1, 1}},
	},
	PieceJ: {
		RotSpawn:   {{0, 0}, {0, -1}, {0, 1}, {-1, 1}},
		RotRight:   {{0, 0}, {-1, 0}, {1, 0}, {-1, -1}},
		RotReverse: {{0, 0}, {0, 1}, {0, -1}, {1, -1}},
		RotLeft:    {{0, 0}, {1, 0}, {-1, 0}, {1, 1}},
	},
	PieceL: {
		RotSpawn:   {{0, 0}, {0, -1}, {0, 1}, {1, 1}},
		RotRight:   {{0, 0}, {-1, 0}, {1, 0}, {1, -1}},
		RotReverse: {{0, 0}, {0, 1}, {0, -1}, {-1, -1}},
		RotLeft:    {{0, 0}, {1, 0}, {-1, 0}, {-1, 1}},
	},
}

// Piece is an active tetromino: a type, an orientation, and an origin
// position on the board. Pieces are small values and copied freely.
type Piece struct {
	Type PieceType
	Rot  Rotation
	Row  int
	Col  int
}

// NewPiece creates a piece of the given type at the given origin, in the
// spawn orientation.
func NewPiece(t PieceType, row, col int) Piece {
	return Piece{Type: t, Rot: RotSpawn, Row: row, Col: col}
}

// Blocks returns the four absolute (row, col) cells the piece occupies.
func (p Piece) Blocks() [4]Offset {
	var out [4]Offset
	for i, off := range blockOffsets[p.Type][p.Rot] {
		out[i] = Offset{Row: p.Row + off.Row, Col: p.Col + off.Col}
	}
	return out
}

// Shifted returns a copy of the piece translated by (dRow, dCol).
func (p Piece) Shifted(dRow, dCol int) Piece {
	p.Row += dRow
	p.Col += dCol
	return p
}

// WithRotation returns a copy of the piece in the given orientation.
func (p Piece) WithRotation(r Rotation) Piece {
	p.Rot = r
	return p
}
