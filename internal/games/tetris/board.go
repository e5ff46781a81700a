package tetris

import "errors"

// Cell is one board cell: empty, or filled with the type of the piece that
// locked there (kept for rendering).
type Cell int8

// CellEmpty marks an unoccupied cell. Filled cells store the PieceType.
const CellEmpty Cell = -1

// Filled reports whether the cell holds a locked block.
func (c Cell) Filled() bool {
	return c != CellEmpty
}

// ErrInvalidLock is returned when a piece is locked onto cells that are
// occupied or out of bounds. The state machine validates every move, so
// hitting this indicates a bug in the caller, not a gameplay situation.
var ErrInvalidLock = errors.New("tetris: lock position invalid")

// Board is the playfield grid. Rows grow downward; the first BufferRows
// rows sit above the visible field and host freshly spawned pieces.
type Board struct {
	width   int
	height  int // visible rows
	buffer  int // hidden rows above the visible field
	grid    [][]Cell
}

// NewBoard creates an empty board. Dimensions must already be validated by
// Config.Validate; this constructor trusts its inputs.
func NewBoard(width, height, buffer int) *Board {
	b := &Board{width: width, height: height, buffer: buffer}
	b.grid = make([][]Cell, b.Rows())
	for r := range b.grid {
		b.grid[r] = make([]Cell, width)
		for c := range b.grid[r] {
			b.grid[r][c] = CellEmpty
		}
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of visible rows.
func (b *Board) Height() int { return b.height }

// BufferRows returns the number of hidden spawn rows above the field.
func (b *Board) BufferRows() int { return b.buffer }

// Rows returns the total row count including the hidden buffer.
func (b *Board) Rows() int { return b.height + b.buffer }

// InBounds reports whether (row, col) addresses a cell on the grid.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Rows() && col >= 0 && col < b.width
}

// CellAt returns the cell at (row, col). Out-of-bounds reads return
// CellEmpty so callers can treat walls and floor uniformly via InBounds.
func (b *Board) CellAt(row, col int) Cell {
	if !b.InBounds(row, col) {
		return CellEmpty
	}
	return b.grid[row][col]
}

// SetCell writes a cell directly. Used by tests and scenario setup;
// gameplay mutation goes through LockPiece and ClearFullRows.
func (b *Board) SetCell(row, col int, c Cell) {
	if b.InBounds(row, col) {
		b.grid[row][col] = c
	}
}

// Occupied reports whether (row, col) is filled or outside the grid.
func (b *Board) Occupied(row, col int) bool {
	if !b.InBounds(row, col) {
		return true
	}
	return b.grid[row][col].Filled()
}

// IsValidPlacement reports whether every cell of the piece is in bounds
// and over an empty board cell.
func (b *Board) IsValidPlacement(p Piece) bool {
	for _, blk := range p.Blocks() {
		if !b.InBounds(blk.Row, blk.Col) {
			return false
		}
		if b.grid[blk.Row][blk.Col].Filled() {
			return false
		}
	}
	return true
}

// LockPiece writes the piece's cells into the grid and returns the rows it
// touched (for line-clear checking). Locking onto an invalid position
// returns ErrInvalidLock and leaves the grid unchanged.
func (b *Board) LockPiece(p Piece) ([]int, error) {
	if !b.IsValidPlacement(p) {
		return nil, ErrInvalidLock
	}

	seen := make(map[int]bool, 4)
	var rows []int
	for _, blk := range p.Blocks() {
		b.grid[blk.Row][blk.Col] = Cell(p.Type)
		if !seen[blk.Row] {
			seen[blk.Row] = true
			rows = append(rows, blk.Row)
		}
	}
	return rows, nil
}

// ClearFullRows removes every completely filled row, shifts the rows above
// down, and returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for row := b.Rows() - 1; row >= 0; row-- {
		if !b.rowFull(row) {
			continue
		}
		b.removeRow(row)
		cleared++
		row++ // the shifted-down row needs rechecking
	}
	return cleared
}

func (b *Board) rowFull(row int) bool {
	for col := 0; col < b.width; col++ {
		if !b.grid[row][col].Filled() {
			return false
		}
	}
	return true
}

// removeRow deletes one row and shifts everything above it down.
func (b *Board) removeRow(row int) {
	for r := row; r > 0; r-- {
		copy(b.grid[r], b.grid[r-1])
	}
	for col := 0; col < b.width; col++ {
		b.grid[0][col] = CellEmpty
	}
}

// IsEmpty reports whether no cell on the board is filled. Used to detect
// perfect clears immediately after a line clear.
func (b *Board) IsEmpty() bool {
	for _, row := range b.grid {
		for _, c := range row {
			if c.Filled() {
				return false
			}
		}
	}
	return true
}

// ColumnHeights returns, per column, the number of rows from the highest
// filled cell down to the floor (0 for an empty column).
func (b *Board) ColumnHeights() []int {
	heights := make([]int, b.width)
	for col := 0; col < b.width; col++ {
		for row := 0; row < b.Rows(); row++ {
			if b.grid[row][col].Filled() {
				heights[col] = b.Rows() - row
				break
			}
		}
	}
	return heights
}

// CountFilled returns the total number of filled cells.
func (b *Board) CountFilled() int {
	n := 0
	for _, row := range b.grid {
		for _, c := range row {
			if c.Filled() {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the board. The bot searches over clones so
// the authoritative grid is never touched outside the state machine.
func (b *Board) Clone() *Board {
	nb := &Board{width: b.width, height: b.height, buffer: b.buffer}
	nb.grid = make([][]Cell, len(b.grid))
	for r := range b.grid {
		nb.grid[r] = make([]Cell, b.width)
		copy(nb.grid[r], b.grid[r])
	}
	return nb
}

// Clear empties every cell.
func (b *Board) Clear() {
	for r := range b.grid {
		for c := range b.grid[r] {
			b.grid[r][c] = CellEmpty
		}
	}
}
