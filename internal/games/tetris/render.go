package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	hudRows    = 2
	panelWidth = 12
)

// pieceColor returns the guideline color for a tetromino.
func pieceColor(t PieceType) core.Color {
	switch t {
	case PieceI:
		return core.ColorCyan
	case PieceO:
		return core.ColorYellow
	case PieceT:
		return core.ColorMagenta
	case PieceS:
		return core.ColorGreen
	case PieceZ:
		return core.ColorRed
	case PieceJ:
		return core.ColorBlue
	case PieceL:
		return core.ColorOrange
	default:
		return core.ColorWhite
	}
}

func (a *Arcade) requiredWidth() int {
	return a.fieldBoxWidth() + panelWidth + 4
}

func (a *Arcade) requiredHeight() int {
	return a.game.Board().Height() + hudRows + 2
}

// fieldBoxWidth is the framed field width; every board cell is two columns
// wide so the aspect ratio looks square in a terminal.
func (a *Arcade) fieldBoxWidth() int {
	return a.game.Board().Width()*2 + 2
}

// Render draws the game to the screen.
func (a *Arcade) Render(dst *core.Screen) {
	dst.Clear()
	a.renderHUD(dst)

	if a.tooSmall {
		a.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	b := a.game.Board()
	fieldX := (dst.Width() - (a.fieldBoxWidth() + 2 + panelWidth)) / 2
	if fieldX < 0 {
		fieldX = 0
	}
	fieldY := hudRows

	dst.DrawBox(fieldX, fieldY, a.fieldBoxWidth(), b.Height()+2)
	a.renderField(dst, fieldX+1, fieldY+1)
	a.renderPanel(dst, fieldX+a.fieldBoxWidth()+2, fieldY)

	switch {
	case a.game.Over():
		a.renderOverlay(dst, "Game Over", "Press R to restart")
	case a.paused:
		a.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar and the transient clear announcement.
func (a *Arcade) renderHUD(dst *core.Screen) {
	s := a.game.Score()
	hud := fmt.Sprintf(" Tetris - Score: %d  Lines: %d  Level: %d", s.Score, s.Lines, s.Level)
	dst.DrawText(0, 0, hud)

	if a.flashText != "" {
		dst.DrawTextColored(dst.Width()-len(a.flashText)-1, 0, a.flashText, core.ColorBrightYellow)
	}
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderField draws the visible board rows: locked cells, the ghost, and
// the active piece. (x0, y0) is the top-left cell inside the frame.
func (a *Arcade) renderField(dst *core.Screen, x0, y0 int) {
	b := a.game.Board()
	top := b.BufferRows()

	for row := top; row < b.Rows(); row++ {
		for col := 0; col < b.Width(); col++ {
			cell := b.CellAt(row, col)
			if !cell.Filled() {
				continue
			}
			a.drawCell(dst, x0, y0, row-top, col, '█', pieceColor(PieceType(cell)))
		}
	}

	active, ok := a.game.Active()
	if !ok {
		return
	}

	if ghostRow, ok := a.game.GhostRow(); ok && ghostRow != active.Row {
		ghost := active
		ghost.Row = ghostRow
		for _, blk := range ghost.Blocks() {
			if blk.Row >= top {
				a.drawCell(dst, x0, y0, blk.Row-top, blk.Col, '░', core.ColorGray)
			}
		}
	}

	for _, blk := range active.Blocks() {
		if blk.Row >= top {
			a.drawCell(dst, x0, y0, blk.Row-top, blk.Col, '█', pieceColor(active.Type))
		}
	}
}

func (a *Arcade) drawCell(dst *core.Screen, x0, y0, row, col int, r rune, c core.Color) {
	dst.SetColored(x0+col*2, y0+row, r, c)
	dst.SetColored(x0+col*2+1, y0+row, r, c)
}

// renderPanel draws the hold box and the preview queue to the right of the
// field.
func (a *Arcade) renderPanel(dst *core.Screen, x, y int) {
	dst.DrawText(x, y, "HOLD")
	if held, ok := a.game.HoldPiece(); ok {
		color := pieceColor(held)
		if a.game.HoldUsed() {
			color = core.ColorGray
		}
		a.drawMiniPiece(dst, x, y+1, held, color)
	}

	qy := y + 5
	dst.DrawText(x, qy, "NEXT")
	for i, t := range a.game.Queue() {
		a.drawMiniPiece(dst, x, qy+1+i*3, t, pieceColor(t))
	}
}

// drawMiniPiece draws a piece in spawn orientation, normalized so its
// top-left block sits at (x, y).
func (a *Arcade) drawMiniPiece(dst *core.Screen, x, y int, t PieceType, c core.Color) {
	offs := blockOffsets[t][RotSpawn]
	minRow, minCol := offs[0].Row, offs[0].Col
	for _, off := range offs[1:] {
		if off.Row < minRow {
			minRow = off.Row
		}
		if off.Col < minCol {
			minCol = off.Col
		}
	}
	for _, off := range offs {
		px := x + (off.Col-minCol)*2
		py := y + (off.Row - minRow)
		dst.SetColored(px, py, '█', c)
		dst.SetColored(px+1, py, '█', c)
	}
}

// renderOverlay draws a centered two-line message box.
func (a *Arcade) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for yy := boxY + 1; yy < boxY+boxH-1; yy++ {
		for xx := boxX + 1; xx < boxX+boxW-1; xx++ {
			dst.Set(xx, yy, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
