package termhost

import (
	"image/color"
	"math"

	"go-space-invaders/pkg/render"

	"github.com/gdamore/tcell/v2"
)

// Cell is one terminal character with its colors.
type Cell struct {
	Rune rune
	Fg   color.NRGBA
	Bg   color.NRGBA
}

// Buffer rasterizes a render.Frame onto a grid of cells. The logical
// surface is scaled to fit the grid; each rect paints the background of
// every cell it covers, alpha composited over what is already there.
type Buffer struct {
	Cols, Rows int
	Cells      []Cell
}

func NewBuffer(cols, rows int) *Buffer {
	b := &Buffer{}
	b.Resize(cols, rows)
	return b
}

// Resize changes the grid size and clears it.
func (b *Buffer) Resize(cols, rows int) {
	b.Cols, b.Rows = max(cols, 1), max(rows, 1)
	if cap(b.Cells) >= b.Cols*b.Rows {
		b.Cells = b.Cells[:b.Cols*b.Rows]
	} else {
		b.Cells = make([]Cell, b.Cols*b.Rows)
	}
	b.clear()
}

func (b *Buffer) clear() {
	for i := range b.Cells {
		b.Cells[i] = Cell{Rune: ' ', Fg: color.NRGBA{A: 255}, Bg: color.NRGBA{A: 255}}
	}
}

// At returns the cell at column x, row y.
func (b *Buffer) At(x, y int) Cell {
	return b.Cells[y*b.Cols+x]
}

// Compose clears the grid and replays f onto it.
func (b *Buffer) Compose(f *render.Frame) {
	b.clear()
	if f == nil || f.Width <= 0 || f.Height <= 0 {
		return
	}
	cw := f.Width / float64(b.Cols)
	ch := f.Height / float64(b.Rows)
	for i := range f.Cmds {
		c := &f.Cmds[i]
		switch c.Kind {
		case render.KindRect:
			b.fillRect(c, cw, ch)
		case render.KindText:
			b.drawText(c, cw, ch)
		}
	}
}

func (b *Buffer) fillRect(c *render.Cmd, cw, ch float64) {
	if c.W <= 0 || c.H <= 0 || c.Color.A == 0 {
		return
	}
	x0 := max(int(c.X/cw), 0)
	y0 := max(int(c.Y/ch), 0)
	x1 := min(int(math.Ceil((c.X+c.W)/cw)), b.Cols)
	y1 := min(int(math.Ceil((c.Y+c.H)/ch)), b.Rows)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cell := &b.Cells[y*b.Cols+x]
			cell.Bg = render.Blend(cell.Bg, c.Color)
			// текст под полупрозрачным слоем тоже тускнеет
			cell.Fg = render.Blend(cell.Fg, c.Color)
		}
	}
}

func (b *Buffer) drawText(c *render.Cmd, cw, ch float64) {
	runes := []rune(c.Text)
	// базовая линия попадает в строку, в которой лежит пиксель над ней
	row := int((c.Y - 1) / ch)
	col := int(c.X / cw)
	if c.Align == render.AlignCenter {
		col -= len(runes) / 2
	}
	if row < 0 || row >= b.Rows {
		return
	}
	for i, r := range runes {
		x := col + i
		if x < 0 || x >= b.Cols {
			continue
		}
		cell := &b.Cells[row*b.Cols+x]
		cell.Rune = r
		cell.Fg = c.Color
	}
}

func tcellColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Flush copies the grid to screen and shows it.
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.Rows; y++ {
		for x := 0; x < b.Cols; x++ {
			cell := b.Cells[y*b.Cols+x]
			style := tcell.StyleDefault.Foreground(tcellColor(cell.Fg)).Background(tcellColor(cell.Bg))
			screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	screen.Show()
}
