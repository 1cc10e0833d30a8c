// Package render holds the backend-neutral description of one drawn frame.
package render

import "image/color"

// Kind selects the primitive a Cmd draws.
type Kind uint8

const (
	KindRect Kind = iota
	KindText
)

// Align is the horizontal anchoring of a text command.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
)

// Cmd is one draw operation. Rects use X, Y, W, H (top-left). Text uses X, Y
// as the baseline anchor, Size as the pixel height.
type Cmd struct {
	Kind  Kind
	X, Y  float64
	W, H  float64
	Color color.NRGBA
	Text  string
	Size  int
	Align Align
}

// Frame is the ordered draw list for one refresh of a Width x Height
// logical surface. Painters replay Cmds in order.
type Frame struct {
	Width, Height float64
	Cmds          []Cmd
}

func NewFrame(width, height float64) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Cmds:   make([]Cmd, 0, 256),
	}
}

// Reset empties the frame and keeps the backing array.
func (f *Frame) Reset() {
	f.Cmds = f.Cmds[:0]
}

// FillRect appends a solid rectangle.
func (f *Frame) FillRect(x, y, w, h float64, c color.NRGBA) {
	f.Cmds = append(f.Cmds, Cmd{Kind: KindRect, X: x, Y: y, W: w, H: h, Color: c})
}

// Fill covers the whole surface.
func (f *Frame) Fill(c color.NRGBA) {
	f.FillRect(0, 0, f.Width, f.Height, c)
}

// Text appends a left-aligned string with its baseline at y.
func (f *Frame) Text(s string, x, y float64, size int, c color.NRGBA) {
	f.Cmds = append(f.Cmds, Cmd{Kind: KindText, X: x, Y: y, Text: s, Size: size, Color: c, Align: AlignLeft})
}

// CenteredText appends a string horizontally centered on x.
func (f *Frame) CenteredText(s string, x, y float64, size int, c color.NRGBA) {
	f.Cmds = append(f.Cmds, Cmd{Kind: KindText, X: x, Y: y, Text: s, Size: size, Color: c, Align: AlignCenter})
}

// Texts returns the strings of all text commands in draw order.
func (f *Frame) Texts() []string {
	var out []string
	for _, c := range f.Cmds {
		if c.Kind == KindText {
			out = append(out, c.Text)
		}
	}
	return out
}
