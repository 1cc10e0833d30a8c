package ebitenhost

import (
	"fmt"
	"log"

	"go-space-invaders/internal/config"
	"go-space-invaders/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

// Painter replays a render.Frame onto an ebiten image.
type Painter struct {
	font  *opentype.Font
	faces map[int]font.Face
}

// NewPainter parses the embedded Go Mono font and prepares the faces the
// game uses.
func NewPainter() (*Painter, error) {
	tt, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	p := &Painter{font: tt, faces: make(map[int]font.Face)}
	for _, size := range []int{config.HUDFontSize, config.PromptFontSize, config.SubtitleFontSize, config.TitleFontSize} {
		if _, err := p.newFace(size); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Painter) newFace(size int) (font.Face, error) {
	face, err := opentype.NewFace(p.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %d: %w", size, err)
	}
	p.faces[size] = face
	return face, nil
}

// face returns the face for size, falling back to the HUD face.
func (p *Painter) face(size int) font.Face {
	if f, ok := p.faces[size]; ok {
		return f
	}
	f, err := p.newFace(size)
	if err != nil {
		log.Println(err)
		p.faces[size] = p.faces[config.HUDFontSize]
		return p.faces[size]
	}
	return f
}

// Paint draws f onto screen. A nil screen is ignored.
func (p *Painter) Paint(screen *ebiten.Image, f *render.Frame) {
	if screen == nil || f == nil {
		return
	}
	for i := range f.Cmds {
		c := &f.Cmds[i]
		switch c.Kind {
		case render.KindRect:
			vector.DrawFilledRect(screen, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), c.Color, false)
		case render.KindText:
			face := p.face(c.Size)
			x := int(c.X)
			if c.Align == render.AlignCenter {
				x -= text.BoundString(face, c.Text).Dx() / 2
			}
			text.Draw(screen, c.Text, face, x, int(c.Y), c.Color)
		}
	}
}
