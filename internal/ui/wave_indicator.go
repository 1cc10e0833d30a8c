package ui

import (
	"fmt"
	"image/color"

	"go-space-invaders/internal/config"
	"go-space-invaders/pkg/render"
)

// LevelIndicator отображает номер текущей волны двумя цифрами.
type LevelIndicator struct {
	X, Y     float64
	FontSize int
	Color    color.NRGBA
}

// NewLevelIndicator создает индикатор, центрированный по x.
func NewLevelIndicator(x, y float64, fontSize int) *LevelIndicator {
	return &LevelIndicator{
		X:        x,
		Y:        y,
		FontSize: fontSize,
		Color:    config.TextLightColor,
	}
}

// Label formats the level the way the HUD shows it.
func (i *LevelIndicator) Label(level int) string {
	return fmt.Sprintf("LEVEL: %02d", level)
}

func (i *LevelIndicator) Draw(f *render.Frame, level int) {
	f.CenteredText(i.Label(level), i.X, i.Y, i.FontSize, i.Color)
}
