package ui

import (
	"image/color"
	"strconv"

	"go-space-invaders/internal/config"
	"go-space-invaders/pkg/render"
)

// ScoreIndicator отображает текущий счёт.
type ScoreIndicator struct {
	X, Y     float64
	FontSize int
	Color    color.NRGBA
}

func NewScoreIndicator(x, y float64, fontSize int) *ScoreIndicator {
	return &ScoreIndicator{X: x, Y: y, FontSize: fontSize, Color: config.TextLightColor}
}

func (i *ScoreIndicator) Draw(f *render.Frame, score int) {
	f.Text("SCORE: "+strconv.Itoa(score), i.X, i.Y, i.FontSize, i.Color)
}
