// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"go-space-invaders/internal/config"
	"go-space-invaders/pkg/render"
)

// LivesIndicator отображает оставшиеся жизни игрока.
type LivesIndicator struct {
	X, Y     float64
	FontSize int
	Color    color.NRGBA
}

func NewLivesIndicator(x, y float64, fontSize int) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y, FontSize: fontSize, Color: config.TextLightColor}
}

func (i *LivesIndicator) Draw(f *render.Frame, lives int) {
	f.Text("LIVES: "+strconv.Itoa(lives), i.X, i.Y, i.FontSize, i.Color)
}
