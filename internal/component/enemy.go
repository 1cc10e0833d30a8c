package component

import "go-space-invaders/pkg/utils"

// Enemy — один корабль волны.
type Enemy struct {
	Position
	Size
	Speed     float64
	Direction float64 // +1 вправо, -1 влево
	Alive     bool
}

// Bounds returns the enemy's collision box.
func (e *Enemy) Bounds() utils.Rect {
	return Bounds(e.Position, e.Size)
}
