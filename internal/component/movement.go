// component/movement.go
package component

import "go-space-invaders/pkg/utils"

// Position — компонент позиции (левый верхний угол)
type Position struct {
	X, Y float64
}

// Size — компонент размера
type Size struct {
	W, H float64
}

// Bounds builds the collision box from a position and a size.
func Bounds(p Position, s Size) utils.Rect {
	return utils.Rect{X: p.X, Y: p.Y, W: s.W, H: s.H}
}
