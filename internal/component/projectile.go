// internal/component/projectile.go
package component

import "go-space-invaders/pkg/utils"

// Owner says who fired a bullet.
type Owner uint8

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	if o == OwnerPlayer {
		return "player"
	}
	return "enemy"
}

// Bullet представляет летящий снаряд. Speed всегда положительна,
// направление определяется владельцем.
type Bullet struct {
	Position
	Size
	Speed float64
	Owner Owner
	Alive bool
}

// Bounds returns the bullet's collision box.
func (b *Bullet) Bounds() utils.Rect {
	return Bounds(b.Position, b.Size)
}
