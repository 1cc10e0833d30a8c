// internal/component/player.go
package component

import (
	"time"

	"go-space-invaders/pkg/utils"
)

// Player — корабль игрока.
type Player struct {
	Position
	Size
	Speed    float64
	LastShot time.Duration // время последнего выстрела по часам сессии
	HasShot  bool          // был ли хотя бы один выстрел с начала сессии
	Alive    bool
}

// Bounds returns the player's collision box.
func (p *Player) Bounds() utils.Rect {
	return Bounds(p.Position, p.Size)
}

// CanFire reports whether the shot cooldown has elapsed at now.
func (p *Player) CanFire(now, cooldown time.Duration) bool {
	return !p.HasShot || now-p.LastShot >= cooldown
}
