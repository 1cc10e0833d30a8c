// internal/system/projectile.go
package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
)

// ProjectileSystem двигает снаряды и убирает вылетевшие за поле.
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

func (s *ProjectileSystem) Update() {
	for i := range s.world.Bullets {
		b := &s.world.Bullets[i]
		if !b.Alive {
			continue
		}
		switch b.Owner {
		case component.OwnerPlayer:
			b.Y -= b.Speed
			if b.Y+b.H < 0 {
				b.Alive = false
			}
		case component.OwnerEnemy:
			b.Y += b.Speed
			if b.Y > config.ScreenHeight {
				b.Alive = false
			}
		}
	}
}

// Cleanup prunes bullets that went inactive this frame.
func (s *ProjectileSystem) Cleanup() {
	s.world.CompactBullets()
}
