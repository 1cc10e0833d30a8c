// internal/system/player_system.go
package system

import (
	"time"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/input"
	"go-space-invaders/pkg/utils"
)

// PlayerSystem отвечает за движение корабля и стрельбу.
type PlayerSystem struct {
	world *entity.World
}

func NewPlayerSystem(world *entity.World) *PlayerSystem {
	return &PlayerSystem{world: world}
}

// Update moves the ship for each held direction and fires if allowed.
func (s *PlayerSystem) Update(in input.Snapshot, now time.Duration) {
	p := &s.world.Player
	if !p.Alive {
		return
	}

	if in.Held(input.MoveLeft) {
		p.X -= p.Speed
	}
	if in.Held(input.MoveRight) {
		p.X += p.Speed
	}
	if in.Held(input.MoveUp) {
		p.Y -= p.Speed
	}
	if in.Held(input.MoveDown) {
		p.Y += p.Speed
	}
	// Выше середины поля подниматься нельзя
	p.X = utils.Clamp(p.X, 0, config.ScreenWidth-p.W)
	p.Y = utils.Clamp(p.Y, config.ScreenHeight/2, config.ScreenHeight-p.H)

	if in.Held(input.Fire) && p.CanFire(now, config.ShotCooldown) {
		s.world.SpawnBullet(
			p.X+p.W/2-config.BulletWidth/2,
			p.Y-config.BulletHeight,
			config.PlayerBulletSpeed,
			component.OwnerPlayer,
		)
		p.LastShot = now
		p.HasShot = true
	}
}
