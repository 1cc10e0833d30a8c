// internal/system/render.go
package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/pkg/render"
)

// RenderSystem рисует сущности мира в Frame. Мир не изменяется.
type RenderSystem struct {
	world *entity.World
}

func NewRenderSystem(world *entity.World) *RenderSystem {
	return &RenderSystem{world: world}
}

// Draw emits background, stars, ship, wave, flashes and bullets, in that
// order.
func (s *RenderSystem) Draw(f *render.Frame) {
	f.Fill(config.BackgroundColor)
	s.DrawStars(f)

	if p := &s.world.Player; p.Alive {
		f.FillRect(p.X, p.Y, p.W, p.H, config.PlayerColor)
		// пушка и кабина
		f.FillRect(p.X+p.W/2-2, p.Y-6, 4, 6, config.PlayerDetailColor)
		f.FillRect(p.X+p.W/2-5, p.Y+4, 10, 6, config.PlayerDetailColor)
	}

	for i := range s.world.Enemies {
		e := &s.world.Enemies[i]
		if !e.Alive {
			continue
		}
		f.FillRect(e.X, e.Y, e.W, e.H, config.EnemyColor)
		// глаза
		f.FillRect(e.X+6, e.Y+6, 5, 5, config.EnemyDetailColor)
		f.FillRect(e.X+e.W-11, e.Y+6, 5, 5, config.EnemyDetailColor)
	}

	s.DrawFlashes(f)

	for i := range s.world.Bullets {
		b := &s.world.Bullets[i]
		if !b.Alive {
			continue
		}
		c := config.PlayerBulletColor
		if b.Owner == component.OwnerEnemy {
			c = config.EnemyBulletColor
		}
		f.FillRect(b.X, b.Y, b.W, b.H, c)
	}
}

// DrawStars emits one small square per star with alpha = brightness.
func (s *RenderSystem) DrawStars(f *render.Frame) {
	for _, star := range s.world.Stars {
		f.FillRect(star.X, star.Y, config.StarSize, config.StarSize, render.WithAlpha(config.StarColor, star.Brightness))
	}
}

// DrawFlashes draws each flash growing and fading out over its lifetime.
func (s *RenderSystem) DrawFlashes(f *render.Frame) {
	for _, fl := range s.world.Flashes {
		left := float64(fl.Timer) / config.FlashFrames
		grow := (1 - left) * config.FlashGrow
		f.FillRect(fl.X-grow, fl.Y-grow, fl.W+2*grow, fl.H+2*grow, render.WithAlpha(config.FlashColor, left))
	}
}
