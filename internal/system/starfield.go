// internal/system/starfield.go
package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/utils"
)

// StarfieldSystem двигает декоративные звёзды фона.
type StarfieldSystem struct {
	world *entity.World
	rng   utils.RNG
}

func NewStarfieldSystem(world *entity.World, rng utils.RNG) *StarfieldSystem {
	return &StarfieldSystem{world: world, rng: rng}
}

// Seed fills the sky with StarCount stars at random positions.
func (s *StarfieldSystem) Seed() {
	s.world.Stars = s.world.Stars[:0]
	for i := 0; i < config.StarCount; i++ {
		s.world.Stars = append(s.world.Stars, component.Star{
			Position: component.Position{
				X: s.rng.Float64() * config.ScreenWidth,
				Y: s.rng.Float64() * config.ScreenHeight,
			},
			Speed:      utils.Range(s.rng, config.StarMinSpeed, config.StarMaxSpeed),
			Brightness: utils.Range(s.rng, config.StarMinBrightness, config.StarMaxBrightness),
		})
	}
}

func (s *StarfieldSystem) Update() {
	for i := range s.world.Stars {
		star := &s.world.Stars[i]
		star.Y += star.Speed
		if star.Y > config.ScreenHeight {
			// Звезда ушла вниз, возвращаем наверх в случайной колонке
			star.Y = 0
			star.X = s.rng.Float64() * config.ScreenWidth
		}
	}
}
