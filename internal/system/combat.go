// internal/system/combat.go
package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/utils"
)

// CombatSystem решает, стреляет ли волна в этом кадре.
type CombatSystem struct {
	world *entity.World
	rng   utils.RNG
}

func NewCombatSystem(world *entity.World, rng utils.RNG) *CombatSystem {
	return &CombatSystem{world: world, rng: rng}
}

// Update fires at most one enemy bullet per frame.
func (s *CombatSystem) Update() {
	if s.rng.Float64() >= config.EnemyFireChance {
		return
	}
	active := s.world.ActiveEnemies()
	if active == 0 {
		return
	}
	idx := s.world.NthActiveEnemy(s.rng.Intn(active))
	e := &s.world.Enemies[idx]
	s.world.SpawnBullet(
		e.X+e.W/2-config.BulletWidth/2,
		e.Y+e.H,
		config.EnemyBulletSpeed,
		component.OwnerEnemy,
	)
}
