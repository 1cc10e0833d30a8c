// internal/system/movement.go
package system

import (
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
)

// MovementSystem двигает волну врагов. Волна движется синхронно: если хотя бы
// один враг коснулся края, разворачивается и опускается вся волна.
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Update() {
	enemies := &s.world.Enemies
	hitEdge := false
	for i := range enemies {
		e := &enemies[i]
		if !e.Alive {
			continue
		}
		e.X += e.Speed * e.Direction
		if e.X <= 0 || e.X+e.W >= config.ScreenWidth {
			hitEdge = true
		}
	}
	if !hitEdge {
		return
	}
	for i := range enemies {
		e := &enemies[i]
		if !e.Alive {
			continue
		}
		e.Direction = -e.Direction
		e.Y += config.EnemyDrop
	}
}
