// internal/entity/world.go
package entity

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
)

// World holds every entity of one session. It is owned by a single game
// instance and passed by pointer to the systems.
type World struct {
	Player  component.Player
	Enemies [config.EnemyCount]component.Enemy
	Bullets []component.Bullet
	Stars   []component.Star
	Flashes []component.Flash
	Session component.Session

	// WaveSerial растёт при каждом создании волны.
	WaveSerial uint64
}

func NewWorld() *World {
	w := &World{
		Bullets: make([]component.Bullet, 0, config.BulletCapacity),
		Stars:   make([]component.Star, 0, config.StarCount),
		Flashes: make([]component.Flash, 0, config.EnemyCols),
	}
	w.ResetSession()
	w.ResetPlayer()
	return w
}

// ResetSession restores score, level and lives to their initial values.
func (w *World) ResetSession() {
	w.Session = component.Session{
		Level: config.InitialLevel,
		Lives: config.InitialLives,
	}
}

// ResetPlayer puts the ship back at its start position.
func (w *World) ResetPlayer() {
	w.Player = component.Player{
		Position: component.Position{X: config.PlayerStartX, Y: config.PlayerStartY},
		Size:     component.Size{W: config.PlayerWidth, H: config.PlayerHeight},
		Speed:    config.PlayerSpeed,
		Alive:    true,
	}
}

// SpawnBullet appends a live bullet.
func (w *World) SpawnBullet(x, y, speed float64, owner component.Owner) {
	w.Bullets = append(w.Bullets, component.Bullet{
		Position: component.Position{X: x, Y: y},
		Size:     component.Size{W: config.BulletWidth, H: config.BulletHeight},
		Speed:    speed,
		Owner:    owner,
		Alive:    true,
	})
}

// CompactBullets drops inactive bullets in place, keeping order.
func (w *World) CompactBullets() {
	n := 0
	for i := range w.Bullets {
		if w.Bullets[i].Alive {
			w.Bullets[n] = w.Bullets[i]
			n++
		}
	}
	clear(w.Bullets[n:])
	w.Bullets = w.Bullets[:n]
}

// ClearBullets removes all bullets without releasing the backing array.
func (w *World) ClearBullets() {
	clear(w.Bullets)
	w.Bullets = w.Bullets[:0]
}

// ActiveEnemies returns the number of live enemies.
func (w *World) ActiveEnemies() int {
	n := 0
	for i := range w.Enemies {
		if w.Enemies[i].Alive {
			n++
		}
	}
	return n
}

// NthActiveEnemy returns the index of the n-th live enemy in arena order,
// or -1 if there are not that many.
func (w *World) NthActiveEnemy(n int) int {
	for i := range w.Enemies {
		if !w.Enemies[i].Alive {
			continue
		}
		if n == 0 {
			return i
		}
		n--
	}
	return -1
}

// CountBullets returns the number of live bullets for owner.
func (w *World) CountBullets(owner component.Owner) int {
	n := 0
	for i := range w.Bullets {
		if w.Bullets[i].Alive && w.Bullets[i].Owner == owner {
			n++
		}
	}
	return n
}
