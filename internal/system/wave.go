// internal/system/wave.go
package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
)

// WaveSystem следит за зачисткой волны и создаёт новую.
type WaveSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(world *entity.World, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{world: world, eventDispatcher: eventDispatcher}
}

// Update advances the level when every enemy of the wave is gone.
func (s *WaveSystem) Update() {
	if s.world.ActiveEnemies() > 0 {
		return
	}
	s.world.Session.Level++
	SpawnWave(s.world)
	s.eventDispatcher.Emit(event.WaveCleared, event.WaveClearedData{Level: s.world.Session.Level})
}

// SpawnWave replaces the arena with the canonical grid: EnemyRows x EnemyCols
// cells, uniform speed, moving right, all alive.
func SpawnWave(w *entity.World) {
	for row := 0; row < config.EnemyRows; row++ {
		for col := 0; col < config.EnemyCols; col++ {
			w.Enemies[row*config.EnemyCols+col] = component.Enemy{
				Position: component.Position{
					X: config.EnemyOriginX + float64(col)*config.EnemySpacingX,
					Y: config.EnemyOriginY + float64(row)*config.EnemySpacingY,
				},
				Size:      component.Size{W: config.EnemyWidth, H: config.EnemyHeight},
				Speed:     config.EnemySpeed,
				Direction: 1,
				Alive:     true,
			}
		}
	}
	w.WaveSerial++
}
