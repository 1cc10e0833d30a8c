// internal/system/visual_effect.go
package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
)

// VisualEffectSystem управляет визуальными эффектами: вспышками на месте
// уничтоженных врагов.
type VisualEffectSystem struct {
	world *entity.World
}

// NewVisualEffectSystem создает систему и подписывает её на уничтожение врагов.
func NewVisualEffectSystem(world *entity.World, eventDispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{world: world}
	if eventDispatcher != nil {
		eventDispatcher.Subscribe(s, event.EnemyDestroyed)
	}
	return s
}

// OnEvent spawns a flash over the destroyed enemy.
func (s *VisualEffectSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.EnemyDestroyedData)
	if !ok || data.Enemy < 0 || data.Enemy >= len(s.world.Enemies) {
		return
	}
	enemy := &s.world.Enemies[data.Enemy]
	s.world.Flashes = append(s.world.Flashes, component.Flash{
		Position: enemy.Position,
		Size:     enemy.Size,
		Timer:    config.FlashFrames,
	})
}

// Update ages every flash by one frame and drops the expired ones.
func (s *VisualEffectSystem) Update() {
	n := 0
	for _, f := range s.world.Flashes {
		f.Timer--
		if f.Timer > 0 {
			s.world.Flashes[n] = f
			n++
		}
	}
	s.world.Flashes = s.world.Flashes[:n]
}

// Clear removes all flashes.
func (s *VisualEffectSystem) Clear() {
	s.world.Flashes = s.world.Flashes[:0]
}
