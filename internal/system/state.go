// internal/system/state.go
package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
)

// StateSystem проверяет условие поражения: волна дошла до линии игрока.
type StateSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(world *entity.World, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{world: world, eventDispatcher: eventDispatcher}
}

func (s *StateSystem) Update() {
	if s.world.Session.GameOver {
		return
	}
	line := s.world.Player.Y
	for i := range s.world.Enemies {
		e := &s.world.Enemies[i]
		if e.Alive && e.Y+e.H >= line {
			endSession(s.world, s.eventDispatcher, component.OutcomeBreached)
			return
		}
	}
}

// endSession marks the session over and publishes GameOver once.
func endSession(w *entity.World, d *event.Dispatcher, outcome component.Outcome) {
	if w.Session.GameOver {
		return
	}
	w.Session.GameOver = true
	w.Session.Outcome = outcome
	d.Emit(event.GameOver, event.GameOverData{
		Score:  w.Session.Score,
		Level:  w.Session.Level,
		Reason: outcome.String(),
	})
}
