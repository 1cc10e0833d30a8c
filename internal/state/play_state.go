// internal/state/play_state.go
package state

import (
	"time"

	game "go-space-invaders/internal/app"
	"go-space-invaders/internal/input"
	"go-space-invaders/pkg/render"
)

var _ State = (*PlayState)(nil)

// PlayState ведёт игровую сессию. Пауза и рестарт обрабатываются самим движком.
type PlayState struct {
	sm   *StateMachine
	game *game.Game
}

func NewPlayState(sm *StateMachine, g *game.Game) *PlayState {
	return &PlayState{sm: sm, game: g}
}

func (s *PlayState) Enter() {}

func (s *PlayState) Update(in input.Snapshot, now time.Duration) {
	s.game.Update(in, now)
}

func (s *PlayState) Draw(f *render.Frame) {
	s.game.Render(f)
}

func (s *PlayState) Exit() {}

// Game returns the running session.
func (s *PlayState) Game() *game.Game {
	return s.game
}
