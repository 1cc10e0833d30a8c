// internal/state/title_state.go
package state

import (
	"time"

	game "go-space-invaders/internal/app"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/ui"
	"go-space-invaders/pkg/render"
)

var _ State = (*TitleState)(nil)

// TitleState shows the banner over the moving starfield until fire is
// pressed. The session itself is already built and starts untouched.
type TitleState struct {
	sm     *StateMachine
	game   *game.Game
	banner *ui.TitleBanner
}

func NewTitleState(sm *StateMachine, g *game.Game) *TitleState {
	return &TitleState{sm: sm, game: g, banner: ui.NewTitleBanner()}
}

func (s *TitleState) Enter() {}

func (s *TitleState) Update(in input.Snapshot, now time.Duration) {
	s.game.StarfieldSystem.Update()
	if in.Pressed(input.Fire) {
		s.sm.SetState(NewPlayState(s.sm, s.game))
	}
}

func (s *TitleState) Draw(f *render.Frame) {
	f.Fill(config.BackgroundColor)
	s.game.RenderSystem.DrawStars(f)
	s.banner.Draw(f)
}

func (s *TitleState) Exit() {}
