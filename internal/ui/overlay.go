// internal/ui/overlay.go
package ui

import (
	"strconv"

	"go-space-invaders/internal/config"
	"go-space-invaders/pkg/render"
)

// GameOverOverlay затемняет поле и показывает итог сессии.
type GameOverOverlay struct {
	CenterX, CenterY float64
}

func NewGameOverOverlay() *GameOverOverlay {
	return &GameOverOverlay{CenterX: config.ScreenWidth / 2, CenterY: config.ScreenHeight / 2}
}

func (o *GameOverOverlay) Draw(f *render.Frame, score int) {
	f.Fill(config.OverlayColor)
	f.CenteredText("GAME OVER", o.CenterX, o.CenterY-40, config.TitleFontSize, config.GameOverColor)
	f.CenteredText("FINAL SCORE: "+strconv.Itoa(score), o.CenterX, o.CenterY+10, config.SubtitleFontSize, config.TextLightColor)
	f.CenteredText("PRESS R TO RESTART", o.CenterX, o.CenterY+50, config.PromptFontSize, config.TextLightColor)
}

// PauseOverlay is drawn while the session is paused.
type PauseOverlay struct {
	CenterX, CenterY float64
}

func NewPauseOverlay() *PauseOverlay {
	return &PauseOverlay{CenterX: config.ScreenWidth / 2, CenterY: config.ScreenHeight / 2}
}

func (o *PauseOverlay) Draw(f *render.Frame) {
	f.Fill(config.PauseOverlayColor)
	f.CenteredText("PAUSED", o.CenterX, o.CenterY, config.TitleFontSize, config.TextLightColor)
	f.CenteredText("PRESS P TO RESUME", o.CenterX, o.CenterY+40, config.PromptFontSize, config.TextLightColor)
}

// TitleBanner is the title screen text.
type TitleBanner struct {
	CenterX, CenterY float64
}

func NewTitleBanner() *TitleBanner {
	return &TitleBanner{CenterX: config.ScreenWidth / 2, CenterY: config.ScreenHeight / 2}
}

func (t *TitleBanner) Draw(f *render.Frame) {
	f.CenteredText("STAR INVADERS", t.CenterX, t.CenterY-40, config.TitleFontSize, config.PlayerColor)
	f.CenteredText("ARROWS/WASD MOVE  SPACE FIRE  P PAUSE", t.CenterX, t.CenterY+10, config.PromptFontSize, config.TextLightColor)
	f.CenteredText("PRESS SPACE TO START", t.CenterX, t.CenterY+50, config.PromptFontSize, config.TextLightColor)
}
