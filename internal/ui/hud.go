// internal/ui/hud.go
package ui

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/pkg/render"
)

// HUD is the fixed score/level/lives overlay along the top edge.
type HUD struct {
	Score *ScoreIndicator
	Level *LevelIndicator
	Lives *LivesIndicator
}

func NewHUD() *HUD {
	return &HUD{
		Score: NewScoreIndicator(config.HUDMarginX, config.HUDBaselineY, config.HUDFontSize),
		Level: NewLevelIndicator(config.ScreenWidth/2, config.HUDBaselineY, config.HUDFontSize),
		Lives: NewLivesIndicator(config.ScreenWidth-config.HUDLivesOffsetX, config.HUDBaselineY, config.HUDFontSize),
	}
}

func (h *HUD) Draw(f *render.Frame, s *component.Session) {
	h.Score.Draw(f, s.Score)
	h.Level.Draw(f, s.Level)
	h.Lives.Draw(f, s.Lives)
}
