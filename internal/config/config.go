// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	WindowTitle  = "Star Invaders"

	// Игрок
	PlayerWidth  = 30.0
	PlayerHeight = 20.0
	PlayerSpeed  = 5.0
	PlayerStartX = (ScreenWidth - PlayerWidth) / 2
	PlayerStartY = ScreenHeight - 60.0
	ShotCooldown = 200 * time.Millisecond

	// Снаряды
	BulletWidth       = 4.0
	BulletHeight      = 10.0
	PlayerBulletSpeed = 7.0
	EnemyBulletSpeed  = 4.0
	BulletCapacity    = 64

	// Волна врагов
	EnemyRows       = 5
	EnemyCols       = 10
	EnemyCount      = EnemyRows * EnemyCols
	EnemyWidth      = 30.0
	EnemyHeight     = 20.0
	EnemySpeed      = 1.0
	EnemyOriginX    = 100.0
	EnemyOriginY    = 50.0
	EnemySpacingX   = 60.0
	EnemySpacingY   = 40.0
	EnemyDrop       = 20.0
	EnemyFireChance = 0.02

	// Сессия
	ScorePerKill = 10
	InitialLives = 3
	InitialLevel = 1

	// Звёздное небо
	StarCount         = 100
	StarSize          = 2.0
	StarMinSpeed      = 0.5
	StarMaxSpeed      = 2.5
	StarMinBrightness = 0.2
	StarMaxBrightness = 1.0

	// Вспышка при уничтожении врага
	FlashFrames = 12
	FlashGrow   = 8.0

	// Сетка resolv для широкой фазы коллизий
	CollisionCellSize = 32

	// HUD
	HUDFontSize      = 16
	HUDBaselineY     = 24
	HUDMarginX       = 10
	HUDLivesOffsetX  = 110
	TitleFontSize    = 48
	SubtitleFontSize = 24
	PromptFontSize   = 18

	// Терминал: клавиша считается зажатой столько после последнего события
	TerminalHoldWindow = 150 * time.Millisecond
	TerminalFrameRate  = 60
)

var (
	BackgroundColor   = color.NRGBA{5, 5, 20, 255}
	StarColor         = color.NRGBA{255, 255, 255, 255}
	PlayerColor       = color.NRGBA{60, 220, 90, 255}
	PlayerDetailColor = color.NRGBA{200, 255, 210, 255}
	EnemyColor        = color.NRGBA{220, 60, 200, 255}
	EnemyDetailColor  = color.NRGBA{30, 10, 40, 255}
	PlayerBulletColor = color.NRGBA{255, 240, 80, 255}
	EnemyBulletColor  = color.NRGBA{255, 70, 70, 255}
	FlashColor        = color.NRGBA{255, 200, 80, 255}
	TextLightColor    = color.NRGBA{240, 240, 240, 255}
	GameOverColor     = color.NRGBA{255, 60, 60, 255}
	OverlayColor      = color.NRGBA{0, 0, 0, 178} // 0.7
	PauseOverlayColor = color.NRGBA{0, 0, 0, 128}
)
