// Package ebitenhost runs the game in an ebiten window.
package ebitenhost

import (
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/host"

	"github.com/hajimehoshi/ebiten/v2"
)

// App implements ebiten.Game on top of a host.Runner.
type App struct {
	runner  *host.Runner
	painter *Painter
}

func NewApp(runner *host.Runner, painter *Painter) *App {
	return &App{runner: runner, painter: painter}
}

func (a *App) Update() error {
	if a.runner.Step() {
		return ebiten.Termination
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.painter.Paint(screen, a.runner.Frame())
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Run opens the window and blocks until it is closed or quit is pressed.
func Run(a *App, opts config.Options) error {
	w, h := opts.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(config.WindowTitle)
	return ebiten.RunGame(a)
}
