// internal/app/game.go
package app

import (
	"time"

	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/system"
	"go-space-invaders/internal/ui"
	"go-space-invaders/internal/utils"
	"go-space-invaders/pkg/render"
)

// Game holds the world and the systems that advance it.
type Game struct {
	World           *entity.World
	EventDispatcher *event.Dispatcher
	Rng             utils.RNG

	StarfieldSystem    *system.StarfieldSystem
	VisualEffectSystem *system.VisualEffectSystem
	PlayerSystem       *system.PlayerSystem
	ProjectileSystem   *system.ProjectileSystem
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	CollisionSystem    *system.CollisionSystem
	WaveSystem         *system.WaveSystem
	StateSystem        *system.StateSystem
	RenderSystem       *system.RenderSystem

	HUD             *ui.HUD
	GameOverOverlay *ui.GameOverOverlay
	PauseOverlay    *ui.PauseOverlay
}

// NewGame initializes a new session. rng drives enemy fire and the
// starfield; pass a seeded source for reproducible runs.
func NewGame(rng utils.RNG, eventDispatcher *event.Dispatcher) *Game {
	if rng == nil {
		panic("rng cannot be nil")
	}
	if eventDispatcher == nil {
		eventDispatcher = event.NewDispatcher()
	}

	world := entity.NewWorld()
	g := &Game{
		World:              world,
		EventDispatcher:    eventDispatcher,
		Rng:                rng,
		StarfieldSystem:    system.NewStarfieldSystem(world, rng),
		VisualEffectSystem: system.NewVisualEffectSystem(world, eventDispatcher),
		PlayerSystem:       system.NewPlayerSystem(world),
		ProjectileSystem:   system.NewProjectileSystem(world),
		MovementSystem:     system.NewMovementSystem(world),
		CombatSystem:       system.NewCombatSystem(world, rng),
		CollisionSystem:    system.NewCollisionSystem(world, eventDispatcher),
		WaveSystem:         system.NewWaveSystem(world, eventDispatcher),
		StateSystem:        system.NewStateSystem(world, eventDispatcher),
		RenderSystem:       system.NewRenderSystem(world),
		HUD:                ui.NewHUD(),
		GameOverOverlay:    ui.NewGameOverOverlay(),
		PauseOverlay:       ui.NewPauseOverlay(),
	}
	g.StarfieldSystem.Seed()
	system.SpawnWave(world)
	return g
}

// Update advances the session by one frame. Restart and pause are edge
// triggered and handled before the simulation step; the step itself is
// skipped while the game is over or paused.
func (g *Game) Update(in input.Snapshot, now time.Duration) {
	session := &g.World.Session
	if session.GameOver {
		if in.Pressed(input.Restart) {
			g.Restart()
		}
		return
	}
	if in.Pressed(input.Pause) {
		g.TogglePause()
	}
	if session.Paused {
		return
	}

	// Порядок шагов важен для детерминированного воспроизведения
	g.StarfieldSystem.Update()
	g.VisualEffectSystem.Update()
	g.PlayerSystem.Update(in, now)
	g.ProjectileSystem.Update()
	g.MovementSystem.Update()
	g.CombatSystem.Update()
	g.CollisionSystem.Update()
	g.ProjectileSystem.Cleanup()
	if !session.GameOver {
		g.WaveSystem.Update()
		g.StateSystem.Update()
	}
	session.Frame++
}

// Render describes the current world into f. A nil frame means there is no
// surface to draw on, and Render does nothing.
func (g *Game) Render(f *render.Frame) {
	if f == nil {
		return
	}
	g.RenderSystem.Draw(f)
	session := &g.World.Session
	g.HUD.Draw(f, session)
	switch {
	case session.GameOver:
		g.GameOverOverlay.Draw(f, session.Score)
	case session.Paused:
		g.PauseOverlay.Draw(f)
	}
}

// Restart resets the session after a game over. It does nothing while a
// session is still running.
func (g *Game) Restart() {
	if !g.World.Session.GameOver {
		return
	}
	g.World.ResetSession()
	g.World.ResetPlayer()
	g.World.ClearBullets()
	g.VisualEffectSystem.Clear()
	system.SpawnWave(g.World)
	g.EventDispatcher.Emit(event.SessionRestarted, nil)
}

// TogglePause flips the paused flag of a running session.
func (g *Game) TogglePause() {
	session := &g.World.Session
	if session.GameOver {
		return
	}
	session.Paused = !session.Paused
	g.EventDispatcher.Emit(event.PauseToggled, event.PauseToggledData{Paused: session.Paused})
}

// IsOver reports whether the session has ended.
func (g *Game) IsOver() bool {
	return g.World.Session.GameOver
}
