package host

import (
	"math"

	game "go-space-invaders/internal/app"
	"go-space-invaders/internal/input"
)

// Autopilot plays the game for headless runs: it keeps the ship under the
// nearest enemy of the lowest row, holds fire, and restarts after a game
// over.
type Autopilot struct {
	game *game.Game
}

func NewAutopilot(g *game.Game) *Autopilot {
	return &Autopilot{game: g}
}

func (a *Autopilot) Poll() input.Snapshot {
	if a.game.IsOver() {
		return input.Pressed(input.Restart)
	}
	w := a.game.World
	p := &w.Player
	center := p.X + p.W/2

	target, bestY, bestDX := -1, math.Inf(-1), math.Inf(1)
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Alive {
			continue
		}
		dx := math.Abs(e.X + e.W/2 - center)
		if e.Y > bestY || (e.Y == bestY && dx < bestDX) {
			target, bestY, bestDX = i, e.Y, dx
		}
	}

	in := input.Held(input.Fire)
	if target < 0 {
		return in
	}
	e := &w.Enemies[target]
	switch want := e.X + e.W/2 + e.Speed*e.Direction; {
	case want < center-p.Speed:
		in = in.WithHeld(input.MoveLeft)
	case want > center+p.Speed:
		in = in.WithHeld(input.MoveRight)
	}
	return in
}
