package host

import (
	"log"

	game "go-space-invaders/internal/app"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/state"
	"go-space-invaders/internal/utils"
)

// Session bundles what every host builds at start-up.
type Session struct {
	Machine *state.StateMachine
	Game    *game.Game
	Events  *game.EventLogger
	Seed    int64
}

// NewSession seeds the random source, builds the game and enters either the
// title screen or play, as opts asks. logger may be nil.
func NewSession(opts config.Options, logger *log.Logger) *Session {
	rng := utils.NewPRNGService(opts.Seed)
	dispatcher := event.NewDispatcher()
	events := game.NewEventLogger(dispatcher, logger)
	g := game.NewGame(rng, dispatcher)

	sm := state.NewStateMachine()
	if opts.ShowTitle {
		sm.SetState(state.NewTitleState(sm, g))
	} else {
		sm.SetState(state.NewPlayState(sm, g))
	}
	return &Session{Machine: sm, Game: g, Events: events, Seed: rng.Seed()}
}
