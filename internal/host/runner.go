// Package host drives a state machine from a keyboard source and a clock.
// The library specific windows live in the subpackages.
package host

import (
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/state"
	"go-space-invaders/pkg/render"
)

// Runner performs one poll, update, draw cycle per Step.
type Runner struct {
	machine *state.StateMachine
	source  input.Source
	clock   Clock
	frame   *render.Frame
	frames  uint64
}

// NewRunner wires a machine to its input source. A nil clock means wall time.
func NewRunner(machine *state.StateMachine, source input.Source, clock Clock) *Runner {
	if clock == nil {
		clock = NewWallClock()
	}
	return &Runner{
		machine: machine,
		source:  source,
		clock:   clock,
		frame:   render.NewFrame(config.ScreenWidth, config.ScreenHeight),
	}
}

// Step runs one frame and reports whether the quit action was pressed. On
// quit nothing is updated and the previous frame is kept.
func (r *Runner) Step() (quit bool) {
	in := r.source.Poll()
	if in.Pressed(input.Quit) {
		return true
	}
	r.machine.Update(in, r.clock.Elapsed())
	r.frame.Reset()
	r.machine.Draw(r.frame)
	r.frames++
	return false
}

// Frame returns the draw list of the last Step.
func (r *Runner) Frame() *render.Frame {
	return r.frame
}

// Frames returns the number of completed steps.
func (r *Runner) Frames() uint64 {
	return r.frames
}
