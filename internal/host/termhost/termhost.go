// Package termhost runs the game in a terminal through tcell.
package termhost

import (
	"context"
	"fmt"
	"log"
	"time"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/host"
	"go-space-invaders/internal/input"

	"github.com/gdamore/tcell/v2"
)

// Terminal owns the tcell screen and the key latch fed by its events.
type Terminal struct {
	screen tcell.Screen
	latch  *input.HoldLatch
	buf    *Buffer
}

// New initializes the terminal screen. Close must be called to restore it.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	cols, rows := screen.Size()
	return &Terminal{
		screen: screen,
		latch:  input.NewHoldLatch(config.TerminalHoldWindow),
		buf:    NewBuffer(cols, rows),
	}, nil
}

// Source returns the input source to give to the host.Runner.
func (t *Terminal) Source() input.Source {
	return t.latch
}

func (t *Terminal) Close() {
	t.screen.Fini()
}

// Run drives runner at TerminalFrameRate until quit is pressed or ctx is
// done. The screen is only touched from the calling goroutine, except for
// PollEvent.
func (t *Terminal) Run(ctx context.Context, runner *host.Runner) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := host.NewFrameTicker(ctx, time.Second/config.TerminalFrameRate)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			t.handleEvent(ev)
		case <-ticker.C:
			if runner.Step() {
				return nil
			}
			t.buf.Compose(runner.Frame())
			t.buf.Flush(t.screen)
		}
	}
}

func (t *Terminal) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if a, ok := actionFor(ev.Key(), ev.Rune()); ok {
			t.latch.Press(a)
		}
	case *tcell.EventResize:
		cols, rows := t.screen.Size()
		t.buf.Resize(cols, rows)
		t.screen.Sync()
		log.Printf("terminal resized to %dx%d", cols, rows)
	}
}
