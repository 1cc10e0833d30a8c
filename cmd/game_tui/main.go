// cmd/game_tui/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/host"
	"go-space-invaders/internal/host/termhost"
	"go-space-invaders/internal/logging"
)

func main() {
	if err := run(os.Args[0], os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

func run(name string, args []string) error {
	opts, err := config.ParseOptions(name, args)
	if err != nil {
		return err
	}
	// Экран занимает терминал, поэтому без -log вывод отбрасывается
	closer, err := logging.Setup(opts.LogFile, opts.Quiet || opts.LogFile == "")
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer closer.Close()
	host.StartProfiler(opts.PprofAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := host.NewSession(opts, nil)
	log.Printf("starting, seed %d", session.Seed)

	term, err := termhost.New()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer term.Close()
	runner := host.NewRunner(session.Machine, term.Source(), nil)
	if err := term.Run(ctx, runner); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("run game: %w", err)
	}
	log.Printf("exit after %d frames, score %d", runner.Frames(), session.Game.World.Session.Score)
	return nil
}
