// cmd/game_raylib/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/host"
	"go-space-invaders/internal/host/rlhost"
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
	closer, err := logging.Setup(opts.LogFile, opts.Quiet)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer closer.Close()
	host.StartProfiler(opts.PprofAddr)

	session := host.NewSession(opts, nil)
	log.Printf("starting, seed %d", session.Seed)

	runner := host.NewRunner(session.Machine, rlhost.KeyboardSource{}, nil)
	rlhost.Run(runner, opts)
	log.Printf("exit after %d frames, score %d", runner.Frames(), session.Game.World.Session.Score)
	return nil
}
