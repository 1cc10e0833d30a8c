// cmd/sim/main.go runs a seeded session without a window, driven by the
// autopilot, and logs a summary. Useful for replay checks and profiling.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/host"
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

// parseArgs reads the shared options plus -frames. The sim defaults to
// seed 1 and skips the title screen.
func parseArgs(name string, args []string) (config.Options, int, error) {
	opts := config.DefaultOptions()
	opts.Seed = 1
	opts.ShowTitle = false
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	config.BindFlags(fs, &opts)
	frames := fs.Int("frames", 3600, "number of frames to simulate")
	if err := config.ParseFlagSet(fs, args, &opts); err != nil {
		return config.Options{}, 0, err
	}
	if *frames < 0 {
		return config.Options{}, 0, fmt.Errorf("%w: frames must not be negative, got %d", config.ErrInvalidOption, *frames)
	}
	return opts, *frames, nil
}

func run(name string, args []string) error {
	opts, frames, err := parseArgs(name, args)
	if err != nil {
		return err
	}
	// -quiet глушит только события, итог печатается всегда
	closer, err := logging.Setup(opts.LogFile, false)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer closer.Close()
	host.StartProfiler(opts.PprofAddr)

	eventLog := log.Default()
	if opts.Quiet {
		eventLog = log.New(io.Discard, "", 0)
	}
	session := host.NewSession(opts, eventLog)
	runner := host.NewRunner(session.Machine, host.NewAutopilot(session.Game), host.NewStepClock(time.Second/60))

	start := time.Now()
	for i := 0; i < frames; i++ {
		runner.Step()
	}
	s := session.Game.World.Session
	ev := session.Events
	log.Printf("seed %d, %d frames in %v", session.Seed, runner.Frames(), time.Since(start))
	log.Printf("score %d, level %d, lives %d, over %v (%s)", s.Score, s.Level, s.Lives, s.GameOver, s.Outcome)
	log.Printf("kills %d, hits %d, waves %d, games lost %d, restarts %d", ev.Kills, ev.Hits, ev.Waves, ev.Games, ev.Restarts)
	return nil
}
