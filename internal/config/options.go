package config

import (
	"errors"
	"flag"
	"fmt"
)

// ErrInvalidOption is wrapped by every validation failure in ParseOptions.
var ErrInvalidOption = errors.New("invalid option")

// Options are the runtime settings shared by all hosts.
type Options struct {
	Seed      int64   // 0 = сид от текущего времени
	Scale     float64 // множитель размера окна
	ShowTitle bool
	LogFile   string
	Quiet     bool
	PprofAddr string // пусто = профилировщик выключен
}

// DefaultOptions returns the settings used when no flags are given.
func DefaultOptions() Options {
	return Options{
		Seed:      0,
		Scale:     1.0,
		ShowTitle: true,
	}
}

// ParseOptions parses args (without the program name) into Options.
func ParseOptions(name string, args []string) (Options, error) {
	opts := DefaultOptions()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	BindFlags(fs, &opts)
	if err := ParseFlagSet(fs, args, &opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// BindFlags registers the shared flags on fs, using the current values of
// opts as defaults. Binaries with extra flags add them to the same set.
func BindFlags(fs *flag.FlagSet, opts *Options) {
	fs.Int64Var(&opts.Seed, "seed", opts.Seed, "random seed, 0 picks one from the clock")
	fs.Float64Var(&opts.Scale, "scale", opts.Scale, "window scale factor")
	fs.BoolVar(&opts.ShowTitle, "title", opts.ShowTitle, "start on the title screen")
	fs.StringVar(&opts.LogFile, "log", opts.LogFile, "write logs to this file")
	fs.BoolVar(&opts.Quiet, "quiet", opts.Quiet, "discard log output")
	fs.StringVar(&opts.PprofAddr, "pprof", opts.PprofAddr, "serve net/http/pprof on this address, e.g. localhost:6060")
}

// ParseFlagSet parses args on fs and validates the options bound to it.
// On failure opts is reset to the zero value.
func ParseFlagSet(fs *flag.FlagSet, args []string, opts *Options) error {
	if err := fs.Parse(args); err != nil {
		*opts = Options{}
		return fmt.Errorf("parse flags: %w", err)
	}
	if err := opts.Validate(); err != nil {
		*opts = Options{}
		return err
	}
	return nil
}

// Validate checks value ranges.
func (o Options) Validate() error {
	if o.Scale <= 0 {
		return fmt.Errorf("%w: scale must be positive, got %v", ErrInvalidOption, o.Scale)
	}
	if o.Scale > 4 {
		return fmt.Errorf("%w: scale must be at most 4, got %v", ErrInvalidOption, o.Scale)
	}
	return nil
}

// WindowSize returns the scaled window dimensions.
func (o Options) WindowSize() (int, int) {
	return int(float64(ScreenWidth) * o.Scale), int(float64(ScreenHeight) * o.Scale)
}
