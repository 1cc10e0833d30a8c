package config

import (
	"errors"
	"flag"
	"io"
	"testing"
)

func TestParseOptionsDefaults(t *testing.T) {
	opts, err := ParseOptions("test", nil)
	if err != nil {
		t.Fatalf("ParseOptions: %v", err)
	}
	if opts.Scale != 1.0 || !opts.ShowTitle || opts.Seed != 0 {
		t.Fatalf("unexpected defaults: %+v", opts)
	}
	w, h := opts.WindowSize()
	if w != ScreenWidth || h != ScreenHeight {
		t.Fatalf("WindowSize = %dx%d, want %dx%d", w, h, ScreenWidth, ScreenHeight)
	}
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(Options) bool
	}{
		{
			name:  "seed and scale",
			args:  []string{"-seed", "42", "-scale", "1.5"},
			check: func(o Options) bool { return o.Seed == 42 && o.Scale == 1.5 },
		},
		{
			name:  "skip title",
			args:  []string{"-title=false"},
			check: func(o Options) bool { return !o.ShowTitle },
		},
		{
			name:  "log file and quiet",
			args:  []string{"-log", "out.log", "-quiet"},
			check: func(o Options) bool { return o.LogFile == "out.log" && o.Quiet },
		},
		{
			name:  "pprof",
			args:  []string{"-pprof", "localhost:6060"},
			check: func(o Options) bool { return o.PprofAddr == "localhost:6060" },
		},
		{name: "zero scale", args: []string{"-scale", "0"}, wantErr: true},
		{name: "negative scale", args: []string{"-scale", "-2"}, wantErr: true},
		{name: "huge scale", args: []string{"-scale", "10"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ParseOptions("test", tt.args)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidOption) {
					t.Fatalf("err = %v, want ErrInvalidOption", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOptions: %v", err)
			}
			if !tt.check(opts) {
				t.Errorf("unexpected options: %+v", opts)
			}
		})
	}
}

func TestParseOptionsUnknownFlag(t *testing.T) {
	if _, err := ParseOptions("test", []string{"-nope"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestBindFlagsWithExtraFlags(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 1
	opts.ShowTitle = false
	fs := flag.NewFlagSet("sim", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	BindFlags(fs, &opts)
	frames := fs.Int("frames", 100, "")

	if err := ParseFlagSet(fs, []string{"-frames", "7", "-quiet"}, &opts); err != nil {
		t.Fatalf("ParseFlagSet: %v", err)
	}
	if *frames != 7 || !opts.Quiet || opts.Seed != 1 || opts.ShowTitle {
		t.Fatalf("opts = %+v, frames = %d", opts, *frames)
	}
}

func TestParseFlagSetValidates(t *testing.T) {
	opts := DefaultOptions()
	fs := flag.NewFlagSet("sim", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	BindFlags(fs, &opts)
	if err := ParseFlagSet(fs, []string{"-scale", "0"}, &opts); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("err = %v, want ErrInvalidOption", err)
	}
}

func TestParseFlagSetHelp(t *testing.T) {
	opts := DefaultOptions()
	fs := flag.NewFlagSet("sim", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	BindFlags(fs, &opts)
	if err := ParseFlagSet(fs, []string{"-h"}, &opts); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err = %v, want flag.ErrHelp", err)
	}
}
