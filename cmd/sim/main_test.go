package main

import (
	"errors"
	"flag"
	"testing"

	"go-space-invaders/internal/config"
)

func TestParseArgsDefaults(t *testing.T) {
	opts, frames, err := parseArgs("sim", nil)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if frames != 3600 || opts.Seed != 1 || opts.ShowTitle || opts.Scale != 1.0 {
		t.Fatalf("opts = %+v, frames = %d", opts, frames)
	}
}

func TestParseArgsOverrides(t *testing.T) {
	opts, frames, err := parseArgs("sim", []string{"-frames", "60", "-seed", "42", "-quiet"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if frames != 60 || opts.Seed != 42 || !opts.Quiet {
		t.Fatalf("opts = %+v, frames = %d", opts, frames)
	}
}

func TestParseArgsInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero scale", []string{"-scale", "0"}},
		{"large scale", []string{"-scale", "9"}},
		{"negative frames", []string{"-frames", "-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := parseArgs("sim", tt.args); !errors.Is(err, config.ErrInvalidOption) {
				t.Fatalf("err = %v, want ErrInvalidOption", err)
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	if err := run("sim", []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err = %v, want flag.ErrHelp", err)
	}
}

func TestRunShortSession(t *testing.T) {
	if err := run("sim", []string{"-frames", "30", "-quiet"}); err != nil {
		t.Fatalf("run: %v", err)
	}
}
