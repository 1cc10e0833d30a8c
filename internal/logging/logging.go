// Package logging points the standard logger at the destination chosen on
// the command line.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

const (
	Prefix = "[invaders] "
	Flags  = log.LstdFlags | log.Lmicroseconds
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup configures the standard logger. With quiet set all output is
// discarded; with a path it is appended to that file; otherwise it stays on
// stderr. The returned closer must be closed before exit.
func Setup(path string, quiet bool) (io.Closer, error) {
	log.SetFlags(Flags)
	log.SetPrefix(Prefix)

	switch {
	case quiet:
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(f)
		return f, nil
	default:
		log.SetOutput(os.Stderr)
		return nopCloser{}, nil
	}
}
