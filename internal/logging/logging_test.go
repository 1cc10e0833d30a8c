package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func restoreLogger(t *testing.T) {
	t.Helper()
	out, flags, prefix := log.Writer(), log.Flags(), log.Prefix()
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
		log.SetPrefix(prefix)
	})
}

func TestSetupQuiet(t *testing.T) {
	restoreLogger(t)
	c, err := Setup("ignored.log", true)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer c.Close()
	if log.Writer() != io.Discard {
		t.Errorf("log output = %v, want io.Discard", log.Writer())
	}
}

func TestSetupFile(t *testing.T) {
	restoreLogger(t)
	path := filepath.Join(t.TempDir(), "game.log")
	c, err := Setup(path, false)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	log.Println("hello")
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(data)
	if !strings.HasPrefix(line, Prefix) || !strings.HasSuffix(line, "hello\n") {
		t.Errorf("log line = %q", line)
	}
	if log.Flags() != Flags {
		t.Errorf("flags = %d, want %d", log.Flags(), Flags)
	}
}

func TestSetupBadPath(t *testing.T) {
	restoreLogger(t)
	path := filepath.Join(t.TempDir(), "missing", "game.log")
	if _, err := Setup(path, false); err == nil {
		t.Fatal("expected error for a missing directory")
	}
}

func TestSetupDefault(t *testing.T) {
	restoreLogger(t)
	c, err := Setup("", false)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer c.Close()
	if log.Writer() != os.Stderr {
		t.Error("expected stderr")
	}
}
