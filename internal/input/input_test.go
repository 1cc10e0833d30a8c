package input

import (
	"testing"
	"time"
)

func TestSnapshotHeldAndPressed(t *testing.T) {
	s := Held(MoveLeft, Fire).WithPressed(Restart)
	if !s.Held(MoveLeft) || !s.Held(Fire) || !s.Held(Restart) {
		t.Fatalf("missing held actions: %+v", s)
	}
	if s.Pressed(Fire) {
		t.Error("Fire should be held, not pressed")
	}
	if !s.Pressed(Restart) {
		t.Error("Restart should be pressed")
	}
	if s.Held(MoveRight) {
		t.Error("MoveRight should not be held")
	}
	if !(Snapshot{}).Empty() {
		t.Error("zero snapshot should be empty")
	}
}

func TestActionString(t *testing.T) {
	if MoveLeft.String() != "left" || Quit.String() != "quit" {
		t.Errorf("unexpected names %q %q", MoveLeft, Quit)
	}
	if Action(200).String() != "unknown" {
		t.Error("out of range action should be unknown")
	}
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestHoldLatchWindow(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	l := NewHoldLatch(150 * time.Millisecond)
	l.now = clock.now

	l.Press(MoveLeft)
	s := l.Poll()
	if !s.Held(MoveLeft) || !s.Pressed(MoveLeft) {
		t.Fatalf("first poll: %+v", s)
	}

	clock.t = clock.t.Add(100 * time.Millisecond)
	s = l.Poll()
	if !s.Held(MoveLeft) {
		t.Fatal("key should still be held inside the window")
	}
	if s.Pressed(MoveLeft) {
		t.Fatal("pressed edge must be reported once")
	}

	// auto-repeat keeps the key down without a new edge
	l.Press(MoveLeft)
	clock.t = clock.t.Add(100 * time.Millisecond)
	s = l.Poll()
	if !s.Held(MoveLeft) || s.Pressed(MoveLeft) {
		t.Fatalf("repeat: %+v", s)
	}

	clock.t = clock.t.Add(200 * time.Millisecond)
	if l.Poll().Held(MoveLeft) {
		t.Fatal("key should be released after the window")
	}

	l.Press(MoveLeft)
	if !l.Poll().Pressed(MoveLeft) {
		t.Fatal("press after release should be a new edge")
	}
}
