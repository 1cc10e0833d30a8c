// Package input turns host keyboard state into per-frame snapshots.
package input

// Action is a logical input identifier.
type Action uint8

const (
	MoveLeft Action = iota
	MoveRight
	MoveUp
	MoveDown
	Fire
	Restart
	Pause
	Quit
	actionCount
)

var actionNames = [actionCount]string{"left", "right", "up", "down", "fire", "restart", "pause", "quit"}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// Snapshot is the input state sampled at the start of one frame.
// Held is level-triggered, Pressed is true only on the frame the key went down.
type Snapshot struct {
	held    uint16
	pressed uint16
}

func bit(a Action) uint16 { return 1 << a }

// Held reports whether a is currently down.
func (s Snapshot) Held(a Action) bool { return s.held&bit(a) != 0 }

// Pressed reports whether a went down this frame.
func (s Snapshot) Pressed(a Action) bool { return s.pressed&bit(a) != 0 }

// Empty reports whether nothing is held or pressed.
func (s Snapshot) Empty() bool { return s.held == 0 && s.pressed == 0 }

// WithHeld returns a copy of s with actions held.
func (s Snapshot) WithHeld(actions ...Action) Snapshot {
	for _, a := range actions {
		s.held |= bit(a)
	}
	return s
}

// WithPressed returns a copy of s with actions pressed. A pressed action is
// also held.
func (s Snapshot) WithPressed(actions ...Action) Snapshot {
	for _, a := range actions {
		s.pressed |= bit(a)
		s.held |= bit(a)
	}
	return s
}

// Held builds a snapshot with the given actions held.
func Held(actions ...Action) Snapshot { return Snapshot{}.WithHeld(actions...) }

// Pressed builds a snapshot with the given actions pressed.
func Pressed(actions ...Action) Snapshot { return Snapshot{}.WithPressed(actions...) }

// Source samples the host keyboard once per frame.
type Source interface {
	Poll() Snapshot
}

// SourceFunc adapts a function to Source.
type SourceFunc func() Snapshot

func (f SourceFunc) Poll() Snapshot { return f() }
