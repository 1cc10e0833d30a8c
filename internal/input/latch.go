package input

import (
	"sync"
	"time"
)

// HoldLatch derives held/pressed state from key-down events alone, for hosts
// (terminals) that never report key release. A key stays held for window
// after its most recent event. Events and polls may come from different
// goroutines.
type HoldLatch struct {
	mu      sync.Mutex
	window  time.Duration
	now     func() time.Time
	last    [actionCount]time.Time
	pending uint16
}

// NewHoldLatch returns a latch using the wall clock.
func NewHoldLatch(window time.Duration) *HoldLatch {
	return &HoldLatch{window: window, now: time.Now}
}

// Press records a key-down (or auto-repeat) event for a.
func (l *HoldLatch) Press(a Action) {
	if a >= actionCount {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	if !l.activeLocked(a, now) {
		l.pending |= bit(a)
	}
	l.last[a] = now
}

// Poll implements Source. Pressed edges are reported once.
func (l *HoldLatch) Poll() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	var s Snapshot
	for a := Action(0); a < actionCount; a++ {
		if l.activeLocked(a, now) {
			s.held |= bit(a)
		}
	}
	s.pressed = l.pending
	s.held |= l.pending
	l.pending = 0
	return s
}

func (l *HoldLatch) activeLocked(a Action, now time.Time) bool {
	t := l.last[a]
	return !t.IsZero() && now.Sub(t) < l.window
}
