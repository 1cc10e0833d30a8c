package host

import "time"

// Clock reports the time elapsed since the session started.
type Clock interface {
	Elapsed() time.Duration
}

// WallClock measures real time from its creation.
type WallClock struct {
	start time.Time
	now   func() time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{start: time.Now(), now: time.Now}
}

func (c *WallClock) Elapsed() time.Duration {
	return c.now().Sub(c.start)
}

// StepClock advances by a fixed step on every read. Headless runs use it
// so a replay does not depend on the machine speed.
type StepClock struct {
	Step    time.Duration
	elapsed time.Duration
	started bool
}

func NewStepClock(step time.Duration) *StepClock {
	return &StepClock{Step: step}
}

// Elapsed returns 0 on the first call and one Step more on each next call.
func (c *StepClock) Elapsed() time.Duration {
	if !c.started {
		c.started = true
		return 0
	}
	c.elapsed += c.Step
	return c.elapsed
}
