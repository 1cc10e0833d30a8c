package host

import (
	"context"
	"sync"
	"time"
)

// FrameTicker delivers a tick per period on C until stopped or until its
// context is canceled. Ticks are dropped while the reader is busy.
type FrameTicker struct {
	C <-chan time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewFrameTicker(ctx context.Context, period time.Duration) *FrameTicker {
	c := make(chan time.Time, 1)
	t := &FrameTicker{
		C:      c,
		ticker: time.NewTicker(period),
		done:   make(chan struct{}),
	}
	t.wg.Add(1)
	go t.loop(ctx, c)
	return t
}

func (t *FrameTicker) loop(ctx context.Context, c chan<- time.Time) {
	defer t.wg.Done()
	defer t.ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			t.Stop()
			return
		case <-t.done:
			return
		case now := <-t.ticker.C:
			select {
			case c <- now:
			default:
			}
		}
	}
}

// Stop halts the ticker. Safe to call more than once and from any goroutine.
func (t *FrameTicker) Stop() {
	t.stopOnce.Do(func() { close(t.done) })
}

// Done is closed once the ticker is stopped.
func (t *FrameTicker) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the tick goroutine has exited.
func (t *FrameTicker) Wait() {
	t.wg.Wait()
}
