package system

import (
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
)

// stubRNG returns fixed values; f = 0.99 keeps the wave from firing.
type stubRNG struct {
	f     float64
	n     int
	intns []int // аргументы вызовов Intn
}

func (r *stubRNG) Float64() float64 { return r.f }

func (r *stubRNG) Intn(n int) int {
	r.intns = append(r.intns, n)
	if r.n >= n {
		return n - 1
	}
	return r.n
}

func quietRNG() *stubRNG { return &stubRNG{f: 0.99} }

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newWaveWorld() *entity.World {
	w := entity.NewWorld()
	SpawnWave(w)
	return w
}

func newRecorder(d *event.Dispatcher) *recorder {
	r := &recorder{}
	d.Subscribe(r, event.All...)
	return r
}
