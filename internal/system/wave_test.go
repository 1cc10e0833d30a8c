package system

import (
	"testing"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
)

func TestSpawnWaveCanonicalGrid(t *testing.T) {
	w := entity.NewWorld()
	SpawnWave(w)
	if w.WaveSerial != 1 {
		t.Fatalf("serial = %d, want 1", w.WaveSerial)
	}
	assertCanonicalWave(t, w)
}

func TestWaveClearAdvancesLevel(t *testing.T) {
	w := newWaveWorld()
	d := event.NewDispatcher()
	rec := newRecorder(d)
	for i := range w.Enemies {
		w.Enemies[i].Alive = false
		w.Enemies[i].Y = 999
	}

	NewWaveSystem(w, d).Update()

	if w.Session.Level != 2 {
		t.Fatalf("level = %d, want 2", w.Session.Level)
	}
	assertCanonicalWave(t, w)
	if rec.count(event.WaveCleared) != 1 {
		t.Fatalf("WaveCleared events = %d", rec.count(event.WaveCleared))
	}
	if data := rec.events[0].Data.(event.WaveClearedData); data.Level != 2 {
		t.Errorf("payload level = %d", data.Level)
	}
}

func TestWaveNotClearedWhileOneRemains(t *testing.T) {
	w := newWaveWorld()
	for i := 1; i < config.EnemyCount; i++ {
		w.Enemies[i].Alive = false
	}
	NewWaveSystem(w, event.NewDispatcher()).Update()
	if w.Session.Level != 1 || w.ActiveEnemies() != 1 {
		t.Fatalf("level=%d active=%d, want 1 and 1", w.Session.Level, w.ActiveEnemies())
	}
}

func assertCanonicalWave(t *testing.T, w *entity.World) {
	t.Helper()
	if got := w.ActiveEnemies(); got != config.EnemyCount {
		t.Fatalf("active = %d, want %d", got, config.EnemyCount)
	}
	for row := 0; row < config.EnemyRows; row++ {
		for col := 0; col < config.EnemyCols; col++ {
			e := w.Enemies[row*config.EnemyCols+col]
			wantX := config.EnemyOriginX + float64(col)*config.EnemySpacingX
			wantY := config.EnemyOriginY + float64(row)*config.EnemySpacingY
			if e.X != wantX || e.Y != wantY {
				t.Fatalf("enemy (%d,%d) at (%v, %v), want (%v, %v)", row, col, e.X, e.Y, wantX, wantY)
			}
			if e.Direction != 1 || e.Speed != config.EnemySpeed {
				t.Fatalf("enemy (%d,%d) dir=%v speed=%v", row, col, e.Direction, e.Speed)
			}
		}
	}
}
