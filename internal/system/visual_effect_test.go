package system

import (
	"testing"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/event"
	"go-space-invaders/pkg/render"
)

func TestFlashFollowsKill(t *testing.T) {
	w := newWaveWorld()
	d := event.NewDispatcher()
	fx := NewVisualEffectSystem(w, d)
	cs := NewCollisionSystem(w, d)

	w.SpawnBullet(110, 55, config.PlayerBulletSpeed, component.OwnerPlayer)
	cs.Update()

	if len(w.Flashes) != 1 {
		t.Fatalf("flashes = %d, want 1", len(w.Flashes))
	}
	fl := w.Flashes[0]
	if fl.Position != w.Enemies[0].Position || fl.Timer != config.FlashFrames {
		t.Fatalf("flash = %+v", fl)
	}

	for i := 0; i < config.FlashFrames-1; i++ {
		fx.Update()
	}
	if len(w.Flashes) != 1 || w.Flashes[0].Timer != 1 {
		t.Fatalf("flash should have one frame left: %+v", w.Flashes)
	}
	fx.Update()
	if len(w.Flashes) != 0 {
		t.Fatal("flash should expire")
	}
}

func TestFlashIgnoresBadPayload(t *testing.T) {
	w := newWaveWorld()
	d := event.NewDispatcher()
	NewVisualEffectSystem(w, d)
	d.Emit(event.EnemyDestroyed, event.EnemyDestroyedData{Enemy: config.EnemyCount})
	d.Emit(event.EnemyDestroyed, nil)
	if len(w.Flashes) != 0 {
		t.Fatalf("flashes = %d, want 0", len(w.Flashes))
	}
}

func TestDrawFlashFades(t *testing.T) {
	w := newWaveWorld()
	w.Flashes = append(w.Flashes, component.Flash{
		Position: component.Position{X: 100, Y: 50},
		Size:     component.Size{W: 30, H: 20},
		Timer:    config.FlashFrames / 2,
	})
	f := render.NewFrame(config.ScreenWidth, config.ScreenHeight)
	NewRenderSystem(w).DrawFlashes(f)

	if len(f.Cmds) != 1 {
		t.Fatalf("%d commands, want 1", len(f.Cmds))
	}
	c := f.Cmds[0]
	grow := config.FlashGrow / 2
	if c.X != 100-grow || c.W != 30+2*grow || c.Color.A != 128 {
		t.Fatalf("flash command = %+v", c)
	}
}
