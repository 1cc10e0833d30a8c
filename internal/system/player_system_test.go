package system

import (
	"testing"
	"time"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/input"
)

func TestPlayerMovementIsClamped(t *testing.T) {
	tests := []struct {
		name  string
		held  []input.Action
		wantX float64
		wantY float64
	}{
		{"left and up", []input.Action{input.MoveLeft, input.MoveUp}, 0, config.ScreenHeight / 2},
		{"right and down", []input.Action{input.MoveRight, input.MoveDown}, config.ScreenWidth - config.PlayerWidth, config.ScreenHeight - config.PlayerHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := entity.NewWorld()
			s := NewPlayerSystem(w)
			in := input.Held(tt.held...)
			for i := 0; i < 300; i++ {
				s.Update(in, time.Duration(i)*16*time.Millisecond)
				p := &w.Player
				if p.X < 0 || p.X > 770 || p.Y < 300 || p.Y > 580 {
					t.Fatalf("frame %d: player out of bounds at (%v, %v)", i, p.X, p.Y)
				}
			}
			if w.Player.X != tt.wantX || w.Player.Y != tt.wantY {
				t.Errorf("player at (%v, %v), want (%v, %v)", w.Player.X, w.Player.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestMoveLeftAtLeftEdgeStaysPut(t *testing.T) {
	w := entity.NewWorld()
	w.Player.X = 0
	s := NewPlayerSystem(w)
	for i := 0; i < 10; i++ {
		s.Update(input.Held(input.MoveLeft), time.Duration(i)*16*time.Millisecond)
		if w.Player.X != 0 {
			t.Fatalf("frame %d: x = %v, want 0", i, w.Player.X)
		}
	}
}

func TestFireCooldown(t *testing.T) {
	w := entity.NewWorld()
	s := NewPlayerSystem(w)
	fire := input.Held(input.Fire)

	s.Update(fire, 0)
	if len(w.Bullets) != 1 {
		t.Fatalf("first shot: %d bullets, want 1", len(w.Bullets))
	}
	s.Update(fire, 150*time.Millisecond)
	if len(w.Bullets) != 1 {
		t.Fatalf("shot inside cooldown: %d bullets, want 1", len(w.Bullets))
	}
	s.Update(fire, 200*time.Millisecond)
	if len(w.Bullets) != 2 {
		t.Fatalf("shot after cooldown: %d bullets, want 2", len(w.Bullets))
	}

	b := w.Bullets[0]
	p := w.Player
	if b.Owner != component.OwnerPlayer {
		t.Errorf("owner = %v, want player", b.Owner)
	}
	if got, want := b.X+b.W/2, p.X+p.W/2; got != want {
		t.Errorf("bullet center x = %v, want %v", got, want)
	}
	if got := b.Y + b.H; got != p.Y {
		t.Errorf("bullet bottom = %v, want player top %v", got, p.Y)
	}
}

func TestDeadPlayerDoesNothing(t *testing.T) {
	w := entity.NewWorld()
	w.Player.Alive = false
	x := w.Player.X
	NewPlayerSystem(w).Update(input.Held(input.Fire, input.MoveLeft), 0)
	if len(w.Bullets) != 0 || w.Player.X != x {
		t.Fatal("dead player should neither move nor fire")
	}
}
