package ebitenhost

import (
	"go-space-invaders/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = []struct {
	action input.Action
	keys   []ebiten.Key
}{
	{input.MoveLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{input.MoveRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{input.MoveUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{input.MoveDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{input.Fire, []ebiten.Key{ebiten.KeySpace}},
	{input.Restart, []ebiten.Key{ebiten.KeyR}},
	{input.Pause, []ebiten.Key{ebiten.KeyP}},
	{input.Quit, []ebiten.Key{ebiten.KeyEscape}},
}

// KeyboardSource reads the ebiten keyboard state. It must be polled from
// the ebiten Update callback.
type KeyboardSource struct{}

func (KeyboardSource) Poll() input.Snapshot {
	var s input.Snapshot
	for _, b := range keyBindings {
		for _, k := range b.keys {
			switch {
			case inpututil.IsKeyJustPressed(k):
				s = s.WithPressed(b.action)
			case ebiten.IsKeyPressed(k):
				s = s.WithHeld(b.action)
			}
		}
	}
	return s
}
