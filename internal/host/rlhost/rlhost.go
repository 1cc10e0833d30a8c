// Package rlhost runs the game in a raylib window.
package rlhost

import (
	"image/color"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/host"
	"go-space-invaders/internal/input"
	"go-space-invaders/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyBindings = []struct {
	action input.Action
	keys   []int32
}{
	{input.MoveLeft, []int32{rl.KeyLeft, rl.KeyA}},
	{input.MoveRight, []int32{rl.KeyRight, rl.KeyD}},
	{input.MoveUp, []int32{rl.KeyUp, rl.KeyW}},
	{input.MoveDown, []int32{rl.KeyDown, rl.KeyS}},
	{input.Fire, []int32{rl.KeySpace}},
	{input.Restart, []int32{rl.KeyR}},
	{input.Pause, []int32{rl.KeyP}},
	{input.Quit, []int32{rl.KeyEscape}},
}

// KeyboardSource reads raylib key state between BeginDrawing calls.
type KeyboardSource struct{}

func (KeyboardSource) Poll() input.Snapshot {
	var s input.Snapshot
	for _, b := range keyBindings {
		for _, k := range b.keys {
			switch {
			case rl.IsKeyPressed(k):
				s = s.WithPressed(b.action)
			case rl.IsKeyDown(k):
				s = s.WithHeld(b.action)
			}
		}
	}
	return s
}

func colorToRL(c color.NRGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// Paint replays f with raylib primitives. Must be called between
// rl.BeginDrawing and rl.EndDrawing.
func Paint(f *render.Frame) {
	if f == nil {
		return
	}
	for i := range f.Cmds {
		c := &f.Cmds[i]
		switch c.Kind {
		case render.KindRect:
			rl.DrawRectangleV(rl.NewVector2(float32(c.X), float32(c.Y)), rl.NewVector2(float32(c.W), float32(c.H)), colorToRL(c.Color))
		case render.KindText:
			x := int32(c.X)
			if c.Align == render.AlignCenter {
				x -= rl.MeasureText(c.Text, int32(c.Size)) / 2
			}
			// raylib ставит текст по верхнему краю, Frame задаёт базовую линию
			y := int32(c.Y) - int32(c.Size)
			rl.DrawText(c.Text, x, y, int32(c.Size), colorToRL(c.Color))
		}
	}
}

// Run opens the window and loops until it is closed or quit is pressed.
func Run(runner *host.Runner, opts config.Options) {
	w, h := opts.WindowSize()
	rl.InitWindow(int32(w), int32(h), config.WindowTitle)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0) // Esc обрабатывает Runner

	camera := rl.Camera2D{Zoom: float32(opts.Scale)}
	for !rl.WindowShouldClose() {
		if runner.Step() {
			return
		}
		rl.BeginDrawing()
		rl.ClearBackground(colorToRL(config.BackgroundColor))
		rl.BeginMode2D(camera)
		Paint(runner.Frame())
		rl.EndMode2D()
		rl.EndDrawing()
	}
}
