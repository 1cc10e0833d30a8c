package termhost

import (
	"unicode"

	"go-space-invaders/internal/input"

	"github.com/gdamore/tcell/v2"
)

// actionFor maps a terminal key event to a game action.
func actionFor(key tcell.Key, r rune) (input.Action, bool) {
	switch key {
	case tcell.KeyLeft:
		return input.MoveLeft, true
	case tcell.KeyRight:
		return input.MoveRight, true
	case tcell.KeyUp:
		return input.MoveUp, true
	case tcell.KeyDown:
		return input.MoveDown, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Quit, true
	case tcell.KeyRune:
		switch unicode.ToLower(r) {
		case 'a':
			return input.MoveLeft, true
		case 'd':
			return input.MoveRight, true
		case 'w':
			return input.MoveUp, true
		case 's':
			return input.MoveDown, true
		case ' ':
			return input.Fire, true
		case 'r':
			return input.Restart, true
		case 'p':
			return input.Pause, true
		}
	}
	return 0, false
}
