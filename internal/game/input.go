package game

import "github.com/gdamore/tcell/v2"

// MapKeyEvent translates one keypress into exactly one Action: arrow
// keys and WASD become unit moves, q/Escape/Ctrl-C become quit, and
// anything unrecognized becomes a no-op turn.
func MapKeyEvent(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return QuitAction()

	case tcell.KeyUp:
		return MoveAction(0, -1)
	case tcell.KeyDown:
		return MoveAction(0, 1)
	case tcell.KeyLeft:
		return MoveAction(-1, 0)
	case tcell.KeyRight:
		return MoveAction(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return MoveAction(0, -1)
		case 's', 'S':
			return MoveAction(0, 1)
		case 'a', 'A':
			return MoveAction(-1, 0)
		case 'd', 'D':
			return MoveAction(1, 0)
		case 'q', 'Q':
			return QuitAction()
		}
	}

	return NoneAction()
}
