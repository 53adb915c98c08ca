package game

// ActionKind discriminates the player actions the engine understands.
type ActionKind int

const (
	// ActionNone is a no-op turn; enemies still act.
	ActionNone ActionKind = iota
	// ActionMove is a unit step or an attack on an adjacent enemy.
	ActionMove
	// ActionQuit is a deliberate exit, distinct from defeat.
	ActionQuit
)

// String returns a machine-readable action name, used in telemetry.
func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionMove:
		return "move"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Action is one player input for one tick. For ActionMove, DX and DY
// are each in [-1, 1] and not both zero; the input mapper is the sole
// producer and never emits anything else.
type Action struct {
	Kind   ActionKind
	DX, DY int
}

// MoveAction builds a movement action with the given unit delta.
func MoveAction(dx, dy int) Action {
	return Action{Kind: ActionMove, DX: dx, DY: dy}
}

// QuitAction builds a quit action.
func QuitAction() Action {
	return Action{Kind: ActionQuit}
}

// NoneAction builds a no-op action.
func NoneAction() Action {
	return Action{Kind: ActionNone}
}
