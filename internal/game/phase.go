// Package game provides the turn engine, game state, and the main loop.
package game

// Phase tracks where the engine is in its tick cycle. A tick runs
// AwaitingInput → ResolvingPlayerAction → ResolvingEnemyTurns →
// CheckingEndCondition and back, or terminally into GameOver.
type Phase int

const (
	// PhaseAwaitingInput - waiting for the next player action.
	PhaseAwaitingInput Phase = iota
	// PhaseResolvingPlayerAction - applying the player's move or attack.
	PhaseResolvingPlayerAction
	// PhaseResolvingEnemyTurns - running every living enemy in spawn order.
	PhaseResolvingEnemyTurns
	// PhaseCheckingEndCondition - evaluating win/lose after all actions.
	PhaseCheckingEndCondition
	// PhaseGameOver - terminal; no further ticks are processed.
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingInput:
		return "awaiting_input"
	case PhaseResolvingPlayerAction:
		return "resolving_player_action"
	case PhaseResolvingEnemyTurns:
		return "resolving_enemy_turns"
	case PhaseCheckingEndCondition:
		return "checking_end_condition"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
