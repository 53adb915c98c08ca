package game

import (
	"github.com/samdwyer/gloomdelve/internal/entity"
	"github.com/samdwyer/gloomdelve/internal/world"
)

// State is the single mutable aggregate the engine operates on: map,
// player, the ordered enemy set, turn counter, and the message log.
// The engine is its only writer; the renderer receives it once per tick
// and must treat it as read-only.
type State struct {
	Dungeon *world.Dungeon
	Player  *entity.Player
	Enemies []*entity.Enemy
	Turn    int
	Log     *MessageLog

	Phase Phase
	Won   bool // Meaningful only in PhaseGameOver
	Quit  bool // True when the game ended by the quit action, not defeat
}

// EnemyAt returns the living enemy on the given tile, or nil.
func (s *State) EnemyAt(x, y int) *entity.Enemy {
	for _, e := range s.Enemies {
		if e.Alive && e.X == x && e.Y == y {
			return e
		}
	}
	return nil
}

// AliveEnemyCount returns the number of enemies still alive.
func (s *State) AliveEnemyCount() int {
	count := 0
	for _, e := range s.Enemies {
		if e.Alive {
			count++
		}
	}
	return count
}

// Over returns true once the engine has reached its terminal phase.
func (s *State) Over() bool {
	return s.Phase == PhaseGameOver
}
