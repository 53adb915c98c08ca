package entity

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/gloomdelve/internal/combat"
	"github.com/samdwyer/gloomdelve/internal/gamedata"
)

// Enemy represents a hostile creature in the dungeon. Dead enemies are
// never removed from the game; they are marked not alive and ignored
// from then on.
type Enemy struct {
	UID    string             // Unique instance identifier, for telemetry
	Def    *gamedata.EnemyDef // The enemy type definition
	Name   string             // Display name (e.g., "Goblin")
	Symbol rune               // Display symbol
	X, Y   int                // Position in the dungeon
	HP     int                // Current hit points
	MaxHP  int                // Maximum hit points
	Power  int                // Base attack power
	Alive  bool               // Flipped to false when HP reaches zero
}

// NewEnemyFromDef creates a new enemy from a data-driven definition.
func NewEnemyFromDef(def *gamedata.EnemyDef, x, y int) *Enemy {
	return &Enemy{
		UID:    uuid.NewString(),
		Def:    def,
		Name:   def.Name,
		Symbol: def.GlyphRune(),
		X:      x,
		Y:      y,
		HP:     def.HP,
		MaxHP:  def.HP,
		Power:  def.Power,
		Alive:  true,
	}
}

// Position returns the enemy's current x, y coordinates.
func (e *Enemy) Position() (int, int) {
	return e.X, e.Y
}

// MoveTo places the enemy on the given tile.
func (e *Enemy) MoveTo(x, y int) {
	e.X = x
	e.Y = y
}

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	if e.Def != nil {
		return e.Def.TCellColor()
	}
	return tcell.ColorWhite
}

// GetName returns the enemy's name as it appears mid-sentence in
// combat messages.
func (e *Enemy) GetName() string { return "the " + strings.ToLower(e.Name) }

// IsAlive returns true until the enemy's HP first reaches zero.
func (e *Enemy) IsAlive() bool { return e.Alive }

// GetHP returns current HP.
func (e *Enemy) GetHP() int { return e.HP }

// GetMaxHP returns maximum HP.
func (e *Enemy) GetMaxHP() int { return e.MaxHP }

// GetPower returns the base attack power.
func (e *Enemy) GetPower() int { return e.Power }

// TakeDamage reduces HP, clamped at zero, and returns actual damage
// taken. An enemy whose HP reaches zero is permanently marked dead.
func (e *Enemy) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > e.HP {
		actual = e.HP
	}
	e.HP -= actual
	if e.HP == 0 {
		e.Alive = false
	}
	return actual
}

// Ensure Enemy implements combat.Combatant
var _ combat.Combatant = (*Enemy)(nil)
