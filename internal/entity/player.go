// Package entity provides game entities: the player and enemies.
package entity

import "github.com/samdwyer/gloomdelve/internal/combat"

const (
	playerMaxHP = 20
	playerPower = 5
)

// Player is the adventurer the user controls. It is created once at
// startup and never destroyed; its death ends the game.
type Player struct {
	X, Y   int  // Current position in the dungeon
	HP     int  // Current hit points
	MaxHP  int  // Maximum hit points
	Power  int  // Base attack power
	Symbol rune // Display symbol
}

// NewPlayer creates the player at the given position with default stats.
func NewPlayer(x, y int) *Player {
	return &Player{
		X:      x,
		Y:      y,
		HP:     playerMaxHP,
		MaxHP:  playerMaxHP,
		Power:  playerPower,
		Symbol: '@',
	}
}

// Move updates the player position by the given delta.
func (p *Player) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}

// Heal restores HP up to MaxHP and returns the actual amount healed.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if p.HP+actual > p.MaxHP {
		actual = p.MaxHP - p.HP
	}
	p.HP += actual
	return actual
}

// GetName returns the player's name as it appears mid-sentence in
// combat messages.
func (p *Player) GetName() string { return "you" }

// IsAlive returns true if the player has HP remaining.
func (p *Player) IsAlive() bool { return p.HP > 0 }

// GetHP returns current HP.
func (p *Player) GetHP() int { return p.HP }

// GetMaxHP returns maximum HP.
func (p *Player) GetMaxHP() int { return p.MaxHP }

// GetPower returns the base attack power.
func (p *Player) GetPower() int { return p.Power }

// TakeDamage reduces HP, clamped at zero, and returns actual damage taken.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > p.HP {
		actual = p.HP
	}
	p.HP -= actual
	return actual
}

// Ensure Player implements combat.Combatant
var _ combat.Combatant = (*Player)(nil)
