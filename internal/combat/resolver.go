// Package combat resolves melee exchanges between the player and enemies.
package combat

import (
	"fmt"
	"math/rand"
	"unicode"
)

// DefaultVariance is the half-width of the symmetric damage variance
// range: damage = power + v where v is drawn from [-2, +2].
const DefaultVariance = 2

// Combatant is the interface for any entity that can take part in a
// melee exchange. Both the player and enemies implement it.
type Combatant interface {
	// GetName returns the combatant's name as it reads mid-sentence
	// ("you", "the goblin").
	GetName() string
	IsAlive() bool

	GetHP() int
	GetMaxHP() int
	GetPower() int

	// TakeDamage reduces HP, clamped at zero, and returns the actual
	// amount taken.
	TakeDamage(amount int) int
}

// Result contains the outcome of one resolved attack.
type Result struct {
	Damage     int    // Damage dealt, always >= 1
	DefenderHP int    // Defender's HP after the attack, never negative
	Killed     bool   // True if this attack dropped the defender to zero
	Message    string // Human-readable description for the log
}

// Resolver computes and applies melee damage. Randomness is injected so
// tests can fix the damage stream; Variance may be set to zero to
// remove the random component entirely.
type Resolver struct {
	Variance int
	rng      *rand.Rand
}

// NewResolver creates a resolver drawing variance from rng.
func NewResolver(rng *rand.Rand) *Resolver {
	return &Resolver{
		Variance: DefaultVariance,
		rng:      rng,
	}
}

// Resolve applies one attack from attacker to defender. Damage is the
// attacker's power plus a symmetric random variance, clamped so every
// landed attack deals at least one point.
func (r *Resolver) Resolve(attacker, defender Combatant) Result {
	damage := attacker.GetPower() + r.variance()
	if damage < 1 {
		damage = 1
	}

	defender.TakeDamage(damage)

	result := Result{
		Damage:     damage,
		DefenderHP: defender.GetHP(),
		Killed:     !defender.IsAlive(),
	}
	if result.Killed {
		result.Message = sentence(fmt.Sprintf("%s killed %s!", attacker.GetName(), defender.GetName()))
	} else {
		result.Message = sentence(fmt.Sprintf("%s hit %s for %d damage!", attacker.GetName(), defender.GetName(), damage))
	}
	return result
}

// variance draws an integer from [-Variance, +Variance].
func (r *Resolver) variance() int {
	if r.Variance <= 0 {
		return 0
	}
	return r.rng.Intn(2*r.Variance+1) - r.Variance
}

// sentence upper-cases the first rune of a combat message.
func sentence(s string) string {
	runes := []rune(s)
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}
