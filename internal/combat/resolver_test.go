package combat

import (
	"math/rand"
	"strings"
	"testing"
)

// mockCombatant is a test implementation of the Combatant interface.
type mockCombatant struct {
	name      string
	hp, maxHP int
	power     int
}

func newMockCombatant(name string, hp, power int) *mockCombatant {
	return &mockCombatant{
		name:  name,
		hp:    hp,
		maxHP: hp,
		power: power,
	}
}

func (m *mockCombatant) GetName() string { return m.name }
func (m *mockCombatant) IsAlive() bool   { return m.hp > 0 }
func (m *mockCombatant) GetHP() int      { return m.hp }
func (m *mockCombatant) GetMaxHP() int   { return m.maxHP }
func (m *mockCombatant) GetPower() int   { return m.power }

func (m *mockCombatant) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > m.hp {
		actual = m.hp
	}
	m.hp -= actual
	return actual
}

// zeroVarianceResolver returns a resolver whose damage equals attacker
// power exactly.
func zeroVarianceResolver() *Resolver {
	r := NewResolver(rand.New(rand.NewSource(1)))
	r.Variance = 0
	return r
}

func TestResolveZeroVariance(t *testing.T) {
	attacker := newMockCombatant("you", 10, 3)
	defender := newMockCombatant("the goblin", 5, 2)

	result := zeroVarianceResolver().Resolve(attacker, defender)

	if result.Damage != 3 {
		t.Errorf("Damage = %d, want 3", result.Damage)
	}
	if result.DefenderHP != 2 {
		t.Errorf("DefenderHP = %d, want 2", result.DefenderHP)
	}
	if result.Killed {
		t.Error("Killed = true, want false")
	}
	if result.Message != "You hit the goblin for 3 damage!" {
		t.Errorf("Message = %q", result.Message)
	}
}

func TestResolveKill(t *testing.T) {
	attacker := newMockCombatant("you", 10, 3)
	defender := newMockCombatant("the goblin", 2, 2)

	result := zeroVarianceResolver().Resolve(attacker, defender)

	if !result.Killed {
		t.Error("Killed = false, want true")
	}
	if result.DefenderHP != 0 {
		t.Errorf("DefenderHP = %d, want 0", result.DefenderHP)
	}
	if result.Message != "You killed the goblin!" {
		t.Errorf("Message = %q", result.Message)
	}
}

func TestResolveDamageFloor(t *testing.T) {
	// Power 1 with variance -2 would be negative without the clamp.
	attacker := newMockCombatant("the skeleton", 5, 1)

	resolver := NewResolver(rand.New(rand.NewSource(42)))
	for i := 0; i < 200; i++ {
		defender := newMockCombatant("you", 1000, 5)
		result := resolver.Resolve(attacker, defender)
		if result.Damage < 1 {
			t.Fatalf("iteration %d: Damage = %d, want >= 1", i, result.Damage)
		}
		if result.DefenderHP < 0 {
			t.Fatalf("iteration %d: DefenderHP = %d, want >= 0", i, result.DefenderHP)
		}
	}
}

func TestResolveVarianceRange(t *testing.T) {
	attacker := newMockCombatant("you", 10, 5)

	resolver := NewResolver(rand.New(rand.NewSource(7)))
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		defender := newMockCombatant("the orc", 1000, 4)
		result := resolver.Resolve(attacker, defender)
		if result.Damage < 3 || result.Damage > 7 {
			t.Fatalf("Damage = %d, want within power±2 = [3,7]", result.Damage)
		}
		seen[result.Damage] = true
	}

	// Over 500 rolls every value in the range should appear.
	for d := 3; d <= 7; d++ {
		if !seen[d] {
			t.Errorf("damage value %d never rolled", d)
		}
	}
}

func TestResolveReproducibleDamageStream(t *testing.T) {
	roll := func(seed int64) []int {
		resolver := NewResolver(rand.New(rand.NewSource(seed)))
		attacker := newMockCombatant("you", 10, 5)
		damages := make([]int, 20)
		for i := range damages {
			defender := newMockCombatant("the orc", 1000, 4)
			damages[i] = resolver.Resolve(attacker, defender).Damage
		}
		return damages
	}

	a, b := roll(99), roll(99)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("roll %d mismatch: %d != %d", i, a[i], b[i])
		}
	}
}

func TestResolveMessageNamesBothSides(t *testing.T) {
	attacker := newMockCombatant("the orc", 10, 4)
	defender := newMockCombatant("you", 20, 5)

	result := zeroVarianceResolver().Resolve(attacker, defender)

	if !strings.Contains(result.Message, "orc") || !strings.Contains(result.Message, "you") {
		t.Errorf("Message %q should name both combatants", result.Message)
	}
	if !strings.HasPrefix(result.Message, "The") {
		t.Errorf("Message %q should start capitalized", result.Message)
	}
}
