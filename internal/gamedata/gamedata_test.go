package gamedata

import (
	"math/rand"
	"testing"
)

func TestLoadEnemies(t *testing.T) {
	enemies, err := LoadEnemies()
	if err != nil {
		t.Fatalf("Failed to load enemies: %v", err)
	}

	if len(enemies) != 3 {
		t.Errorf("Expected 3 enemies, got %d", len(enemies))
	}

	// Verify expected enemies exist
	expectedIDs := map[string]bool{"goblin": false, "orc": false, "skeleton": false}
	for _, e := range enemies {
		if _, ok := expectedIDs[e.ID]; ok {
			expectedIDs[e.ID] = true
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected enemy %q not found", id)
		}
	}
}

func TestEnemyRegistry(t *testing.T) {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 3 {
		t.Errorf("Expected 3 enemy types, got %d", registry.Count())
	}

	// Test GetByID
	goblin := registry.GetByID("goblin")
	if goblin == nil {
		t.Fatal("Goblin not found by ID")
	}
	if goblin.Name != "Goblin" {
		t.Errorf("Expected name 'Goblin', got %q", goblin.Name)
	}
	if goblin.HP != 6 || goblin.Power != 3 {
		t.Errorf("Goblin stats = hp %d power %d, want hp 6 power 3", goblin.HP, goblin.Power)
	}

	// Test weighted spawning is deterministic with same seed
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 10; i++ {
		s1 := registry.SpawnRandom(rng1).ID
		s2 := registry.SpawnRandom(rng2).ID
		if s1 != s2 {
			t.Errorf("Spawn %d mismatch: %s != %s", i, s1, s2)
		}
	}
}

func TestNewEnemyRegistryRejectsBadStats(t *testing.T) {
	tests := []struct {
		name string
		def  EnemyDef
	}{
		{"zero hp", EnemyDef{ID: "bad", HP: 0, Power: 3, SpawnWeight: 1}},
		{"zero power", EnemyDef{ID: "bad", HP: 5, Power: 0, SpawnWeight: 1}},
		{"negative hp", EnemyDef{ID: "bad", HP: -1, Power: 3, SpawnWeight: 1}},
	}

	for _, tt := range tests {
		if _, err := NewEnemyRegistry([]EnemyDef{tt.def}); err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#FFFFFF", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestEnemyDefMethods(t *testing.T) {
	def := EnemyDef{
		ID:          "test",
		Name:        "Test Enemy",
		Glyph:       "T",
		Color:       "#FF0000",
		HP:          10,
		Power:       5,
		SpawnWeight: 50,
	}

	if def.GlyphRune() != 'T' {
		t.Errorf("Expected glyph 'T', got %c", def.GlyphRune())
	}

	empty := EnemyDef{}
	if empty.GlyphRune() != '?' {
		t.Errorf("Empty glyph should render '?', got %c", empty.GlyphRune())
	}

	color := def.TCellColor()
	if color == 0 {
		t.Error("TCellColor returned zero color")
	}
}
