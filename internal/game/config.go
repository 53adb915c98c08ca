package game

import "github.com/samdwyer/gloomdelve/internal/world"

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Map layout, spawns, and damage
	// variance are all reproducible from a fixed seed. A seed of 0
	// means a time-derived seed will be used.
	Seed int64

	// Dungeon dimensions and room generation bounds.
	Width       int
	Height      int
	RoomCount   int
	MinRoomSize int
	MaxRoomSize int

	// EnemyCount is how many enemies the spawner attempts to place.
	EnemyCount int

	// PotionCount is how many healing potions are scattered on the map.
	PotionCount int

	// ChaseRange is the Chebyshev distance at which idle enemies start
	// pursuing the player.
	ChaseRange int
}

// DefaultConfig returns the standard game setup.
func DefaultConfig() Config {
	return Config{
		Width:       world.DefaultWidth,
		Height:      world.DefaultHeight,
		RoomCount:   world.DefaultRoomCount,
		MinRoomSize: world.DefaultMinRoom,
		MaxRoomSize: world.DefaultMaxRoom,
		EnemyCount:  8,
		PotionCount: 4,
		ChaseRange:  8,
	}
}
