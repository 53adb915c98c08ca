package game

import (
	"context"
	"testing"

	"github.com/samdwyer/gloomdelve/internal/gamedata"
	"github.com/samdwyer/gloomdelve/internal/world"
)

func TestSpawnPlacesEveryoneOnDistinctFloorTiles(t *testing.T) {
	registry := gamedata.MustLoadEnemyRegistry()

	for seed := int64(1); seed <= 10; seed++ {
		cfg := DefaultConfig()
		cfg.Seed = seed
		cfg.Width, cfg.Height = 60, 20
		cfg.RoomCount, cfg.MinRoomSize, cfg.MaxRoomSize = 6, 4, 8

		state := NewEngine(context.Background(), cfg, registry).State()

		if tile := state.Dungeon.GetTile(state.Player.X, state.Player.Y); tile != world.TileFloor {
			t.Errorf("seed %d: player stands on %c, want floor", seed, tile)
		}

		cx, cy := state.Dungeon.Rooms[0].Center()
		if state.Player.X != cx || state.Player.Y != cy {
			t.Errorf("seed %d: player at (%d,%d), want first room center (%d,%d)",
				seed, state.Player.X, state.Player.Y, cx, cy)
		}

		seen := map[[2]int]bool{{state.Player.X, state.Player.Y}: true}
		for i, e := range state.Enemies {
			if tile := state.Dungeon.GetTile(e.X, e.Y); tile != world.TileFloor {
				t.Errorf("seed %d: enemy %d stands on %c, want floor", seed, i, tile)
			}
			pos := [2]int{e.X, e.Y}
			if seen[pos] {
				t.Errorf("seed %d: enemy %d shares tile %v", seed, i, pos)
			}
			seen[pos] = true

			if !e.Alive {
				t.Errorf("seed %d: enemy %d spawned dead", seed, i)
			}
			if e.UID == "" {
				t.Errorf("seed %d: enemy %d has no UID", seed, i)
			}
		}
	}
}

func TestSpawnDropsUnplaceableSlots(t *testing.T) {
	registry := gamedata.MustLoadEnemyRegistry()

	// A tiny map cannot host many enemies; asking for far more than
	// fits must degrade, not fail.
	cfg := DefaultConfig()
	cfg.Seed = 9
	cfg.Width, cfg.Height = 12, 10
	cfg.RoomCount, cfg.MinRoomSize, cfg.MaxRoomSize = 1, 4, 5
	cfg.EnemyCount = 200

	state := NewEngine(context.Background(), cfg, registry).State()

	if len(state.Enemies) >= 200 {
		t.Errorf("placed %d enemies on a map that cannot hold them", len(state.Enemies))
	}
	// Still distinct.
	seen := map[[2]int]bool{{state.Player.X, state.Player.Y}: true}
	for _, e := range state.Enemies {
		pos := [2]int{e.X, e.Y}
		if seen[pos] {
			t.Errorf("two entities share tile %v", pos)
		}
		seen[pos] = true
	}
}
