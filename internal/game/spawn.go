package game

import (
	"context"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gloomdelve/internal/entity"
	"github.com/samdwyer/gloomdelve/internal/gamedata"
	"github.com/samdwyer/gloomdelve/internal/telemetry"
	"github.com/samdwyer/gloomdelve/internal/world"
)

// Attempts to find a free tile for one enemy before its slot is dropped.
const spawnAttempts = 50

// spawnPlayer places the player at the center of the first room.
func spawnPlayer(dungeon *world.Dungeon) *entity.Player {
	x, y := dungeon.Rooms[0].Center()
	return entity.NewPlayer(x, y)
}

// spawnEnemies places up to count enemies on random floor tiles,
// avoiding the player and each other. A slot whose attempt budget runs
// out is dropped silently; fewer enemies is not an error.
func spawnEnemies(ctx context.Context, dungeon *world.Dungeon, registry *gamedata.EnemyRegistry, rng *rand.Rand, player *entity.Player, count int) []*entity.Enemy {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.spawn")
	defer span.End()

	enemies := make([]*entity.Enemy, 0, count)

	for slot := 0; slot < count; slot++ {
		def := registry.SpawnRandom(rng)
		if def == nil {
			break
		}

		for attempt := 0; attempt < spawnAttempts; attempt++ {
			x, y := dungeon.RandomFloorTile()
			if x == player.X && y == player.Y {
				continue
			}
			if occupiedBySpawn(enemies, x, y) {
				continue
			}

			enemies = append(enemies, entity.NewEnemyFromDef(def, x, y))
			break
		}
	}

	span.SetAttributes(
		attribute.Int("spawn.requested", count),
		attribute.Int("spawn.placed", len(enemies)),
	)
	return enemies
}

func occupiedBySpawn(enemies []*entity.Enemy, x, y int) bool {
	for _, e := range enemies {
		if e.X == x && e.Y == y {
			return true
		}
	}
	return false
}
