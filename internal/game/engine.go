package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gloomdelve/internal/ai"
	"github.com/samdwyer/gloomdelve/internal/combat"
	"github.com/samdwyer/gloomdelve/internal/entity"
	"github.com/samdwyer/gloomdelve/internal/gamedata"
	"github.com/samdwyer/gloomdelve/internal/telemetry"
	"github.com/samdwyer/gloomdelve/internal/world"
)

// HP restored when the player steps on a potion.
const potionHeal = 5

// Engine owns the game state and advances it one tick per player
// action. It is the single writer of State; everything else only reads.
type Engine struct {
	cfg      Config
	state    *State
	resolver *combat.Resolver
}

// NewEngine generates the dungeon, spawns the player and enemies, and
// returns an engine ready for its first tick. All randomness flows
// through one seeded source, so a fixed Config.Seed reproduces the
// whole run.
func NewEngine(ctx context.Context, cfg Config, registry *gamedata.EnemyRegistry) *Engine {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	dungeon := world.NewDungeon(cfg.Width, cfg.Height, rng)
	dungeon.Generate(ctx, cfg.RoomCount, cfg.MinRoomSize, cfg.MaxRoomSize)

	player := spawnPlayer(dungeon)
	enemies := spawnEnemies(ctx, dungeon, registry, rng, player, cfg.EnemyCount)
	dungeon.PlacePotions(cfg.PotionCount, player.X, player.Y)
	dungeon.RevealRoom(0)

	state := &State{
		Dungeon: dungeon,
		Player:  player,
		Enemies: enemies,
		Log:     NewMessageLog(),
		Phase:   PhaseAwaitingInput,
	}
	state.Log.Push("You descend into the gloom. Slay every monster to escape!")

	return &Engine{
		cfg:      cfg,
		state:    state,
		resolver: combat.NewResolver(rng),
	}
}

// State returns the engine's game state. Callers outside the engine
// must treat it as read-only.
func (e *Engine) State() *State {
	return e.state
}

// Apply runs one full tick for the given action: the player's action
// resolves completely, then every living enemy acts in spawn order,
// then the end condition is evaluated. Once the game is over further
// calls are no-ops.
func (e *Engine) Apply(ctx context.Context, action Action) {
	if e.state.Over() {
		return
	}

	tracer := telemetry.Tracer("engine")
	ctx, span := tracer.Start(ctx, "engine.tick")
	defer span.End()
	span.SetAttributes(
		attribute.Int("tick.turn", e.state.Turn),
		attribute.String("tick.action", action.Kind.String()),
	)

	e.state.Phase = PhaseResolvingPlayerAction
	switch action.Kind {
	case ActionQuit:
		// A deliberate exit, not a loss; skip the rest of the tick.
		e.state.Phase = PhaseGameOver
		e.state.Won = false
		e.state.Quit = true
		e.state.Log.Push("You slip back out of the dungeon.")
		return
	case ActionMove:
		e.resolvePlayerMove(ctx, action.DX, action.DY)
	case ActionNone:
		// A full no-op turn; enemies still act.
	}

	e.state.Phase = PhaseResolvingEnemyTurns
	e.resolveEnemyTurns(ctx)

	e.state.Phase = PhaseCheckingEndCondition
	e.state.Turn++
	e.checkEndCondition()

	span.SetAttributes(
		attribute.Int("tick.player_hp", e.state.Player.HP),
		attribute.Int("tick.enemies_alive", e.state.AliveEnemyCount()),
	)
}

// resolvePlayerMove applies a unit step: attack if a living enemy holds
// the target tile, bump if it is a wall, move otherwise.
func (e *Engine) resolvePlayerMove(ctx context.Context, dx, dy int) {
	player := e.state.Player
	tx, ty := player.X+dx, player.Y+dy

	if enemy := e.state.EnemyAt(tx, ty); enemy != nil {
		// Attacking does not move the player into the tile.
		e.attack(ctx, player, enemy)
		return
	}

	if !e.state.Dungeon.IsPassable(tx, ty) {
		e.state.Log.Push("You bump into a wall.")
		return
	}

	player.Move(dx, dy)
	e.revealAt(tx, ty)

	if e.state.Dungeon.TakePotion(tx, ty) {
		healed := player.Heal(potionHeal)
		e.state.Log.Push(fmt.Sprintf("You drink a potion and restore %d HP!", healed))
	}
}

// revealAt lifts fog of war around a tile the player stepped on.
func (e *Engine) revealAt(x, y int) {
	dungeon := e.state.Dungeon
	dungeon.Reveal(x, y)

	// In a corridor, reveal the surroundings so upcoming turns show.
	if dungeon.IsCorridor(x, y) {
		dungeon.RevealSurroundings(x, y)
	}

	// A door sits in the wall, not in the room; reveal what it opens into.
	if dungeon.GetTile(x, y) == world.TileDoor {
		for _, delta := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			if idx := dungeon.RoomIndexAt(x+delta[0], y+delta[1]); idx != -1 {
				dungeon.RevealRoom(idx)
			}
		}
	}

	// Stepping straight into a room (doorless entrance) reveals it too.
	if idx := dungeon.RoomIndexAt(x, y); idx != -1 {
		dungeon.RevealRoom(idx)
	}
}

// resolveEnemyTurns runs every living enemy in spawn order: attack when
// touching the player, chase when within range, idle otherwise.
func (e *Engine) resolveEnemyTurns(ctx context.Context) {
	player := e.state.Player

	for _, enemy := range e.state.Enemies {
		if !enemy.Alive {
			continue
		}
		if !player.IsAlive() {
			break
		}

		dist := ai.Chebyshev(enemy.X, enemy.Y, player.X, player.Y)
		switch {
		case dist > e.cfg.ChaseRange:
			// Out of chase range; idle this tick.
		case dist <= 1:
			e.attack(ctx, enemy, player)
		default:
			occupied := func(x, y int) bool {
				if x == player.X && y == player.Y {
					return true
				}
				other := e.state.EnemyAt(x, y)
				return other != nil && other != enemy
			}
			nx, ny := ai.NextStep(enemy.X, enemy.Y, player.X, player.Y, e.state.Dungeon, occupied)
			enemy.MoveTo(nx, ny)
		}
	}
}

// attack resolves one combat exchange and logs its message.
func (e *Engine) attack(ctx context.Context, attacker, defender combat.Combatant) combat.Result {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.exchange")
	defer span.End()

	result := e.resolver.Resolve(attacker, defender)
	e.state.Log.Push(result.Message)

	span.SetAttributes(
		attribute.String("combat.attacker", attacker.GetName()),
		attribute.String("combat.defender", defender.GetName()),
		attribute.Int("combat.damage", result.Damage),
		attribute.Int("combat.defender_hp", result.DefenderHP),
		attribute.Bool("combat.killed", result.Killed),
	)
	if enemy, ok := defender.(*entity.Enemy); ok {
		span.SetAttributes(attribute.String("combat.defender_uid", enemy.UID))
	} else if enemy, ok := attacker.(*entity.Enemy); ok {
		span.SetAttributes(attribute.String("combat.attacker_uid", enemy.UID))
	}

	return result
}

// checkEndCondition moves the engine to its terminal phase when either
// side is finished, or back to awaiting input.
func (e *Engine) checkEndCondition() {
	switch {
	case !e.state.Player.IsAlive():
		e.state.Phase = PhaseGameOver
		e.state.Won = false
	case e.state.AliveEnemyCount() == 0:
		e.state.Phase = PhaseGameOver
		e.state.Won = true
	default:
		e.state.Phase = PhaseAwaitingInput
	}
}
