package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gloomdelve/internal/gamedata"
	"github.com/samdwyer/gloomdelve/internal/telemetry"
	"github.com/samdwyer/gloomdelve/internal/ui"
)

// Game wires the engine to the terminal: one tick per polled input
// event, rendering the updated state after every tick.
type Game struct {
	cfg      Config
	registry *gamedata.EnemyRegistry
	screen   *ui.Screen
	renderer *ui.Renderer
	engine   *Engine
}

// New creates a new game instance and takes over the terminal.
func New(cfg Config) (*Game, error) {
	registry, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return nil, fmt.Errorf("loading enemy data: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}

	return &Game{
		cfg:      cfg,
		registry: registry,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
	}, nil
}

// Run executes the main loop until the game ends or the player quits.
// The terminal is restored on every exit path.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")
	g.engine = NewEngine(ctx, g.cfg, g.registry)
	initSpan.SetAttributes(
		attribute.Int("dungeon.rooms", len(g.engine.State().Dungeon.Rooms)),
		attribute.Int("enemies.spawned", len(g.engine.State().Enemies)),
	)
	initSpan.End()

	for {
		state := g.engine.State()
		g.render(state)

		if state.Over() {
			// A deliberate quit exits straight away; win and defeat
			// show a final screen first.
			if !state.Quit {
				g.renderer.RenderGameOver(state.Won)
				g.screen.WaitForKey()
			}
			return nil
		}

		action, resized := g.nextAction()
		if resized {
			g.screen.Sync()
			continue
		}
		g.engine.Apply(ctx, action)
	}
}

// render draws the current state snapshot. The renderer only reads.
func (g *Game) render(state *State) {
	g.renderer.Render(state.Dungeon, state.Player, state.Enemies, state.Log.Recent(3), state.Turn)
}

// nextAction blocks for the next terminal event. The second return is
// true for a resize, which costs no turn.
func (g *Game) nextAction() (Action, bool) {
	switch ev := g.screen.PollEvent().(type) {
	case *tcell.EventKey:
		return MapKeyEvent(ev), false
	case *tcell.EventResize:
		return NoneAction(), true
	}
	return NoneAction(), false
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
