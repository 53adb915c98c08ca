package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gloomdelve/internal/entity"
	"github.com/samdwyer/gloomdelve/internal/world"
)

// Renderer draws read-only game state snapshots to the screen. It
// never mutates what it is given.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the dungeon, entities, status bar, and recent log
// messages. Unrevealed tiles stay dark; enemies only show on revealed
// tiles.
func (r *Renderer) Render(dungeon *world.Dungeon, player *entity.Player, enemies []*entity.Enemy, messages []string, turn int) {
	r.screen.Clear()

	for y := 0; y < dungeon.Height; y++ {
		for x := 0; x < dungeon.Width; x++ {
			if !dungeon.IsRevealed(x, y) {
				continue
			}
			tile := dungeon.GetTile(x, y)
			if dungeon.HasPotion(x, y) {
				r.screen.SetContent(x, y, '!', tcell.StyleDefault.Foreground(tcell.ColorHotPink))
				continue
			}
			r.screen.SetContent(x, y, tile.Rune(), r.tileStyle(tile))
		}
	}

	for _, e := range enemies {
		if e.Alive && dungeon.IsRevealed(e.X, e.Y) {
			style := tcell.StyleDefault.Foreground(e.Color())
			r.screen.SetContent(e.X, e.Y, e.Symbol, style)
		}
	}

	playerStyle := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Bold(true)
	r.screen.SetContent(player.X, player.Y, player.Symbol, playerStyle)

	statusY := dungeon.Height
	r.drawText(0, statusY, fmt.Sprintf("HP: %d/%d  Turn: %d", player.HP, player.MaxHP, turn),
		tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	for i, msg := range messages {
		r.drawText(0, statusY+1+i, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}

	r.drawText(0, statusY+5, "Arrow keys/WASD: move | Q: quit",
		tcell.StyleDefault.Foreground(tcell.ColorDarkGray))

	r.screen.Show()
}

// RenderGameOver draws the final full-screen result.
func (r *Renderer) RenderGameOver(won bool) {
	r.screen.Clear()

	title, detail := "=== GAME OVER ===", "You have been slain!"
	color := tcell.ColorRed
	if won {
		title, detail = "=== VICTORY! ===", "All enemies defeated!"
		color = tcell.ColorGreen
	}

	r.drawText(10, 10, title, tcell.StyleDefault.Foreground(color).Bold(true))
	r.drawText(10, 12, detail, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.drawText(10, 14, "Press any key to exit...", tcell.StyleDefault.Foreground(tcell.ColorDarkGray))

	r.screen.Show()
}

// tileStyle returns the appropriate style for a tile type.
func (r *Renderer) tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case world.TileDoor:
		return tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)
	default:
		return tcell.StyleDefault
	}
}

// drawText writes a string starting at the given position.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, style)
	}
}
