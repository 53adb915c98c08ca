package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gloomdelve/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 100
	DefaultHeight = 35

	// Default room generation parameters
	DefaultRoomCount = 12
	DefaultMinRoom   = 4
	DefaultMaxRoom   = 8

	// Placement attempts per requested room before giving up on it.
	attemptsPerRoom = 10
)

// Dungeon represents the game map.
type Dungeon struct {
	Width  int
	Height int
	Tiles  [][]Tile
	Rooms  []Room

	revealed [][]bool
	corridor [][]bool
	potions  map[[2]int]bool
	rng      *rand.Rand
}

// NewDungeon creates a new dungeon filled with walls.
// All randomness during generation flows through rng, so a seeded
// source reproduces the layout exactly.
func NewDungeon(width, height int, rng *rand.Rand) *Dungeon {
	tiles := make([][]Tile, height)
	revealed := make([][]bool, height)
	corridor := make([][]bool, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		revealed[y] = make([]bool, width)
		corridor[y] = make([]bool, width)
		for x := range tiles[y] {
			tiles[y][x] = TileWall
		}
	}

	return &Dungeon{
		Width:    width,
		Height:   height,
		Tiles:    tiles,
		Rooms:    make([]Room, 0),
		revealed: revealed,
		corridor: corridor,
		potions:  make(map[[2]int]bool),
		rng:      rng,
	}
}

// Generate builds the dungeon layout by rejection sampling: candidate
// rooms are placed at random positions and sizes, rejected on overlap
// (with a one-tile margin), and each accepted room is joined to the
// previous one by an L-shaped corridor. Generation never fails; if the
// attempt budget runs out it proceeds with fewer rooms, and at least
// one room is always carved.
func (d *Dungeon) Generate(ctx context.Context, targetRooms, minSize, maxSize int) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	for attempt := 0; attempt < targetRooms*attemptsPerRoom; attempt++ {
		if len(d.Rooms) >= targetRooms {
			break
		}

		roomWidth := minSize + d.rng.Intn(maxSize-minSize+1)
		roomHeight := minSize + d.rng.Intn(maxSize-minSize+1)
		if roomWidth > d.Width-2 || roomHeight > d.Height-2 {
			continue
		}
		x := 1 + d.rng.Intn(d.Width-roomWidth-1)
		y := 1 + d.rng.Intn(d.Height-roomHeight-1)

		candidate := Room{X: x, Y: y, Width: roomWidth, Height: roomHeight}

		overlaps := false
		for _, room := range d.Rooms {
			if candidate.Intersects(room) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		d.carveRoom(candidate)

		// Chain each accepted room to its predecessor so the whole
		// layout stays a single connected component.
		if len(d.Rooms) > 0 {
			d.carveCorridor(d.Rooms[len(d.Rooms)-1], candidate)
		}

		d.Rooms = append(d.Rooms, candidate)
	}

	// A dungeon with no rooms is unplayable; carve a minimal fallback
	// in the middle of the grid.
	if len(d.Rooms) == 0 {
		fallback := Room{
			X:      d.Width/2 - minSize/2,
			Y:      d.Height/2 - minSize/2,
			Width:  minSize,
			Height: minSize,
		}
		d.carveRoom(fallback)
		d.Rooms = append(d.Rooms, fallback)
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", d.Width),
		attribute.Int("dungeon.height", d.Height),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int("dungeon.room_target", targetRooms),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// InBounds returns true if the position lies inside the grid.
func (d *Dungeon) InBounds(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}

// IsPassable returns true if the given position can be walked on.
func (d *Dungeon) IsPassable(x, y int) bool {
	if !d.InBounds(x, y) {
		return false
	}
	return d.Tiles[y][x].IsPassable()
}

// GetTile returns the tile at the given position.
func (d *Dungeon) GetTile(x, y int) Tile {
	if !d.InBounds(x, y) {
		return TileWall
	}
	return d.Tiles[y][x]
}

// RoomIndexAt returns the index of the room containing the position, or -1 if not in a room.
func (d *Dungeon) RoomIndexAt(x, y int) int {
	for i, room := range d.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

// RandomFloorTile returns a random plain floor tile. Tries random
// rooms first and falls back to scanning the grid, so it only fails
// (-1, -1) on a map with no floor at all.
func (d *Dungeon) RandomFloorTile() (int, int) {
	for i := 0; len(d.Rooms) > 0 && i < 100; i++ {
		room := d.Rooms[d.rng.Intn(len(d.Rooms))]
		x := room.X + d.rng.Intn(room.Width)
		y := room.Y + d.rng.Intn(room.Height)
		if d.GetTile(x, y) == TileFloor {
			return x, y
		}
	}
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			if d.Tiles[y][x] == TileFloor {
				return x, y
			}
		}
	}
	return -1, -1
}

// carveRoom sets all tiles within the room to floor.
func (d *Dungeon) carveRoom(room Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			if x > 0 && x < d.Width-1 && y > 0 && y < d.Height-1 {
				d.Tiles[y][x] = TileFloor
			}
		}
	}
}

// carveCorridor creates an L-shaped corridor between two room centers.
func (d *Dungeon) carveCorridor(from, to Room) {
	x1, y1 := from.Center()
	x2, y2 := to.Center()

	// Randomly choose to go horizontal-then-vertical or vertical-then-horizontal
	if d.rng.Intn(2) == 0 {
		d.carveHorizontalTunnel(x1, x2, y1)
		d.carveVerticalTunnel(y1, y2, x2)
	} else {
		d.carveVerticalTunnel(y1, y2, x1)
		d.carveHorizontalTunnel(x1, x2, y2)
	}
}

// carveHorizontalTunnel carves a horizontal tunnel.
func (d *Dungeon) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		d.carveCorridorTile(x, y)
	}
}

// carveVerticalTunnel carves a vertical tunnel.
func (d *Dungeon) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		d.carveCorridorTile(x, y)
	}
}

// carveCorridorTile opens a single corridor tile. A wall tile that sits
// on a room's boundary (adjacent to its interior but not inside any
// room) becomes a door; everything else becomes floor.
func (d *Dungeon) carveCorridorTile(x, y int) {
	if !(x > 0 && x < d.Width-1 && y > 0 && y < d.Height-1) {
		return
	}
	if d.Tiles[y][x] != TileWall {
		return
	}

	if d.RoomIndexAt(x, y) == -1 {
		d.corridor[y][x] = true
		if d.adjacentToRoom(x, y) {
			d.Tiles[y][x] = TileDoor
			return
		}
	}
	d.Tiles[y][x] = TileFloor
}

// adjacentToRoom returns true if a 4-directional neighbor lies inside a room.
func (d *Dungeon) adjacentToRoom(x, y int) bool {
	for _, delta := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		if d.RoomIndexAt(x+delta[0], y+delta[1]) != -1 {
			return true
		}
	}
	return false
}
