package world

// Fog of war and pickups. Tiles are immutable once generated; what the
// player has seen and which tiles still hold a potion are tracked
// alongside the grid instead.

// IsRevealed returns true if the player has seen the tile.
func (d *Dungeon) IsRevealed(x, y int) bool {
	if !d.InBounds(x, y) {
		return false
	}
	return d.revealed[y][x]
}

// Reveal marks a single tile as seen.
func (d *Dungeon) Reveal(x, y int) {
	if d.InBounds(x, y) {
		d.revealed[y][x] = true
	}
}

// RevealRoom marks a whole room, including its surrounding wall ring, as seen.
func (d *Dungeon) RevealRoom(roomIndex int) {
	if roomIndex < 0 || roomIndex >= len(d.Rooms) {
		return
	}
	room := d.Rooms[roomIndex]
	for y := room.Y - 1; y <= room.Y+room.Height; y++ {
		for x := room.X - 1; x <= room.X+room.Width; x++ {
			d.Reveal(x, y)
		}
	}
}

// RevealSurroundings marks the tile and its eight neighbors as seen,
// used in corridors so upcoming turns are visible.
func (d *Dungeon) RevealSurroundings(x, y int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			d.Reveal(x+dx, y+dy)
		}
	}
}

// IsCorridor returns true if the tile was carved as a corridor rather
// than as part of a room.
func (d *Dungeon) IsCorridor(x, y int) bool {
	if !d.InBounds(x, y) {
		return false
	}
	return d.corridor[y][x]
}

// PlacePotions scatters count potions on random floor tiles, skipping
// tiles that already hold one and the given spawn position.
func (d *Dungeon) PlacePotions(count, avoidX, avoidY int) {
	for i := 0; i < count; i++ {
		for attempt := 0; attempt < 50; attempt++ {
			x, y := d.RandomFloorTile()
			if x == avoidX && y == avoidY {
				continue
			}
			if d.potions[[2]int{x, y}] {
				continue
			}
			d.AddPotion(x, y)
			break
		}
	}
}

// AddPotion puts a potion on the given tile.
func (d *Dungeon) AddPotion(x, y int) {
	if d.InBounds(x, y) {
		d.potions[[2]int{x, y}] = true
	}
}

// HasPotion returns true if the tile holds an unclaimed potion.
func (d *Dungeon) HasPotion(x, y int) bool {
	return d.potions[[2]int{x, y}]
}

// TakePotion removes the potion at the tile, reporting whether one was there.
func (d *Dungeon) TakePotion(x, y int) bool {
	if !d.potions[[2]int{x, y}] {
		return false
	}
	delete(d.potions, [2]int{x, y})
	return true
}

// PotionCount returns the number of unclaimed potions on the map.
func (d *Dungeon) PotionCount() int {
	return len(d.potions)
}
