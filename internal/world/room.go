package world

// Room represents a rectangular room in the dungeon.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects returns true if this room overlaps with another room,
// counting a one-tile margin so accepted rooms always keep a wall
// between them.
func (r Room) Intersects(other Room) bool {
	return r.X < other.X+other.Width+1 &&
		r.X+r.Width+1 > other.X &&
		r.Y < other.Y+other.Height+1 &&
		r.Y+r.Height+1 > other.Y
}
