// Package ai provides enemy movement decisions.
package ai

import "github.com/samdwyer/gloomdelve/internal/world"

// Chebyshev returns the chessboard distance between two positions: the
// number of steps a piece moving in any of 8 directions would need.
func Chebyshev(x1, y1, x2, y2 int) int {
	dx := abs(x1 - x2)
	dy := abs(y1 - y2)
	if dx > dy {
		return dx
	}
	return dy
}

// NextStep computes a single cardinal step from (fromX, fromY) toward
// (targetX, targetY). The axis with the larger remaining delta is tried
// first; if that tile is blocked the other axis is tried; if both are
// blocked the current position is returned. The pursuit is deliberately
// myopic: there is no pathfinding around obstacles beyond the one
// fallback, so a chaser can stall behind a wall.
//
// occupied reports whether a tile is taken by another entity. The
// returned position is always passable and unoccupied, or the starting
// position itself.
func NextStep(fromX, fromY, targetX, targetY int, dungeon *world.Dungeon, occupied func(x, y int) bool) (int, int) {
	dx := sign(targetX - fromX)
	dy := sign(targetY - fromY)

	type step struct{ x, y int }
	var candidates []step

	horizontal := step{fromX + dx, fromY}
	vertical := step{fromX, fromY + dy}

	switch {
	case dx != 0 && dy != 0:
		if abs(targetX-fromX) >= abs(targetY-fromY) {
			candidates = []step{horizontal, vertical}
		} else {
			candidates = []step{vertical, horizontal}
		}
	case dx != 0:
		candidates = []step{horizontal}
	case dy != 0:
		candidates = []step{vertical}
	default:
		return fromX, fromY
	}

	for _, c := range candidates {
		if dungeon.IsPassable(c.x, c.y) && !occupied(c.x, c.y) {
			return c.x, c.y
		}
	}
	return fromX, fromY
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
