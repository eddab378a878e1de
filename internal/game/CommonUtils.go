package game

import "math/rand"

var Directions = []Direction{Up, Right, Down, Left}

func GetManhattanDistance(p1, p2 Position) int {
	dx := p1.X - p2.X
	if dx < 0 {
		dx = -dx
	}
	dy := p1.Y - p2.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// intn draws from rng, or from the process-wide source when rng is nil.
func intn(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.Intn(n)
	}
	return rng.Intn(n)
}
