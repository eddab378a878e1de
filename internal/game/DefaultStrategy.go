package game

import (
	"math"
)

// DefaultStrategy greedily steps toward the apple while avoiding walls and
// the body.
type DefaultStrategy struct{}

func (s *DefaultStrategy) NextDirection(frame Frame) (Direction, error) {
	facing := frame.Head.Facing
	best := NoDirection
	bestDistance := math.MaxInt

	// Keep the current facing first so ties favour going straight.
	candidates := append([]Direction{facing}, Directions...)
	for _, dir := range candidates {
		if !dir.Valid() || !IsLegalTurn(facing, dir) {
			continue
		}

		next := frame.Head.Position.Step(dir)
		if !frame.InBounds(next) {
			continue
		}
		if s.blocked(frame, next) {
			continue
		}

		distance := 0
		if frame.Apple != nil {
			distance = GetManhattanDistance(next, *frame.Apple)
		}
		if distance < bestDistance {
			best = dir
			bestDistance = distance
		}
	}

	return best, nil
}

// blocked reports whether moving onto p would bite the body. The tail cell
// is free unless p holds the apple, because eating keeps the tail in place.
func (s *DefaultStrategy) blocked(frame Frame, p Position) bool {
	if len(frame.Body) == 0 {
		return false
	}
	tail := frame.Body[len(frame.Body)-1]
	eating := frame.Apple != nil && *frame.Apple == p
	for _, segment := range frame.Body {
		if segment != p {
			continue
		}
		if segment == tail && !eating {
			continue
		}
		return true
	}
	return false
}
