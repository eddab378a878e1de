package game

import (
	"fmt"
	"math/rand"
)

// SpawnApple picks a uniformly random cell that is neither the head nor any
// body segment. A nil rng uses the process-wide source.
func SpawnApple(frame Frame, rng *rand.Rand) (Position, error) {
	if frame.Width <= 0 || frame.Height <= 0 {
		return Position{}, fmt.Errorf("%w: %dx%d grid", ErrNoValidApplePosition, frame.Width, frame.Height)
	}

	occupied := make(map[Position]struct{}, len(frame.Body)+1)
	occupied[frame.Head.Position] = struct{}{}
	for _, segment := range frame.Body {
		occupied[segment] = struct{}{}
	}

	available := make([]Position, 0, frame.Width*frame.Height)
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			p := Position{X: x, Y: y}
			if _, ok := occupied[p]; ok {
				continue
			}
			available = append(available, p)
		}
	}

	if len(available) == 0 {
		return Position{}, ErrNoValidApplePosition
	}

	return available[intn(rng, len(available))], nil
}
