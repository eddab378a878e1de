package game

import (
	"math/rand"
)

// Outcome tags the result of a single tick.
type Outcome int

const (
	Continue Outcome = iota
	HitEdgeOfScreen
	BitOwnTail
	// BoardFilled ends the game because the snake covers every cell and the
	// apple has nowhere left to respawn.
	BoardFilled
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case HitEdgeOfScreen:
		return "hit edge of screen"
	case BitOwnTail:
		return "bit own tail"
	case BoardFilled:
		return "board filled"
	}
	return "unknown outcome"
}

func (o Outcome) Over() bool {
	return o != Continue
}

// Err maps a terminal outcome onto its sentinel error. Continue maps to nil.
func (o Outcome) Err() error {
	switch o {
	case HitEdgeOfScreen:
		return ErrHitEdgeOfScreen
	case BitOwnTail:
		return ErrBitOwnTail
	case BoardFilled:
		return ErrNoValidApplePosition
	}
	return nil
}

// Result is what one tick produces. On HitEdgeOfScreen and BitOwnTail the
// Frame is the last valid frame, i.e. a copy of the input.
type Result struct {
	Frame   Frame
	Outcome Outcome
}

func (r Result) Over() bool {
	return r.Outcome.Over()
}

// Advance computes the next frame from frame and the player input. Pass
// NoDirection when there is no input. The caller's frame is never modified.
//
// Order per tick: turn, move head, grow or slide the body, respawn the apple
// if it was eaten, then check walls and finally the body. The tail is popped
// before the body check, so moving into the cell the tail just left is safe.
func Advance(frame Frame, input Direction, rng *rand.Rand) Result {
	next := frame.Clone()

	if input.Valid() && IsLegalTurn(next.Head.Facing, input) {
		next.Head.Facing = input
	}

	oldHead := next.Head.Position
	next.Head.Position = oldHead.Step(next.Head.Facing)

	ateApple := next.Apple != nil && *next.Apple == next.Head.Position

	if ateApple || len(next.Body) > 0 {
		body := make([]Position, 0, len(next.Body)+1)
		body = append(body, oldHead)
		next.Body = append(body, next.Body...)
	}

	if ateApple {
		next.Apple = nil
		apple, err := SpawnApple(next, rng)
		if err != nil {
			return Result{Frame: next, Outcome: BoardFilled}
		}
		next.Apple = &apple
	} else if len(next.Body) > 0 {
		next.Body = next.Body[:len(next.Body)-1]
	}

	if !next.InBounds(next.Head.Position) {
		return Result{Frame: frame.Clone(), Outcome: HitEdgeOfScreen}
	}

	if next.onBody(next.Head.Position) {
		return Result{Frame: frame.Clone(), Outcome: BitOwnTail}
	}

	return Result{Frame: next, Outcome: Continue}
}
