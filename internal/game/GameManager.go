package game

import (
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"
)

// GameManager owns one running game and serializes its ticks. It is the
// caller that threads each tick's frame into the next.
type GameManager struct {
	mu sync.Mutex

	initial Frame
	frame   Frame
	rng     *rand.Rand
	ticks   int
	outcome Outcome
}

func NewGameManager(frame Frame, rng *rand.Rand) *GameManager {
	return &GameManager{
		initial: frame.Clone(),
		frame:   frame.Clone(),
		rng:     rng,
		outcome: Continue,
	}
}

// Step runs exactly one tick. Once the game is over the terminal result is
// latched and returned again without advancing.
func (gm *GameManager) Step(input Direction) Result {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if gm.outcome.Over() {
		return Result{Frame: gm.frame.Clone(), Outcome: gm.outcome}
	}

	result := Advance(gm.frame, input, gm.rng)
	gm.ticks++
	gm.frame = result.Frame
	gm.outcome = result.Outcome

	if result.Over() {
		log.Info("Game over", "outcome", result.Outcome, "ticks", gm.ticks, "length", result.Frame.Length())
	} else {
		log.Debug("Tick", "tick", gm.ticks, "input", input, "head", result.Frame.Head.Position, "facing", result.Frame.Head.Facing)
	}

	return Result{Frame: gm.frame.Clone(), Outcome: gm.outcome}
}

func (gm *GameManager) Frame() Frame {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	return gm.frame.Clone()
}

func (gm *GameManager) Ticks() int {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	return gm.ticks
}

func (gm *GameManager) Outcome() Outcome {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	return gm.outcome
}

// Reset starts a new game from frame.
func (gm *GameManager) Reset(frame Frame) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	gm.initial = frame.Clone()
	gm.frame = frame.Clone()
	gm.ticks = 0
	gm.outcome = Continue
	log.Info("Game reset", "width", frame.Width, "height", frame.Height)
}

// Restart replays from the frame the manager was created or last reset with.
func (gm *GameManager) Restart() {
	gm.mu.Lock()
	initial := gm.initial
	gm.mu.Unlock()

	gm.Reset(initial)
}
