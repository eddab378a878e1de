package game

import (
	"testing"
)

func TestGameManager_StepThreadsFrames(t *testing.T) {
	gm := NewGameManager(headOnly(1, 0, Up, 3, 5), seeded(1))

	for i := 1; i <= 3; i++ {
		result := gm.Step(NoDirection)
		if result.Outcome != Continue {
			t.Fatalf("tick %d: outcome=%v", i, result.Outcome)
		}
		if got := gm.Frame().Head.Position; got != (Position{X: 1, Y: i}) {
			t.Fatalf("tick %d: head=%v want=(1,%d)", i, got, i)
		}
	}
	if gm.Ticks() != 3 {
		t.Fatalf("ticks=%d want=3", gm.Ticks())
	}
}

func TestGameManager_LatchesGameOver(t *testing.T) {
	gm := NewGameManager(headOnly(0, 0, Left, 2, 2), seeded(1))

	first := gm.Step(NoDirection)
	if first.Outcome != HitEdgeOfScreen {
		t.Fatalf("outcome=%v want=%v", first.Outcome, HitEdgeOfScreen)
	}

	// a legal turn after game over must not revive the snake
	again := gm.Step(Up)
	if again.Outcome != HitEdgeOfScreen {
		t.Fatalf("outcome after game over=%v want=%v", again.Outcome, HitEdgeOfScreen)
	}
	if gm.Ticks() != 1 {
		t.Fatalf("ticks=%d want=1", gm.Ticks())
	}
	if gm.Frame().Head.Position != (Position{X: 0, Y: 0}) {
		t.Fatalf("head=%v want last valid (0,0)", gm.Frame().Head.Position)
	}
}

func TestGameManager_RestartAndReset(t *testing.T) {
	start := headOnly(0, 0, Left, 2, 2)
	gm := NewGameManager(start, seeded(1))
	gm.Step(NoDirection)

	gm.Restart()
	if gm.Outcome() != Continue || gm.Ticks() != 0 {
		t.Fatalf("after restart outcome=%v ticks=%d", gm.Outcome(), gm.Ticks())
	}
	if gm.Frame().Head != start.Head {
		t.Fatalf("head=%+v want=%+v", gm.Frame().Head, start.Head)
	}

	other := headOnly(1, 1, Up, 4, 4)
	gm.Reset(other)
	if result := gm.Step(NoDirection); result.Outcome != Continue || result.Frame.Head.Position != (Position{X: 1, Y: 2}) {
		t.Fatalf("after reset step=%+v", result)
	}

	gm.Restart()
	if gm.Frame().Head != other.Head {
		t.Fatalf("restart should replay the last reset frame, head=%+v", gm.Frame().Head)
	}
}

func TestGameManager_FrameIsACopy(t *testing.T) {
	start := Frame{
		Head:   Head{Position: Position{X: 1, Y: 1}, Facing: Up},
		Body:   []Position{{X: 1, Y: 0}},
		Width:  3,
		Height: 3,
	}
	gm := NewGameManager(start, seeded(1))

	frame := gm.Frame()
	frame.Body[0] = Position{X: 9, Y: 9}

	if gm.Frame().Body[0] != (Position{X: 1, Y: 0}) {
		t.Fatalf("manager state leaked through Frame()")
	}
}
