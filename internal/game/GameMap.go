package game

// Position is a grid cell. (0,0) is the bottom-left corner.
type Position struct {
	X int
	Y int
}

func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

type Head struct {
	Position
	Facing Direction
}

// Frame is one complete snapshot of the game at a single tick.
type Frame struct {
	Head Head
	// Body runs from the neck (next to the head) to the tail.
	Body []Position
	// Apple is nil only between consumption and respawn, or once the snake
	// has filled the board.
	Apple  *Position
	Width  int
	Height int
}

func NewFrame(width int, height int, head Head) Frame {
	return Frame{
		Head:   head,
		Width:  width,
		Height: height,
	}
}

// BoringFrame is the demo starting position: a lone head in the bottom-left
// corner with the apple in the opposite corner.
func BoringFrame() Frame {
	frame := NewFrame(StdWidth, StdHeight, Head{Position: Position{X: 0, Y: 0}, Facing: Up})
	frame.Apple = &Position{X: StdWidth - 1, Y: StdHeight - 1}
	return frame
}

// Clone performs a deep copy of the frame.
func (f Frame) Clone() Frame {
	out := Frame{
		Head:   f.Head,
		Width:  f.Width,
		Height: f.Height,
	}

	if len(f.Body) > 0 {
		out.Body = make([]Position, len(f.Body))
		copy(out.Body, f.Body)
	}

	if f.Apple != nil {
		apple := *f.Apple
		out.Apple = &apple
	}

	return out
}

func (f Frame) InBounds(p Position) bool {
	return p.X >= 0 && p.X < f.Width && p.Y >= 0 && p.Y < f.Height
}

// Occupied reports whether the head or any body segment sits on p.
func (f Frame) Occupied(p Position) bool {
	if f.Head.Position == p {
		return true
	}
	return f.onBody(p)
}

func (f Frame) onBody(p Position) bool {
	for _, segment := range f.Body {
		if segment == p {
			return true
		}
	}
	return false
}

// Length counts the head plus every body segment.
func (f Frame) Length() int {
	return len(f.Body) + 1
}
