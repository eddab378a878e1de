package game

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// Render draws the frame as rows of runes, highest y first. The head is
// drawn first, then the body, then the apple, so later layers win on overlap.
func Render(frame Frame) ([]string, error) {
	if frame.Width <= 0 || frame.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrMalformedGrid, frame.Width, frame.Height)
	}

	grid := make([][]rune, frame.Height)
	for y := range grid {
		grid[y] = make([]rune, frame.Width)
		for x := range grid[y] {
			grid[y][x] = GlyphEmpty
		}
	}

	put := func(p Position, glyph rune) error {
		if !frame.InBounds(p) {
			return fmt.Errorf("%w: %q at (%d,%d) outside %dx%d", ErrMalformedGrid, glyph, p.X, p.Y, frame.Width, frame.Height)
		}
		grid[p.Y][p.X] = glyph
		return nil
	}

	headGlyph, err := HeadChar(frame.Head.Facing)
	if err != nil {
		return nil, err
	}
	if err := put(frame.Head.Position, headGlyph); err != nil {
		return nil, err
	}

	for _, segment := range frame.Body {
		if err := put(segment, GlyphBody); err != nil {
			return nil, err
		}
	}

	if frame.Apple != nil {
		if err := put(*frame.Apple, GlyphApple); err != nil {
			return nil, err
		}
	}

	rows := make([]string, 0, frame.Height)
	for y := frame.Height - 1; y >= 0; y-- {
		rows = append(rows, string(grid[y]))
	}
	return rows, nil
}

// RenderText is Render joined with newlines, the format Parse reads.
func RenderText(frame Frame) (string, error) {
	rows, err := Render(frame)
	if err != nil {
		return "", err
	}
	return strings.Join(rows, "\n"), nil
}

// Parse reads a grid produced by Render. Body segments come back in scan
// order (bottom row first, left to right), which is not necessarily the
// neck-to-tail order of the frame that was rendered.
func Parse(text string) (Frame, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return Frame{}, fmt.Errorf("%w: empty grid", ErrMalformedGrid)
	}

	lines := strings.Split(text, "\n")
	slices.Reverse(lines)

	frame := Frame{
		Width:  utf8.RuneCountInString(lines[0]),
		Height: len(lines),
	}

	var head *Head
	for y, line := range lines {
		row := []rune(line)
		if len(row) != frame.Width {
			return Frame{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, y, len(row), frame.Width)
		}

		for x, glyph := range row {
			p := Position{X: x, Y: y}
			switch glyph {
			case GlyphEmpty:
			case GlyphApple:
				apple := p
				frame.Apple = &apple
			case GlyphBody:
				frame.Body = append(frame.Body, p)
			default:
				facing, err := CharToDirection(glyph)
				if err != nil {
					return Frame{}, fmt.Errorf("cell (%d,%d): %w", x, y, err)
				}
				head = &Head{Position: p, Facing: facing}
			}
		}
	}

	if head == nil {
		return Frame{}, ErrNoHeadFound
	}
	frame.Head = *head

	return frame, nil
}
