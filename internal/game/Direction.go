package game

import (
	"fmt"
	"strings"
)

// Direction is a cardinal facing. The numbering is cyclic (Up, Right, Down,
// Left) so opposite directions are always exactly two apart.
type Direction int

const (
	NoDirection Direction = iota
	Up
	Right
	Down
	Left
)

var directionNames = map[Direction]string{
	NoDirection: "none",
	Up:          "up",
	Right:       "right",
	Down:        "down",
	Left:        "left",
}

var headGlyphs = map[Direction]rune{
	Up:    '▲',
	Down:  '▼',
	Right: '→',
	Left:  '←',
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// Delta is the unit translation for d. Up increases y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Right:
		return 1, 0
	case Left:
		return -1, 0
	}
	return 0, 0
}

// IsLegalTurn rejects only a 180 degree reversal.
func IsLegalTurn(current, requested Direction) bool {
	diff := current - requested
	if diff < 0 {
		diff = -diff
	}
	return diff != 2
}

// ParseDirection accepts the lower case names produced by String. The empty
// string and "none" both map to NoDirection.
func ParseDirection(name string) (Direction, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return NoDirection, nil
	}
	for d, n := range directionNames {
		if n == name {
			return d, nil
		}
	}
	return NoDirection, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}

func HeadChar(d Direction) (rune, error) {
	glyph, ok := headGlyphs[d]
	if !ok {
		return 0, fmt.Errorf("%w: unknown direction %v", ErrIllegalGlyph, d)
	}
	return glyph, nil
}

func CharToDirection(glyph rune) (Direction, error) {
	for d, g := range headGlyphs {
		if g == glyph {
			return d, nil
		}
	}
	return NoDirection, fmt.Errorf("%w: %q", ErrIllegalGlyph, glyph)
}
