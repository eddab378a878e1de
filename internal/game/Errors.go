package game

import "errors"

var (
	// Codec failures. These mean the caller handed over malformed input.
	ErrIllegalGlyph  = errors.New("illegal glyph")
	ErrNoHeadFound   = errors.New("no snake head found")
	ErrMalformedGrid = errors.New("malformed grid")

	// Terminal outcomes of Advance, for callers that prefer errors.Is over
	// switching on Outcome.
	ErrHitEdgeOfScreen      = errors.New("hit edge of screen")
	ErrBitOwnTail           = errors.New("bit own tail")
	ErrNoValidApplePosition = errors.New("no valid apple position")

	ErrUnknownDirection = errors.New("unknown direction")
)
