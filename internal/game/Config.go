package game

const (
	StdWidth  = 80
	StdHeight = 20

	GlyphEmpty = ' '
	GlyphBody  = '+'
	GlyphApple = '*'

	// DefaultSeed is used by the demo commands when no seed flag is given.
	DefaultSeed int64 = 6996
)
