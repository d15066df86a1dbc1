package mono

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"

	"github.com/solwatch/display"
)

// faces maps the engine's font identifiers to concrete bitmap faces.
//
// x/image ships no face smaller than 7x13, so FontBody and FontCompact
// share it; the headline fonts keep their large/small distinction through
// the inconsolata weights.
var faces = map[display.Font]font.Face{
	display.FontTitleLarge: inconsolata.Bold8x16,
	display.FontTitleSmall: inconsolata.Regular8x16,
	display.FontBody:       basicfont.Face7x13,
	display.FontCompact:    basicfont.Face7x13,
}
