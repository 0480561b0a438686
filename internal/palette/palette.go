package palette

import (
	"fmt"
	"math/rand/v2"

	"github.com/gdamore/tcell/v2"
)

// Color is a terminal foreground color used to mark found words.
// The zero value is Reset, which means "no color".
type Color int

const (
	Reset Color = iota
	Red
	Green
	Yellow
	Magenta
	Cyan
	LightRed
	LightGreen
	LightYellow
	LightBlue
	LightMagenta
	LightCyan
)

// Colors lists every color Random can return, in palette order.
var Colors = []Color{
	Red,
	Green,
	Yellow,
	Magenta,
	Cyan,
	LightRed,
	LightGreen,
	LightYellow,
	LightBlue,
	LightMagenta,
	LightCyan,
}

var colorNames = map[Color]string{
	Reset:        "reset",
	Red:          "red",
	Green:        "green",
	Yellow:       "yellow",
	Magenta:      "magenta",
	Cyan:         "cyan",
	LightRed:     "light-red",
	LightGreen:   "light-green",
	LightYellow:  "light-yellow",
	LightBlue:    "light-blue",
	LightMagenta: "light-magenta",
	LightCyan:    "light-cyan",
}

// SGR foreground codes; the bright variants live in the 90s.
var ansiCodes = map[Color]int{
	Reset:        0,
	Red:          31,
	Green:        32,
	Yellow:       33,
	Magenta:      35,
	Cyan:         36,
	LightRed:     91,
	LightGreen:   92,
	LightYellow:  93,
	LightBlue:    94,
	LightMagenta: 95,
	LightCyan:    96,
}

// Random draws a color uniformly from Colors.
func Random(rng *rand.Rand) Color {
	return Colors[rng.IntN(len(Colors))]
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// Code returns the SGR parameter for c.
func (c Color) Code() int {
	return ansiCodes[c]
}

// ANSI returns the escape sequence that switches the foreground to c.
func (c Color) ANSI() string {
	return fmt.Sprintf("\x1b[%dm", c.Code())
}

// Wrap surrounds text with c and a trailing reset. Reset returns text as is.
func (c Color) Wrap(text string) string {
	if c == Reset {
		return text
	}
	return c.ANSI() + text + Reset.ANSI()
}

// Tcell maps c onto the 16-color terminal palette.
func (c Color) Tcell() tcell.Color {
	code := c.Code()
	switch {
	case code >= 30 && code <= 37:
		return tcell.PaletteColor(code - 30)
	case code >= 90 && code <= 97:
		return tcell.PaletteColor(code - 90 + 8)
	default:
		return tcell.ColorDefault
	}
}
