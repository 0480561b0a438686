package grid

import (
	"unicode/utf8"

	"github.com/kk-code-lab/wordhunt/internal/palette"
)

// group families in scan order
type family struct {
	groups   func(g *Grid) [][]rune
	cell     func(group, idx, nRows int) Location
	forward  Direction
	backward Direction
}

var families = []family{
	{
		groups:   func(g *Grid) [][]rune { return g.rows },
		cell:     func(group, idx, _ int) Location { return Location{Row: group, Column: idx} },
		forward:  Right,
		backward: Left,
	},
	{
		groups:   func(g *Grid) [][]rune { return g.columns },
		cell:     func(group, idx, _ int) Location { return Location{Row: idx, Column: group} },
		forward:  Down,
		backward: Up,
	},
	{
		groups:   func(g *Grid) [][]rune { return g.upRight },
		cell:     upRightCell,
		forward:  AngledUpRight,
		backward: AngledDownLeft,
	},
	{
		groups:   func(g *Grid) [][]rune { return g.downRight },
		cell:     downRightCell,
		forward:  AngledDownRight,
		backward: AngledUpLeft,
	},
}

// Locate finds word without touching the overlay. Rows are scanned first,
// then columns, up-right and down-right diagonals, each in group order; the
// first hit wins.
func (g *Grid) Locate(word string) (Match, bool) {
	if word == "" {
		return Match{}, false
	}
	length := utf8.RuneCountInString(word)
	nRows := g.Rows()
	for _, fam := range families {
		for group, letters := range fam.groups(g) {
			idx, forward, ok := findInGroup(word, letters)
			if !ok {
				continue
			}
			dir := fam.backward
			if forward {
				dir = fam.forward
			}
			return Match{
				Start:     fam.cell(group, idx, nRows),
				Direction: dir,
				Length:    length,
			}, true
		}
	}
	return Match{}, false
}

// FindWord locates word and highlights its letters with color.
func (g *Grid) FindWord(word string, color palette.Color) (Match, bool) {
	m, ok := g.Locate(word)
	if !ok {
		return Match{}, false
	}
	g.highlight(m.Start, m.Direction, m.Length, color)
	return m, true
}
