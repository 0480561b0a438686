package grid

import "github.com/kk-code-lab/wordhunt/internal/palette"

// highlight colors n overlay cells from start stepping in d. Earlier marks
// are overwritten. Callers pass in-bounds runs only.
func (g *Grid) highlight(start Location, d Direction, n int, color palette.Color) {
	for i := 0; i < n; i++ {
		loc := start.Step(d, i)
		g.overlay[loc.Row][loc.Column] = Mark{
			Letter: g.rows[loc.Row][loc.Column],
			Color:  color,
		}
	}
}
