// Package grid indexes a word search puzzle and finds words in it.
//
// A Grid keeps four families of 1D letter groups over the same cells: rows,
// columns, up-right diagonals (row+col constant) and down-right diagonals
// (col-row constant). Searching a word is a substring search over each
// family, forward then reversed, with the hit mapped back to a start cell and
// a Direction.
package grid

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/kk-code-lab/wordhunt/internal/palette"
)

var (
	ErrEmptyGrid  = errors.New("grid has no letters")
	ErrRaggedGrid = errors.New("grid rows differ in length")
)

// Mark is one overlay cell: a letter and the color it was highlighted with.
type Mark struct {
	Letter rune
	Color  palette.Color
}

// Highlighted reports whether a found word covers the cell.
func (m Mark) Highlighted() bool {
	return m.Color != palette.Reset
}

func (m Mark) String() string {
	return m.Color.Wrap(string(m.Letter))
}

// Grid is a rectangular letter matrix plus its derived letter groups and the
// highlight overlay. Letters never change after New; only the overlay does.
type Grid struct {
	rows      [][]rune
	columns   [][]rune
	upRight   [][]rune
	downRight [][]rune
	overlay   [][]Mark
}

// New builds a Grid from equal-length lines. Zero rows, an empty first row or
// rows of differing length are rejected; no grid is returned for them.
func New(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	nCols := utf8.RuneCountInString(lines[0])
	if nCols == 0 {
		return nil, ErrEmptyGrid
	}
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n != nCols {
			return nil, fmt.Errorf("%w: row %d has %d letters, want %d", ErrRaggedGrid, i, n, nCols)
		}
	}

	nRows := len(lines)
	nDiag := nRows + nCols - 1
	g := &Grid{
		rows:      make([][]rune, nRows),
		columns:   make([][]rune, nCols),
		upRight:   make([][]rune, nDiag),
		downRight: make([][]rune, nDiag),
		overlay:   make([][]Mark, nRows),
	}

	for row, line := range lines {
		col := 0
		for _, letter := range line {
			g.rows[row] = append(g.rows[row], letter)
			g.columns[col] = append(g.columns[col], letter)
			g.upRight[row+col] = append(g.upRight[row+col], letter)
			g.downRight[nRows+col-row-1] = append(g.downRight[nRows+col-row-1], letter)
			g.overlay[row] = append(g.overlay[row], Mark{Letter: letter})
			col++
		}
	}
	// Index 0 of an up-right group is its bottom-left cell.
	for _, group := range g.upRight {
		slices.Reverse(group)
	}

	return g, nil
}

// MustNew is New that panics on malformed input.
func MustNew(lines []string) *Grid {
	g, err := New(lines)
	if err != nil {
		panic(err)
	}
	return g
}

// Parse builds a Grid from puzzle text. Spaces are removed, CRLF line breaks
// are accepted and trailing line breaks are ignored.
func Parse(text string) (*Grid, error) {
	text = strings.ReplaceAll(text, " ", "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	return New(strings.Split(text, "\n"))
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return len(g.rows)
}

// Columns returns the number of columns.
func (g *Grid) Columns() int {
	return len(g.columns)
}

// Letter returns the letter at loc.
func (g *Grid) Letter(loc Location) rune {
	return g.rows[loc.Row][loc.Column]
}

// Contains reports whether loc lies inside the grid.
func (g *Grid) Contains(loc Location) bool {
	return loc.Row >= 0 && loc.Row < g.Rows() && loc.Column >= 0 && loc.Column < g.Columns()
}

// Line returns row r as a string.
func (g *Grid) Line(r int) string {
	return string(g.rows[r])
}

// ReadAt reads n letters from start stepping in d. It stops early at the
// grid edge.
func (g *Grid) ReadAt(start Location, d Direction, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		loc := start.Step(d, i)
		if !g.Contains(loc) {
			break
		}
		b.WriteRune(g.Letter(loc))
	}
	return b.String()
}

// Mark returns the overlay cell at loc.
func (g *Grid) Mark(loc Location) Mark {
	return g.overlay[loc.Row][loc.Column]
}

// Overlay returns a copy of the highlight overlay, one slice per row.
func (g *Grid) Overlay() [][]Mark {
	out := make([][]Mark, len(g.overlay))
	for i, row := range g.overlay {
		out[i] = slices.Clone(row)
	}
	return out
}

func (g *Grid) String() string {
	lines := make([]string, g.Rows())
	for r := range g.rows {
		lines[r] = g.Line(r)
	}
	return strings.Join(lines, "\n")
}
