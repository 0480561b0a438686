package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/kk-code-lab/wordhunt/internal/grid"
	statepkg "github.com/kk-code-lab/wordhunt/internal/state"
	"github.com/kk-code-lab/wordhunt/internal/textutil"
)

// GridCellWidth returns the display width of the widest letter in g.
func GridCellWidth(g *grid.Grid) int {
	width := 1
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Columns(); c++ {
			letter := textutil.SanitizeLetter(g.Letter(grid.Location{Row: r, Column: c}))
			if w := textutil.DisplayWidth(letter); w > width {
				width = w
			}
		}
	}
	return width
}

// WriteGrid prints the plain letters, space separated, one row per line.
func WriteGrid(w io.Writer, g *grid.Grid) error {
	return writeCells(w, g, func(_ grid.Mark, letter string) string { return letter })
}

// WriteSolution prints the highlight overlay. Found letters are wrapped in
// their ANSI color; the rest stay plain.
func WriteSolution(w io.Writer, g *grid.Grid) error {
	return writeCells(w, g, func(m grid.Mark, letter string) string { return m.Color.Wrap(letter) })
}

func writeCells(w io.Writer, g *grid.Grid, cell func(m grid.Mark, letter string) string) error {
	cellWidth := GridCellWidth(g)
	var b strings.Builder
	for _, row := range g.Overlay() {
		for c, mark := range row {
			letter := textutil.SanitizeLetter(mark.Letter)
			b.WriteString(cell(mark, letter))
			if c < len(row)-1 {
				b.WriteString(strings.Repeat(" ", cellWidth-textutil.DisplayWidth(letter)+1))
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// DescribeResult is the report line for r without color codes.
func DescribeResult(r statepkg.WordResult) string {
	return describe(r, textutil.SanitizeTerminalText(r.Word))
}

// FormatResult is the report line for r with the word in its color.
func FormatResult(r statepkg.WordResult) string {
	word := textutil.SanitizeTerminalText(r.Word)
	if r.Found {
		word = r.Color.Wrap(word)
	}
	return describe(r, word)
}

func describe(r statepkg.WordResult, word string) string {
	if !r.Found {
		return fmt.Sprintf("Did not find %s", word)
	}
	return fmt.Sprintf("Found %s at %v going %v.", word, r.Match.Start, r.Match.Direction)
}

// WriteResult prints FormatResult(r) on its own line.
func WriteResult(w io.Writer, r statepkg.WordResult) error {
	_, err := fmt.Fprintln(w, FormatResult(r))
	return err
}
