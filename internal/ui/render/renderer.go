package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/wordhunt/internal/grid"
	statepkg "github.com/kk-code-lab/wordhunt/internal/state"
	"github.com/kk-code-lab/wordhunt/internal/textutil"
)

// Renderer handles all UI rendering
type Renderer struct {
	screen         tcell.Screen
	theme          ColorTheme
	runeWidthCache [128]int // ASCII cache (0-127), width+1 so zero means unset
	runeWidthWide  map[rune]int
	lastLayout     Layout
	hasLayout      bool
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:        screen,
		theme:         GetColorTheme(),
		runeWidthWide: make(map[rune]int),
	}
}

// LastLayout returns the layout of the most recent frame.
func (r *Renderer) LastLayout() (Layout, bool) {
	return r.lastLayout, r.hasLayout
}

// Render draws the entire UI based on the session
func (r *Renderer) Render(s *statepkg.Session) {
	r.screen.Clear()
	w, h := r.screen.Size()

	layout := r.computeLayout(s, w, h)
	r.lastLayout = layout
	r.hasLayout = true

	if s.HelpVisible {
		r.drawHelpOverlay(s, w, h)
		r.screen.Show()
		return
	}

	r.drawHeader(s, w)
	r.drawGrid(s, layout, w, h)
	r.drawWordPanel(s, layout, w, h)
	r.drawStatusLine(s, w, h)

	r.screen.Show()
}

func (r *Renderer) drawHeader(s *statepkg.Session, w int) {
	style := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)
	x := r.drawTextLine(0, 0, w, "wordhunt", style.Bold(true))
	info := fmt.Sprintf("  %dx%d grid · %d words", s.Grid.Rows(), s.Grid.Columns(), len(s.Words))
	x = r.drawTextLine(x, 0, w-x, info, style)
	r.fillLine(x, 0, w, style)
}

func (r *Renderer) drawGrid(s *statepkg.Session, layout Layout, w, h int) {
	base := tcell.StyleDefault.Foreground(r.theme.LetterFg)
	selected := s.SelectedCells()

	for row := 0; row < s.Grid.Rows(); row++ {
		y := layout.GridY + row
		if y >= h-1 {
			return
		}
		for col := 0; col < s.Grid.Columns(); col++ {
			x := layout.GridX + col*layout.CellStride
			if x >= w {
				break
			}
			loc := grid.Location{Row: row, Column: col}
			mark := s.Grid.Mark(loc)
			style := base
			if s.Revealed && mark.Highlighted() {
				style = style.Foreground(mark.Color.Tcell()).Bold(true)
			}
			if selected[loc] {
				style = style.Reverse(true)
			}
			r.drawTextLine(x, y, min(layout.CellWidth, w-x), textutil.SanitizeLetter(mark.Letter), style)
		}
	}
}

func (r *Renderer) drawWordPanel(s *statepkg.Session, layout Layout, w, h int) {
	if layout.PanelX >= w || layout.PanelY-1 >= h-1 {
		return
	}
	panelWidth := w - layout.PanelX
	base := tcell.StyleDefault.Foreground(r.theme.PanelFg)

	title := "Words"
	if s.Revealed {
		title = fmt.Sprintf("Words (%d/%d found)", s.FoundCount(), len(s.Results))
	}
	r.drawTextLine(layout.PanelX, layout.PanelY-1, panelWidth, title, base.Bold(true))

	for i := 0; i < layout.PanelRows; i++ {
		idx := layout.PanelScroll + i
		if idx >= len(s.Words) {
			break
		}
		y := layout.PanelY + i
		word := textutil.SanitizeTerminalText(s.Words[idx])

		style := base
		prefix := "  "
		if s.Revealed && idx < len(s.Results) {
			res := s.Results[idx]
			if res.Found {
				style = style.Foreground(res.Color.Tcell())
			} else {
				style = style.Foreground(r.theme.MissingFg).StrikeThrough(true)
			}
			if idx == s.SelectedIndex {
				prefix = "> "
				style = style.Background(r.theme.SelectionBg).Bold(true)
			}
		}
		x := r.drawTextLine(layout.PanelX, y, panelWidth, prefix, style)
		r.drawTextLine(x, y, panelWidth-(x-layout.PanelX), word, style)
	}
}

func (r *Renderer) drawStatusLine(s *statepkg.Session, w, h int) {
	if h < 2 {
		return
	}
	y := h - 1
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)

	help := buildFooterHelpText(s)
	left := ""
	if res, ok := s.SelectedResult(); ok {
		left = " " + DescribeResult(res)
	}

	helpWidth := r.measureTextWidth(help)
	x := r.drawTextLine(0, y, max(w-helpWidth, 0), left, style)
	r.fillLine(x, y, w, style)
	if helpWidth <= w {
		r.drawTextLine(w-helpWidth, y, helpWidth, help, style)
	}
}
