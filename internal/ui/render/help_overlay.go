package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/wordhunt/internal/state"
)

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

func buildHelpOverlayLines(s *statepkg.Session) []string {
	revealDesc := "Reveal the solution"
	if s != nil && s.Revealed {
		revealDesc = "Solution already revealed"
	}

	sections := []helpOverlaySection{
		{
			title: "Puzzle",
			entries: []helpOverlayEntry{
				{keys: "↵ or Space", desc: revealDesc},
				{keys: "↑/↓ or k/j", desc: "Select a word and mark its letters"},
				{keys: "Click", desc: "Select the clicked word"},
			},
		},
		{
			title: "Exit",
			entries: []helpOverlayEntry{
				{keys: "q or Esc", desc: "Quit"},
				{keys: "Ctrl+C", desc: "Quit immediately"},
				{keys: "Ctrl+Z", desc: "Suspend to the shell"},
				{keys: "?", desc: "Close this help"},
			},
		},
	}

	lines := make([]string, 0, 16)
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, fmt.Sprintf("  %-14s %s", entry.keys, entry.desc))
		}
	}
	return lines
}

func (r *Renderer) drawHelpOverlay(s *statepkg.Session, w, h int) {
	baseStyle := tcell.StyleDefault
	for y := 0; y < h; y++ {
		r.fillLine(0, y, w, baseStyle)
	}

	title := " Help "
	headerStyle := baseStyle.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg).Bold(true)
	titleStart := 0
	if titleWidth := r.measureTextWidth(title); w > titleWidth {
		titleStart = (w - titleWidth) / 2
	}
	r.drawTextLine(titleStart, 0, w-titleStart, title, headerStyle)

	row := 2
	for _, line := range buildHelpOverlayLines(s) {
		if row >= h-1 {
			break
		}
		r.drawTextLine(2, row, w-4, line, baseStyle)
		row++
	}

	if h > 0 {
		r.drawTextLine(0, h-1, w, buildFooterHelpText(s), headerStyle)
	}
}
