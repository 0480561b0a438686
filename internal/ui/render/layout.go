package render

import statepkg "github.com/kk-code-lab/wordhunt/internal/state"

const (
	gridMarginX   = 2
	gridMarginY   = 2
	panelGap      = 4
	minPanelWidth = 12
)

// Layout records where the last frame placed the grid and the word panel.
type Layout struct {
	GridX      int
	GridY      int
	CellWidth  int
	CellStride int

	PanelX      int
	PanelY      int
	PanelRows   int
	PanelScroll int
	WordCount   int
}

// WordAt maps a screen position to an index in the word list.
func (l Layout) WordAt(x, y int) (int, bool) {
	if x < l.PanelX || y < l.PanelY || y >= l.PanelY+l.PanelRows {
		return 0, false
	}
	idx := l.PanelScroll + (y - l.PanelY)
	if idx < 0 || idx >= l.WordCount {
		return 0, false
	}
	return idx, true
}

func (r *Renderer) computeLayout(s *statepkg.Session, w, h int) Layout {
	cellWidth := GridCellWidth(s.Grid)
	layout := Layout{
		GridX:      gridMarginX,
		GridY:      gridMarginY,
		CellWidth:  cellWidth,
		CellStride: cellWidth + 1,
		WordCount:  len(s.Words),
	}

	gridRight := layout.GridX + s.Grid.Columns()*layout.CellStride
	layout.PanelX = gridRight + panelGap
	// Words header sits on GridY, entries start below it.
	layout.PanelY = layout.GridY + 1
	if layout.PanelX+minPanelWidth > w {
		layout.PanelX = gridMarginX
		layout.PanelY = layout.GridY + s.Grid.Rows() + 2
	}

	// Leave the status line free.
	layout.PanelRows = h - 1 - layout.PanelY
	if layout.PanelRows < 0 {
		layout.PanelRows = 0
	}
	if layout.PanelRows > 0 && s.SelectedIndex >= layout.PanelRows {
		layout.PanelScroll = s.SelectedIndex - layout.PanelRows + 1
	}
	return layout
}
