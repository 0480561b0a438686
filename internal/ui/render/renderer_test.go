package render

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/wordhunt/internal/grid"
	statepkg "github.com/kk-code-lab/wordhunt/internal/state"
)

func newTestScreen(t *testing.T, w, h int) tcell.Screen {
	t.Helper()
	scr := tcell.NewSimulationScreen("")
	if err := scr.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(scr.Fini)
	scr.SetSize(w, h)
	return scr
}

func newTestSession(t *testing.T, lines []string, words ...string) *statepkg.Session {
	t.Helper()
	return statepkg.NewSession(grid.MustNew(lines), words, rand.New(rand.NewPCG(1, 2)))
}

func screenLine(scr tcell.Screen, y int) string {
	w, _ := scr.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		mainc, _, _, _ := scr.GetContent(x, y)
		if mainc == 0 {
			mainc = ' '
		}
		b.WriteRune(mainc)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestMeasureTextWidth(t *testing.T) {
	r := NewRenderer(nil)

	if got := r.measureTextWidth("abc"); got != 3 {
		t.Fatalf("expected ASCII width 3, got %d", got)
	}
	if got := r.measureTextWidth("你好"); got != 4 {
		t.Fatalf("expected wide rune width 4, got %d", got)
	}
	// cached path
	if got := r.measureTextWidth("abc"); got != 3 {
		t.Fatalf("expected cached ASCII width 3, got %d", got)
	}
}

func TestComputeLayoutPlacesPanelBesideGrid(t *testing.T) {
	r := NewRenderer(nil)
	s := newTestSession(t, []string{"CAT", "DOG", "FOX"}, "CAT", "DOG")

	layout := r.computeLayout(s, 80, 24)
	if layout.CellStride != 2 {
		t.Fatalf("CellStride = %d, want 2", layout.CellStride)
	}
	if want := gridMarginX + 3*2 + panelGap; layout.PanelX != want {
		t.Fatalf("PanelX = %d, want %d", layout.PanelX, want)
	}
	if layout.PanelY != gridMarginY+1 {
		t.Fatalf("PanelY = %d, want %d", layout.PanelY, gridMarginY+1)
	}
}

func TestComputeLayoutStacksPanelOnNarrowScreen(t *testing.T) {
	r := NewRenderer(nil)
	s := newTestSession(t, []string{"CAT", "DOG", "FOX"}, "CAT")

	layout := r.computeLayout(s, 14, 24)
	if layout.PanelX != gridMarginX {
		t.Fatalf("PanelX = %d, want %d", layout.PanelX, gridMarginX)
	}
	if want := gridMarginY + 3 + 2; layout.PanelY != want {
		t.Fatalf("PanelY = %d, want %d", layout.PanelY, want)
	}
}

func TestComputeLayoutScrollsToSelection(t *testing.T) {
	r := NewRenderer(nil)
	words := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	s := newTestSession(t, []string{"AB"}, words...)
	s.Reveal()
	s.SelectedIndex = 7

	layout := r.computeLayout(s, 80, 7)
	if layout.PanelRows != 3 {
		t.Fatalf("PanelRows = %d, want 3", layout.PanelRows)
	}
	if layout.PanelScroll != 5 {
		t.Fatalf("PanelScroll = %d, want 5", layout.PanelScroll)
	}
	if idx, ok := layout.WordAt(layout.PanelX, layout.PanelY+2); !ok || idx != 7 {
		t.Fatalf("WordAt last visible row = (%d, %v), want (7, true)", idx, ok)
	}
	if _, ok := layout.WordAt(layout.PanelX-1, layout.PanelY); ok {
		t.Fatalf("WordAt left of panel should miss")
	}
}

func TestRenderBeforeReveal(t *testing.T) {
	scr := newTestScreen(t, 60, 12)
	s := newTestSession(t, []string{"CAT", "DOG", "FOX"}, "CAT", "GOD")
	r := NewRenderer(scr)

	r.Render(s)

	if got := screenLine(scr, 0); !strings.HasPrefix(got, "wordhunt  3x3 grid · 2 words") {
		t.Fatalf("header = %q", got)
	}
	layout, ok := r.LastLayout()
	if !ok {
		t.Fatalf("expected layout after render")
	}
	if got := screenLine(scr, layout.GridY); !strings.HasPrefix(got, "  C A T") {
		t.Fatalf("first grid row = %q", got)
	}
	if got := screenLine(scr, layout.PanelY); !strings.HasSuffix(got, "  CAT") {
		t.Fatalf("first word row = %q", got)
	}
	mainc, _, style, _ := scr.GetContent(layout.GridX, layout.GridY)
	fg, _, _ := style.Decompose()
	if mainc != 'C' || fg != r.theme.LetterFg {
		t.Fatalf("unrevealed cell = %q fg %v, want plain C", mainc, fg)
	}
	if got := screenLine(scr, 11); !strings.Contains(got, "reveal solution") {
		t.Fatalf("status line = %q", got)
	}
}

func TestRenderAfterRevealColorsAndSelects(t *testing.T) {
	scr := newTestScreen(t, 100, 12)
	s := newTestSession(t, []string{"CAT", "DOG", "FOX"}, "GOD", "ZZZ")
	s.Reveal()
	r := NewRenderer(scr)

	r.Render(s)
	layout, _ := r.LastLayout()

	god := s.Results[0]
	for _, loc := range god.Match.Cells() {
		x := layout.GridX + loc.Column*layout.CellStride
		y := layout.GridY + loc.Row
		_, _, style, _ := scr.GetContent(x, y)
		fg, _, attrs := style.Decompose()
		if fg != god.Color.Tcell() {
			t.Fatalf("cell %v fg = %v, want %v", loc, fg, god.Color.Tcell())
		}
		if attrs&tcell.AttrReverse == 0 {
			t.Fatalf("selected word cell %v should be reversed", loc)
		}
	}
	_, _, style, _ := scr.GetContent(layout.GridX, layout.GridY)
	if _, _, attrs := style.Decompose(); attrs&tcell.AttrReverse != 0 {
		t.Fatalf("cell outside the selected word should not be reversed")
	}

	if got := screenLine(scr, layout.PanelY-1); !strings.HasSuffix(got, "Words (1/2 found)") {
		t.Fatalf("panel title = %q", got)
	}
	if got := screenLine(scr, layout.PanelY); !strings.HasSuffix(got, "> GOD") {
		t.Fatalf("selected word row = %q", got)
	}
	_, _, missStyle, _ := scr.GetContent(layout.PanelX+2, layout.PanelY+1)
	if _, _, attrs := missStyle.Decompose(); attrs&tcell.AttrStrikeThrough == 0 {
		t.Fatalf("missing word should be struck through")
	}
	if got := screenLine(scr, 11); !strings.HasPrefix(got, " Found GOD at 1, 2 going RIGHT to LEFT.") {
		t.Fatalf("status line = %q", got)
	}
}

func TestRenderHelpOverlay(t *testing.T) {
	scr := newTestScreen(t, 60, 14)
	s := newTestSession(t, []string{"CAT"}, "CAT")
	s.HelpVisible = true
	r := NewRenderer(scr)

	r.Render(s)

	if got := screenLine(scr, 0); !strings.Contains(got, "Help") {
		t.Fatalf("help title = %q", got)
	}
	joined := ""
	for y := 0; y < 14; y++ {
		joined += screenLine(scr, y) + "\n"
	}
	for _, want := range []string{"Puzzle", "Reveal the solution", "Exit", "close help"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("help overlay missing %q:\n%s", want, joined)
		}
	}
}

func TestBuildFooterHelpText(t *testing.T) {
	s := newTestSession(t, []string{"CAT"}, "CAT")
	if got := buildFooterHelpText(s); !strings.Contains(got, "reveal") {
		t.Fatalf("footer before reveal = %q", got)
	}
	s.Reveal()
	if got := buildFooterHelpText(s); !strings.Contains(got, "select word") {
		t.Fatalf("footer after reveal = %q", got)
	}
	if got := buildFooterHelpText(nil); got != "" {
		t.Fatalf("footer for nil session = %q", got)
	}
}
