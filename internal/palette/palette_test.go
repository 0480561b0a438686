package palette

import (
	"math/rand/v2"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestANSI(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{Reset, "\x1b[0m"},
		{Red, "\x1b[31m"},
		{Cyan, "\x1b[36m"},
		{LightRed, "\x1b[91m"},
		{LightCyan, "\x1b[96m"},
	}

	for _, tt := range tests {
		t.Run(tt.color.String(), func(t *testing.T) {
			if got := tt.color.ANSI(); got != tt.want {
				t.Fatalf("ANSI() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if got := Green.Wrap("CAT"); got != "\x1b[32mCAT\x1b[0m" {
		t.Fatalf("Wrap = %q", got)
	}
	if got := Reset.Wrap("CAT"); got != "CAT" {
		t.Fatalf("Reset.Wrap should leave text plain, got %q", got)
	}
}

func TestRandomStaysInPalette(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1024))
	seen := make(map[Color]int)
	for range 5000 {
		c := Random(rng)
		if c == Reset {
			t.Fatalf("Random returned Reset")
		}
		seen[c]++
	}
	for _, c := range Colors {
		if seen[c] == 0 {
			t.Errorf("color %v never drawn in 5000 samples", c)
		}
	}
	if len(seen) != len(Colors) {
		t.Fatalf("drew %d distinct colors, want %d", len(seen), len(Colors))
	}
}

func TestRandomIsReproducibleWithSeed(t *testing.T) {
	a := rand.New(rand.NewPCG(7, 7))
	b := rand.New(rand.NewPCG(7, 7))
	for i := range 50 {
		if ca, cb := Random(a), Random(b); ca != cb {
			t.Fatalf("sample %d differs: %v vs %v", i, ca, cb)
		}
	}
}

func TestTcell(t *testing.T) {
	if got := Red.Tcell(); got != tcell.PaletteColor(1) {
		t.Fatalf("Red.Tcell() = %v", got)
	}
	if got := LightBlue.Tcell(); got != tcell.PaletteColor(12) {
		t.Fatalf("LightBlue.Tcell() = %v", got)
	}
	if got := Reset.Tcell(); got != tcell.ColorDefault {
		t.Fatalf("Reset.Tcell() = %v", got)
	}
}
