package fs

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/kk-code-lab/wordhunt/internal/grid"
)

func writePuzzle(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write puzzle: %v", err)
	}
	return path
}

func TestParsePuzzle(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantGrid  string
		wantWords []string
	}{
		{
			name:      "crlf",
			text:      "C A T\r\nD O G\r\nF O X\r\n\r\n\r\nCAT   DOG\r\n  FOX ",
			wantGrid:  "CAT\nDOG\nFOX",
			wantWords: []string{"CAT", "DOG", "FOX"},
		},
		{
			name:      "lf",
			text:      "CAT\nDOG\nFOX\n\n\nGOD\tCOX\n",
			wantGrid:  "CAT\nDOG\nFOX",
			wantWords: []string{"GOD", "COX"},
		},
		{
			name:      "extra blank lines join the word list",
			text:      "CAT\nDOG\n\n\n\n\nCAT\n\n\nDOG",
			wantGrid:  "CAT\nDOG",
			wantWords: []string{"CAT", "DOG"},
		},
		{
			name:      "empty word list",
			text:      "CAT\n\n\n",
			wantGrid:  "CAT",
			wantWords: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePuzzle(tt.text)
			if err != nil {
				t.Fatalf("ParsePuzzle error: %v", err)
			}
			if got := p.Grid.String(); got != tt.wantGrid {
				t.Fatalf("grid = %q, want %q", got, tt.wantGrid)
			}
			if len(p.Words) != len(tt.wantWords) || !slices.Equal(p.Words, tt.wantWords) {
				t.Fatalf("words = %q, want %q", p.Words, tt.wantWords)
			}
		})
	}
}

func TestParsePuzzleErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"no separator", "CAT\nDOG\n\nCAT", ErrMissingWordList},
		{"ragged grid", "CAT\nDO\n\n\nCAT", grid.ErrRaggedGrid},
		{"empty grid", "\n\n\nCAT", grid.ErrEmptyGrid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePuzzle(tt.text)
			if !errors.Is(err, tt.want) {
				t.Fatalf("ParsePuzzle error = %v, want %v", err, tt.want)
			}
			if p != nil {
				t.Fatalf("expected no puzzle on error")
			}
		})
	}
}

func TestParseWords(t *testing.T) {
	got := ParseWords("\n BATHROOM \n  FLUSH      WIPE  ")
	want := []string{"BATHROOM", "FLUSH", "WIPE"}
	if !slices.Equal(got, want) {
		t.Fatalf("ParseWords = %q, want %q", got, want)
	}
}

func TestReadPuzzle(t *testing.T) {
	path := writePuzzle(t, "puzzle.txt", []byte("CAT\r\nDOG\r\nFOX\r\n\r\n\r\nCAT DOG"))
	p, err := ReadPuzzle(path)
	if err != nil {
		t.Fatalf("ReadPuzzle error: %v", err)
	}
	if p.Grid.Rows() != 3 || p.Grid.Columns() != 3 {
		t.Fatalf("grid = %dx%d, want 3x3", p.Grid.Rows(), p.Grid.Columns())
	}
	if !slices.Equal(p.Words, []string{"CAT", "DOG"}) {
		t.Fatalf("words = %q", p.Words)
	}
}

func TestReadPuzzleUTF16(t *testing.T) {
	text := "AB\r\nCD\r\n\r\n\r\nAD"
	content := []byte{0xFF, 0xFE}
	for _, r := range text {
		content = append(content, byte(r), 0x00)
	}
	p, err := ReadPuzzle(writePuzzle(t, "puzzle.txt", content))
	if err != nil {
		t.Fatalf("ReadPuzzle error: %v", err)
	}
	if got := p.Grid.String(); got != "AB\nCD" {
		t.Fatalf("grid = %q", got)
	}
	if !slices.Equal(p.Words, []string{"AD"}) {
		t.Fatalf("words = %q", p.Words)
	}
}

func TestReadPuzzleErrors(t *testing.T) {
	if _, err := ReadPuzzle(filepath.Join(t.TempDir(), "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file error = %v, want os.ErrNotExist", err)
	}
	if _, err := ReadPuzzle(writePuzzle(t, "grid.png", []byte("CAT\n\n\nCAT"))); !errors.Is(err, ErrNotText) {
		t.Fatalf("binary file error = %v, want ErrNotText", err)
	}
}
