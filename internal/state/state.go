package state

import (
	"math/rand/v2"

	"github.com/kk-code-lab/wordhunt/internal/grid"
	"github.com/kk-code-lab/wordhunt/internal/palette"
)

// WordResult is the outcome of searching one word.
type WordResult struct {
	Word  string
	Color palette.Color
	Match grid.Match
	Found bool
}

// Session is the single source of truth for one loaded puzzle.
type Session struct {
	Grid  *grid.Grid
	Words []string

	// Results holds one entry per word, in word order, once revealed.
	Results  []WordResult
	Revealed bool

	// Selection in the word list panel
	SelectedIndex int

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	HelpVisible bool
	Quit        bool

	rng *rand.Rand
}

// NewSession prepares a session; rng picks each word's highlight color.
func NewSession(g *grid.Grid, words []string, rng *rand.Rand) *Session {
	debugf("session grid=%dx%d words=%d", g.Rows(), g.Columns(), len(words))
	return &Session{
		Grid:  g,
		Words: words,
		rng:   rng,
	}
}

// Reveal searches every word in order, each with a freshly drawn color.
// Later calls return the existing results without searching again.
func (s *Session) Reveal() []WordResult {
	if s.Revealed {
		return s.Results
	}
	s.Results = make([]WordResult, 0, len(s.Words))
	for _, word := range s.Words {
		color := palette.Random(s.rng)
		m, found := s.Grid.FindWord(word, color)
		if found {
			debugf("found word=%q start=%v dir=%q color=%v", word, m.Start, m.Direction, color)
		} else {
			debugf("missing word=%q", word)
		}
		s.Results = append(s.Results, WordResult{
			Word:  word,
			Color: color,
			Match: m,
			Found: found,
		})
	}
	s.Revealed = true
	return s.Results
}

// FoundCount returns how many revealed words were found.
func (s *Session) FoundCount() int {
	n := 0
	for _, r := range s.Results {
		if r.Found {
			n++
		}
	}
	return n
}

// SelectedResult returns the result under the word list cursor.
func (s *Session) SelectedResult() (WordResult, bool) {
	if !s.Revealed || s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Results) {
		return WordResult{}, false
	}
	return s.Results[s.SelectedIndex], true
}

// SelectedCells returns the cells of the selected word, if it was found.
func (s *Session) SelectedCells() map[grid.Location]bool {
	r, ok := s.SelectedResult()
	if !ok || !r.Found {
		return nil
	}
	cells := make(map[grid.Location]bool, r.Match.Length)
	for _, loc := range r.Match.Cells() {
		cells[loc] = true
	}
	return cells
}
