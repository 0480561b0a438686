package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	statepkg "github.com/kk-code-lab/wordhunt/internal/state"
	renderui "github.com/kk-code-lab/wordhunt/internal/ui/render"
)

const (
	pathPrompt   = "Enter the input file: "
	revealPrompt = "Press 'Enter' to reveal solution."
)

// ErrNoPath is returned when the path prompt gets no answer.
var ErrNoPath = errors.New("no puzzle file given")

// Console runs the line-oriented flow on a pair of streams. Both prompts read
// from the same buffered reader so piped input is not lost between them.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// PromptPath asks for the puzzle file and returns the trimmed answer.
func (c *Console) PromptPath() (string, error) {
	if _, err := fmt.Fprint(c.out, pathPrompt); err != nil {
		return "", err
	}
	line, err := c.readLine()
	if err != nil {
		return "", err
	}
	path := strings.TrimSpace(line)
	if path == "" {
		return "", ErrNoPath
	}
	return path, nil
}

// Run prints the plain grid, waits for Enter, then prints one line per word
// followed by the highlighted solution.
func (c *Console) Run(s *statepkg.Session) error {
	if err := renderui.WriteGrid(c.out, s.Grid); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(c.out, revealPrompt); err != nil {
		return err
	}
	if _, err := c.readLine(); err != nil {
		return err
	}
	return c.Report(s)
}

// Report reveals the session and writes the results and solution grid.
func (c *Console) Report(s *statepkg.Session) error {
	for _, r := range s.Reveal() {
		if err := renderui.WriteResult(c.out, r); err != nil {
			return err
		}
	}
	return renderui.WriteSolution(c.out, s.Grid)
}

// readLine treats end of input as an empty answer.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return line, nil
}
