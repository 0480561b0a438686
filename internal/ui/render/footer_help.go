package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/wordhunt/internal/state"
)

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(s *statepkg.Session) string {
	parts := buildFooterHelpSegments(s)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

func buildFooterHelpSegments(s *statepkg.Session) []string {
	if s == nil {
		return nil
	}
	switch {
	case s.HelpVisible:
		return []string{"?/Esc: close help"}
	case s.Revealed:
		return []string{"↑/↓: select word", "?: help", "q: quit"}
	default:
		return []string{"↵: reveal solution", "?: help", "q: quit"}
	}
}
