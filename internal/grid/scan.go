package grid

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// findInGroup looks for word in group, forward first and then reversed.
// offset is the group index of the word's first letter; forward reports
// whether the word reads in increasing index order.
func findInGroup(word string, group []rune) (offset int, forward bool, ok bool) {
	text := string(group)
	if pos := strings.Index(text, word); pos >= 0 {
		return utf8.RuneCountInString(text[:pos]), true, true
	}

	reversed := slices.Clone(group)
	slices.Reverse(reversed)
	text = string(reversed)
	if pos := strings.Index(text, word); pos >= 0 {
		last := len(group) - 1
		return last - utf8.RuneCountInString(text[:pos]), false, true
	}
	return 0, false, false
}
