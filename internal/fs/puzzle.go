// Package fs reads word search puzzle files.
//
// A puzzle file has two sections separated by a triple line break: the letter
// grid, then the words to find separated by any whitespace.
package fs

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kk-code-lab/wordhunt/internal/grid"
)

const sectionSeparator = "\n\n\n"

var (
	ErrMissingWordList = errors.New("puzzle has no word list (expected a triple line break after the grid)")
	ErrNotText         = errors.New("puzzle file is not text")
)

// Puzzle is a parsed puzzle file.
type Puzzle struct {
	Grid  *grid.Grid
	Words []string
}

// ReadPuzzle loads and parses the puzzle at path.
func ReadPuzzle(path string) (*Puzzle, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading puzzle: %w", err)
	}
	if !IsTextFile(path, content) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotText)
	}
	p, err := ParsePuzzle(DecodeText(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ParsePuzzle splits text into its grid and word list sections and parses
// both. Everything after the first triple line break is the word list.
func ParsePuzzle(text string) (*Puzzle, error) {
	gridText, wordText, err := SplitSections(text)
	if err != nil {
		return nil, err
	}
	g, err := parseGrid(gridText)
	if err != nil {
		return nil, err
	}
	return &Puzzle{Grid: g, Words: ParseWords(wordText)}, nil
}

// SplitSections returns the grid text and the word list text.
func SplitSections(text string) (gridText, wordText string, err error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	gridText, wordText, found := strings.Cut(text, sectionSeparator)
	if !found {
		return "", "", ErrMissingWordList
	}
	return gridText, wordText, nil
}

// ParseWords splits text on runs of whitespace, keeping order.
func ParseWords(text string) []string {
	return strings.Fields(text)
}

func parseGrid(text string) (*grid.Grid, error) {
	g, err := grid.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing grid: %w", err)
	}
	return g, nil
}
