// Package ingest reads puzzle input files into trimmed, non-empty text
// lines. It is the only package in the module that touches the
// filesystem; everything downstream works on plain strings.
//
// Errors:
//
//   - ErrLineCount: a pair was requested from a file with fewer than two
//     non-empty lines.
package ingest

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrLineCount indicates the input file holds fewer non-empty lines than
// the caller requires.
var ErrLineCount = errors.New("ingest: not enough input lines")

// Lines reads path and returns its lines with surrounding whitespace
// trimmed and blank lines dropped, in file order.
func Lines(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: read %s: %w", path, err)
	}
	var lines []string
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Pair reads path and returns its first two non-empty lines, the shape
// wire-panel input arrives in. Lines beyond the second are ignored.
// Returns ErrLineCount when fewer than two lines exist.
func Pair(path string) (first, second string, err error) {
	lines, err := Lines(path)
	if err != nil {
		return "", "", err
	}
	if len(lines) < 2 {
		return "", "", fmt.Errorf("%s has %d non-empty lines, need 2: %w", path, len(lines), ErrLineCount)
	}
	return lines[0], lines[1], nil
}
