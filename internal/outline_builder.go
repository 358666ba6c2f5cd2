package internal

import (
	"errors"
	"fmt"
	"strings"
)

var errMalformedOutline = errors.New("malformed outline")

// ParseIndentedOutline builds a tree from lines whose depth is their number of leading tabs.
// The first line is the root at depth 0; every later line is at depth 1 or more and at most
// one level deeper than the line before it. All items start closed.
func ParseIndentedOutline(lines []string) (*Item, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no root", errMalformedOutline)
	}
	if strings.HasPrefix(lines[0], "\t") {
		return nil, fmt.Errorf("%w: line 1: root must not be indented", errMalformedOutline)
	}
	root, err := NewItem(lines[0])
	if err != nil {
		return nil, fmt.Errorf("line 1: %w", err)
	}

	// path[d] is the most recent item at depth d.
	path := []*Item{root}
	for i, line := range lines[1:] {
		title := strings.TrimLeft(line, "\t")
		depth := len(line) - len(title)
		if depth == 0 {
			return nil, fmt.Errorf("%w: line %d: second root %q", errMalformedOutline, i+2, title)
		}
		if depth > len(path) {
			return nil, fmt.Errorf("%w: line %d: skips a level", errMalformedOutline, i+2)
		}
		child, err := path[depth-1].AddChild(title)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		path = append(path[:depth], child)
	}
	return root, nil
}
