package exporter

import (
	"fmt"
	"strconv"
	"strings"
)

// Selection picks which of the enumerated decks to export.
type Selection struct {
	All     bool
	Indices []int
}

// SelectAll selects every enumerated deck.
func SelectAll() Selection {
	return Selection{All: true}
}

// ParseSelection understands "all" (or an empty string) and a comma-separated
// list of zero-based indices into the enumerated deck list. Anything else is
// a malformed selection, fatal before any export begins.
func ParseSelection(s string) (Selection, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "all" {
		return SelectAll(), nil
	}

	parts := strings.Split(s, ",")
	indices := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Selection{}, fmt.Errorf("invalid deck index %q", strings.TrimSpace(part))
		}
		indices = append(indices, n)
	}
	return Selection{Indices: indices}, nil
}

// apply filters decks down to the selected ones, in selection order.
// Out-of-range indices are dropped silently.
func (s Selection) apply(decks []string) []string {
	if s.All {
		return decks
	}
	out := make([]string, 0, len(s.Indices))
	for _, i := range s.Indices {
		if i >= 0 && i < len(decks) {
			out = append(out, decks[i])
		}
	}
	return out
}
