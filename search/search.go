// Package search implements free-text filtering over record
// collections.
package search

import (
	"strings"
)

// Searchable is any record exposing a canonical text form.
type Searchable interface {
	SearchText() string
}

// Filter returns the subsequence of items whose canonical text
// contains term, case-insensitively, in the original order. An empty
// or whitespace-only term matches everything and returns items
// unchanged.
func Filter[T Searchable](items []T, term string) []T {
	if strings.TrimSpace(term) == "" {
		return items
	}

	needle := strings.ToLower(term)
	matched := []T{}
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.SearchText()), needle) {
			matched = append(matched, item)
		}
	}

	return matched
}
