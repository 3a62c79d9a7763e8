// Package query implements the item search pipeline: free-text and
// category filtering followed by a recency sort. Filter is pure; it is
// recomputed for every request over the canonical collection.
package query

import (
	"sort"
	"strings"

	"github.com/erazemk/najdeno/internal/model"
)

// Options narrows the result set. The zero value matches everything.
type Options struct {
	// Term is matched case-insensitively as a substring of an item's
	// name, description, or location. Empty matches all items.
	Term string

	// CategoryID keeps only items of one category. Zero means no filter.
	CategoryID int64
}

// Filter returns the items matching opts, sorted by report date
// descending. Ties keep their insertion order. The input slice is not
// modified.
func Filter(items []model.Item, opts Options) []model.Item {
	term := strings.ToLower(opts.Term)

	matched := make([]model.Item, 0, len(items))
	for _, item := range items {
		if term != "" && !matchesTerm(item, term) {
			continue
		}
		if opts.CategoryID != 0 && item.CategoryID != opts.CategoryID {
			continue
		}
		matched = append(matched, item)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].ReportedAt.After(matched[j].ReportedAt)
	})
	return matched
}

// matchesTerm reports whether the lowercased term is a substring of the
// item's name, description, or location.
func matchesTerm(item model.Item, term string) bool {
	return strings.Contains(strings.ToLower(item.Name), term) ||
		strings.Contains(strings.ToLower(item.Description), term) ||
		strings.Contains(strings.ToLower(item.Location), term)
}
