// Package stats computes the admin dashboard aggregates.
package stats

import "github.com/erazemk/najdeno/internal/model"

// Summary holds the dashboard stat cards and chart series.
type Summary struct {
	Total   int `json:"total"`
	Lost    int `json:"lost"`
	Found   int `json:"found"`
	Claimed int `json:"claimed"`

	// ByCategory lists per-category Lost/Found counts for the chart,
	// in category order. Claimed items are excluded, matching the chart.
	ByCategory []CategoryCount `json:"by_category"`
}

// CategoryCount is one chart row.
type CategoryCount struct {
	Name  string `json:"name"`
	Lost  int    `json:"lost"`
	Found int    `json:"found"`
}

// Compute derives a summary from the canonical collections. Items whose
// category reference does not resolve count toward the totals but not
// toward any chart row.
func Compute(items []model.Item, categories []model.Category) Summary {
	s := Summary{Total: len(items)}

	lostByCategory := make(map[int64]int)
	foundByCategory := make(map[int64]int)

	for _, item := range items {
		switch item.Status {
		case model.StatusLost:
			s.Lost++
			lostByCategory[item.CategoryID]++
		case model.StatusFound:
			s.Found++
			foundByCategory[item.CategoryID]++
		case model.StatusClaimed:
			s.Claimed++
		}
	}

	s.ByCategory = make([]CategoryCount, 0, len(categories))
	for _, c := range categories {
		s.ByCategory = append(s.ByCategory, CategoryCount{
			Name:  c.Name,
			Lost:  lostByCategory[c.ID],
			Found: foundByCategory[c.ID],
		})
	}
	return s
}

// MaxCount returns the largest single chart value, used for bar scaling.
// Never below 1, so templates can divide by it.
func (s Summary) MaxCount() int {
	max := 1
	for _, c := range s.ByCategory {
		if c.Lost > max {
			max = c.Lost
		}
		if c.Found > max {
			max = c.Found
		}
	}
	return max
}
