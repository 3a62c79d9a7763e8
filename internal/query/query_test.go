package query

import (
	"testing"
	"time"

	"github.com/erazemk/najdeno/internal/model"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func testItems() []model.Item {
	return []model.Item{
		{ID: 1, Name: "iPhone 14 Pro", Description: "Black phone with a case.", CategoryID: 1, Location: "Central Park", ReportedAt: date(2023, 10, 26)},
		{ID: 2, Name: "Brown Wallet", Description: "Leather wallet with cards.", CategoryID: 2, Location: "Library", ReportedAt: date(2023, 10, 25)},
		{ID: 3, Name: "Set of Keys", Description: "Three keys on a keychain.", CategoryID: 5, Location: "Metro Station", ReportedAt: date(2023, 10, 27)},
		{ID: 4, Name: "Blue Jacket", Description: "Navy windbreaker.", CategoryID: 4, Location: "Airport", ReportedAt: date(2023, 10, 27)},
	}
}

func ids(items []model.Item) []int64 {
	out := make([]int64, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestFilterTermMatching(t *testing.T) {
	items := testItems()

	tests := []struct {
		name string
		term string
		want []int64
	}{
		{"empty term matches all", "", []int64{3, 4, 1, 2}},
		{"name match", "wallet", []int64{2}},
		{"case-insensitive name match", "WALLET", []int64{2}},
		{"description match", "keychain", []int64{3}},
		{"location match", "airport", []int64{4}},
		{"substring match", "Phon", []int64{1}},
		{"no match", "umbrella", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(items, Options{Term: tt.term}))
			if len(got) != len(tt.want) {
				t.Fatalf("Filter(term=%q) = %v, want %v", tt.term, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Filter(term=%q) = %v, want %v", tt.term, got, tt.want)
				}
			}
		})
	}
}

func TestFilterMatchesAnyOfThreeFields(t *testing.T) {
	items := testItems()

	// "park" appears only in item 1's location, "leather" only in item
	// 2's description, "keys" only in item 3's name. OR semantics means
	// each term finds its item regardless of which field matched.
	for term, want := range map[string]int64{"park": 1, "leather": 2, "keys": 3} {
		got := Filter(items, Options{Term: term})
		if len(got) != 1 || got[0].ID != want {
			t.Errorf("Filter(term=%q) = %v, want item %d", term, ids(got), want)
		}
	}
}

func TestFilterByCategory(t *testing.T) {
	items := testItems()

	got := Filter(items, Options{CategoryID: 2})
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("Filter(category=2) = %v, want [2]", ids(got))
	}

	// Zero category means no filter.
	if got := Filter(items, Options{}); len(got) != len(items) {
		t.Errorf("Filter(no category) returned %d items, want %d", len(got), len(items))
	}

	// Term and category combine.
	got = Filter(items, Options{Term: "keys", CategoryID: 2})
	if len(got) != 0 {
		t.Errorf("Filter(term=keys, category=2) = %v, want none", ids(got))
	}
}

func TestFilterSortsByDateDescending(t *testing.T) {
	got := Filter(testItems(), Options{})
	for i := 1; i < len(got); i++ {
		if got[i-1].ReportedAt.Before(got[i].ReportedAt) {
			t.Fatalf("result not sorted by date descending: %v before %v", got[i-1].ReportedAt, got[i].ReportedAt)
		}
	}
}

func TestFilterStableOnEqualDates(t *testing.T) {
	// Items 3 and 4 share a date; insertion order must hold.
	got := Filter(testItems(), Options{})
	if got[0].ID != 3 || got[1].ID != 4 {
		t.Errorf("expected ties in insertion order [3 4 ...], got %v", ids(got))
	}
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	items := testItems()
	Filter(items, Options{Term: "wallet"})

	if items[0].ID != 1 || items[3].ID != 4 {
		t.Error("Filter reordered its input slice")
	}
}
