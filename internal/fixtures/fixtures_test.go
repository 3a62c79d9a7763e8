package fixtures

import "testing"

func TestFixtureIntegrity(t *testing.T) {
	categories := make(map[int64]bool)
	for _, c := range Categories() {
		if c.Name == "" {
			t.Errorf("category %d has empty name", c.ID)
		}
		if categories[c.ID] {
			t.Errorf("duplicate category id %d", c.ID)
		}
		categories[c.ID] = true
	}

	users := make(map[int64]bool)
	admins := 0
	for _, u := range Users() {
		if !u.Role.Valid() {
			t.Errorf("user %d has invalid role %q", u.ID, u.Role)
		}
		if u.Role.Admin() {
			admins++
		}
		if users[u.ID] {
			t.Errorf("duplicate user id %d", u.ID)
		}
		users[u.ID] = true
	}
	if admins != 1 {
		t.Errorf("expected exactly 1 admin, got %d", admins)
	}
	if !users[DefaultUserID] {
		t.Errorf("default user %d not in fixture set", DefaultUserID)
	}

	seen := make(map[int64]bool)
	for _, item := range Items() {
		if seen[item.ID] {
			t.Errorf("duplicate item id %d", item.ID)
		}
		seen[item.ID] = true

		if !item.Status.Valid() {
			t.Errorf("item %d has invalid status %q", item.ID, item.Status)
		}
		if !categories[item.CategoryID] {
			t.Errorf("item %d references unknown category %d", item.ID, item.CategoryID)
		}
		if !users[item.UserID] {
			t.Errorf("item %d references unknown user %d", item.ID, item.UserID)
		}
		if item.HasImage() && item.ImageMime == "" {
			t.Errorf("item %d has image bytes but no mime type", item.ID)
		}
	}
}

func TestFixturesReturnCopies(t *testing.T) {
	a := Items()
	a[0].Name = "mutated"
	b := Items()
	if b[0].Name == "mutated" {
		t.Error("Items() must return a fresh copy on each call")
	}
}
