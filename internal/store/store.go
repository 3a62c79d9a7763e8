// Package store owns the canonical in-memory collections: items,
// categories, and the fixed user set. All mutations go through typed
// commands applied by a single serialized entry point, so no two
// mutations ever interleave. Reads hand out copies; image payloads are
// shared but treated as read-only.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/erazemk/najdeno/internal/model"
)

// Store holds the canonical application state. The process loses it on
// exit; there is no persistence layer.
type Store struct {
	mu         sync.RWMutex
	items      []model.Item
	categories []model.Category
	users      []model.User

	nextItemID     int64
	nextCategoryID int64

	// now is swappable in tests.
	now func() time.Time
}

// New seeds a store from the given collections. ID counters start past
// the highest seeded ID, so new records never collide with seed data.
func New(users []model.User, categories []model.Category, items []model.Item) *Store {
	s := &Store{
		items:          items,
		categories:     categories,
		users:          users,
		nextItemID:     1,
		nextCategoryID: 1,
		now:            time.Now,
	}
	for _, item := range items {
		if item.ID >= s.nextItemID {
			s.nextItemID = item.ID + 1
		}
	}
	for _, c := range categories {
		if c.ID >= s.nextCategoryID {
			s.nextCategoryID = c.ID + 1
		}
	}
	return s
}

// Items returns a copy of the item collection in insertion order.
func (s *Store) Items() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]model.Item, len(s.items))
	copy(items, s.items)
	return items
}

// GetItem returns an item by ID.
func (s *Store) GetItem(id int64) (model.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return model.Item{}, false
}

// ItemImage returns an item's image payload and MIME type. The second
// return is false when the item does not exist or has no image.
func (s *Store) ItemImage(id int64) ([]byte, string, bool) {
	item, ok := s.GetItem(id)
	if !ok || !item.HasImage() {
		return nil, "", false
	}
	return item.Image, item.ImageMime, true
}

// Categories returns a copy of the category collection.
func (s *Store) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	categories := make([]model.Category, len(s.categories))
	copy(categories, s.categories)
	return categories
}

// GetCategory returns a category by ID.
func (s *Store) GetCategory(id int64) (model.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// CategoryNames returns an ID-to-name lookup for rendering. Items whose
// category reference does not resolve render as "Unknown"; that fallback
// belongs to the caller, since the map simply has no entry.
func (s *Store) CategoryNames() map[int64]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make(map[int64]string, len(s.categories))
	for _, c := range s.categories {
		names[c.ID] = c.Name
	}
	return names
}

// Users returns a copy of the fixed user set.
func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]model.User, len(s.users))
	copy(users, s.users)
	return users
}

// GetUser returns a user by ID.
func (s *Store) GetUser(id int64) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// GetUserByRole returns the first user with the given role. The role
// switch logs in "as a role", picking whichever fixture user holds it.
func (s *Store) GetUserByRole(role model.Role) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Role == role {
			return u, true
		}
	}
	return model.User{}, false
}

// categoryNameTaken reports whether name is already used, ignoring case.
// Callers must hold the lock.
func (s *Store) categoryNameTaken(name string) bool {
	for _, c := range s.categories {
		if strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

// today returns the current calendar date with no time component.
func (s *Store) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
