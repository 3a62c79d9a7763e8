package store

import "github.com/erazemk/najdeno/internal/model"

// Command is a single state mutation. Commands are applied atomically
// through Apply and record their outcome in their own fields, so callers
// can inspect what happened after dispatch.
type Command interface {
	apply(s *Store)
}

// Apply runs one command under the store's write lock. This is the only
// mutation entry point; there is exactly one logical writer.
func (s *Store) Apply(cmd Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cmd.apply(s)
}

// AddItem appends a new item report. The store assigns the ID and stamps
// the report date with the current calendar date. Field preconditions
// (non-empty name, category, location; reportable status) are the
// submitting layer's responsibility.
type AddItem struct {
	Name        string
	Description string
	CategoryID  int64
	Status      model.Status
	Location    string
	Image       []byte
	ImageMime   string
	UserID      int64

	// Created is the stored record, populated after Apply.
	Created model.Item
}

func (c *AddItem) apply(s *Store) {
	item := model.Item{
		ID:          s.nextItemID,
		Name:        c.Name,
		Description: c.Description,
		CategoryID:  c.CategoryID,
		Status:      c.Status,
		Location:    c.Location,
		ReportedAt:  s.today(),
		Image:       c.Image,
		ImageMime:   c.ImageMime,
		UserID:      c.UserID,
	}
	s.nextItemID++
	s.items = append(s.items, item)
	c.Created = item
}

// SetStatus replaces an item's status. Unknown item IDs and invalid
// statuses leave the collection untouched; any valid status may move to
// any other (the lifecycle is not a restricted state machine).
type SetStatus struct {
	ItemID int64
	Status model.Status

	// Updated reports whether an item was changed, populated after Apply.
	Updated bool
}

func (c *SetStatus) apply(s *Store) {
	if !c.Status.Valid() {
		return
	}
	for i := range s.items {
		if s.items[i].ID == c.ItemID {
			s.items[i].Status = c.Status
			c.Updated = true
			return
		}
	}
}

// AddCategory appends a new category. Empty names and names already
// present (compared case-insensitively) are refused as no-ops.
type AddCategory struct {
	Name string

	// Added reports whether the category was created; Created holds the
	// stored record when it was. Populated after Apply.
	Added   bool
	Created model.Category
}

func (c *AddCategory) apply(s *Store) {
	if c.Name == "" || s.categoryNameTaken(c.Name) {
		return
	}
	category := model.Category{ID: s.nextCategoryID, Name: c.Name}
	s.nextCategoryID++
	s.categories = append(s.categories, category)
	c.Added = true
	c.Created = category
}
