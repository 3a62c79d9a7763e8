package model

import "time"

// Item represents a reported lost or found object.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CategoryID  int64     `json:"category_id"`
	Status      Status    `json:"status"`
	Location    string    `json:"location"`
	ReportedAt  time.Time `json:"reported_at"`
	Image       []byte    `json:"-"`
	ImageMime   string    `json:"image_mime,omitempty"`
	UserID      int64     `json:"user_id"`
}

// HasImage reports whether the item carries a photo.
func (i Item) HasImage() bool {
	return len(i.Image) > 0
}

// Status is the lifecycle state of an item.
type Status string

// Item statuses.
const (
	StatusLost    Status = "Lost"
	StatusFound   Status = "Found"
	StatusClaimed Status = "Claimed"
)

// Statuses lists all item statuses in display order.
func Statuses() []Status {
	return []Status{StatusLost, StatusFound, StatusClaimed}
}

// Valid reports whether s is one of the defined statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusLost, StatusFound, StatusClaimed:
		return true
	}
	return false
}

// Reportable reports whether s is a submittable initial status.
// Claimed items can only be produced by an admin status change.
func (s Status) Reportable() bool {
	return s == StatusLost || s == StatusFound
}
