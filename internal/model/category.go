package model

// Category is a classification label for items. Names are unique
// case-insensitively; categories are never renamed or deleted.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
