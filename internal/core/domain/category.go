package domain

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidName is returned when a name carries no letters or digits
	// and therefore cannot produce a slug.
	ErrInvalidName = errors.New("name must contain letters or digits")
)

// Category is a node in the catalog tree. ParentID is 0 for root categories.
type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	IsActive bool   `json:"is_active"`
	ParentID int64  `json:"parent_id,omitempty"`
}
