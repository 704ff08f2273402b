package domain

import (
	"errors"
	"time"
)

var ErrReviewNotFound = errors.New("review not found")

// Review is a customer's grade and comment on a product.
type Review struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	ProductID   int64     `json:"product_id"`
	Comment     string    `json:"comment,omitempty"`
	CommentDate time.Time `json:"comment_date"`
	Grade       int       `json:"grade"`
	IsActive    bool      `json:"is_active"`
}
