package ports

import (
	"context"

	"github.com/goodmart/ecommerce-api/internal/core/domain"
)

// CreateReviewInput carries the fields for posting a review.
type CreateReviewInput struct {
	ProductID int64
	Comment   string
	Grade     int
}

// ReviewService defines use-case operations for reviews.
type ReviewService interface {
	List(ctx context.Context) ([]*domain.Review, error)
	ByProduct(ctx context.Context, productID int64) ([]*domain.Review, error)
	Add(ctx context.Context, actor Actor, input CreateReviewInput) (*domain.Review, error)
	Delete(ctx context.Context, reviewID int64) error
}

// RatingService recomputes a product's aggregate rating from its active
// reviews. Invoked by the rating dispatcher workers.
type RatingService interface {
	Refresh(ctx context.Context, productID int64) error
}
