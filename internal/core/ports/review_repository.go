package ports

import (
	"context"

	"github.com/goodmart/ecommerce-api/internal/core/domain"
)

// ReviewRepository defines persistence for product reviews.
type ReviewRepository interface {
	ListActive(ctx context.Context) ([]*domain.Review, error)
	ListActiveByProduct(ctx context.Context, productID int64) ([]*domain.Review, error)
	FindActiveByID(ctx context.Context, id int64) (*domain.Review, error)
	Insert(ctx context.Context, review *domain.Review) (*domain.Review, error)
	Deactivate(ctx context.Context, id int64) error
	// AverageGrade returns the mean grade over active reviews for the
	// product and the number of reviews included. count is 0 when the
	// product has no active reviews.
	AverageGrade(ctx context.Context, productID int64) (avg float64, count int64, err error)
}
