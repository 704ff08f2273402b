package ports

import (
	"context"

	"github.com/goodmart/ecommerce-api/internal/core/domain"
)

// ProductRepository defines persistence for catalog products.
type ProductRepository interface {
	// ListSellable returns active products with stock remaining.
	ListSellable(ctx context.Context) ([]*domain.Product, error)
	ListSellableByCategoryIDs(ctx context.Context, categoryIDs []int64) ([]*domain.Product, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Product, error)
	FindSellableBySlug(ctx context.Context, slug string) (*domain.Product, error)
	FindActiveByID(ctx context.Context, id int64) (*domain.Product, error)
	Insert(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, slug string, product *domain.Product) error
	Deactivate(ctx context.Context, slug string) error
	// SetRating writes the aggregated review rating onto the product.
	SetRating(ctx context.Context, productID int64, rating float64) error
}
