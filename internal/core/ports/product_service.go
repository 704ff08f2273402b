package ports

import (
	"context"

	"github.com/goodmart/ecommerce-api/internal/core/domain"
)

// CreateProductInput carries the fields for creating or updating a product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       int64
	ImageURL    string
	Stock       int64
	CategoryID  int64
}

// ProductService defines use-case operations for products. The router gates
// writes to suppliers and admins; ownership (owner-or-admin) is enforced
// here because it needs the stored supplier id.
type ProductService interface {
	List(ctx context.Context) ([]*domain.Product, error)
	ByCategory(ctx context.Context, categorySlug string) ([]*domain.Product, error)
	Detail(ctx context.Context, productSlug string) (*domain.Product, error)
	Create(ctx context.Context, actor Actor, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, actor Actor, productSlug string, input CreateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, actor Actor, productSlug string) error
}
