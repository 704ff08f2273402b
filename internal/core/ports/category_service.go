package ports

import (
	"context"

	"github.com/goodmart/ecommerce-api/internal/core/domain"
)

// CreateCategoryInput carries the fields for creating or updating a category.
type CreateCategoryInput struct {
	Name     string
	ParentID int64
}

// CategoryService defines use-case operations for categories. Writes are
// admin-gated by the router; reads are public.
type CategoryService interface {
	List(ctx context.Context) ([]*domain.Category, error)
	Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error)
	Update(ctx context.Context, slug string, input CreateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, slug string) error
}
