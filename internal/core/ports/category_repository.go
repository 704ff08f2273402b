package ports

import (
	"context"

	"github.com/goodmart/ecommerce-api/internal/core/domain"
)

// CategoryRepository defines persistence for catalog categories.
type CategoryRepository interface {
	ListActive(ctx context.Context) ([]*domain.Category, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Category, error)
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
	// ListChildIDs returns the ids of the direct children of parentID.
	ListChildIDs(ctx context.Context, parentID int64) ([]int64, error)
	Insert(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, slug string, category *domain.Category) error
	Deactivate(ctx context.Context, slug string) error
}
