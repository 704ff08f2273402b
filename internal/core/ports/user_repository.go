package ports

import (
	"context"

	"github.com/goodmart/ecommerce-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	// SetSupplierFlags writes both role flags in a single update so no
	// intermediate flag combination is ever observable.
	SetSupplierFlags(ctx context.Context, id int64, isSupplier, isCustomer bool) error
	// SetActive flips the soft-delete flag.
	SetActive(ctx context.Context, id int64, active bool) error
}
