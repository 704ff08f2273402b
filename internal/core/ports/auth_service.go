package ports

import (
	"context"

	"github.com/goodmart/ecommerce-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
}

// AuthService implements credential verification, token issuance, and the
// admin-only account mutations.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies the credentials and returns a signed access token.
	// Unknown username, wrong password, and inactive account all map to
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// SupplierPermission atomically flips the supplier/customer pair on the
	// target user and reports whether the user is a supplier afterwards.
	SupplierPermission(ctx context.Context, userID int64) (bool, error)
	// DeleteUser soft-deletes the target user. The returned flag is true
	// when the user was already inactive and nothing was written.
	DeleteUser(ctx context.Context, userID int64) (bool, error)
}
