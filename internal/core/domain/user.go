package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrForbidden          = errors.New("not enough permission for this action")
)

// User models an account in the store. Role flags are stored independently
// but supplier and customer are treated as mutually exclusive by policy:
// the permission flip always writes both flags in one update.
type User struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	IsActive     bool   `json:"is_active"`
	IsAdmin      bool   `json:"is_admin"`
	IsSupplier   bool   `json:"is_supplier"`
	IsCustomer   bool   `json:"is_customer"`
}
