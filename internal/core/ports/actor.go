package ports

// Actor is the authenticated caller as reconstructed from the token claims.
// It is read-only for the remainder of the request.
type Actor struct {
	UserID     int64
	Username   string
	IsAdmin    bool
	IsSupplier bool
	IsCustomer bool
}
