package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/goodmart/ecommerce-api/internal/pkg/token"
)

// Context keys populated by Auth for downstream middleware and handlers.
const (
	CtxUsername   = "username"
	CtxUserID     = "user_id"
	CtxIsAdmin    = "is_admin"
	CtxIsSupplier = "is_supplier"
	CtxIsCustomer = "is_customer"
)

// Auth validates the bearer token and injects the decoded claims into the
// request context. Codec failures map onto distinct responses: structural
// problems with the expiry claim are 400s, everything else is a 401 that
// does not reveal which check failed.
func Auth(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := codec.Decode(parts[1])
			if err != nil {
				switch {
				case errors.Is(err, token.ErrMissingExpiry):
					return echo.NewHTTPError(http.StatusBadRequest, "no access token supplied")
				case errors.Is(err, token.ErrMalformed):
					return echo.NewHTTPError(http.StatusBadRequest, "invalid token format")
				case errors.Is(err, token.ErrExpired):
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				default:
					return echo.NewHTTPError(http.StatusUnauthorized, "could not validate user")
				}
			}

			c.Set(CtxUsername, claims.Username)
			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxIsAdmin, claims.IsAdmin)
			c.Set(CtxIsSupplier, claims.IsSupplier)
			c.Set(CtxIsCustomer, claims.IsCustomer)

			return next(c)
		}
	}
}
