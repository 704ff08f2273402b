package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Role predicates evaluated against the claims injected by Auth. Each
// returns 403 with a uniform message so responses do not hint at which
// flag was missing.

func RequireAdmin() echo.MiddlewareFunc {
	return requireFlags(CtxIsAdmin)
}

func RequireSupplierOrAdmin() echo.MiddlewareFunc {
	return requireFlags(CtxIsSupplier, CtxIsAdmin)
}

func RequireCustomer() echo.MiddlewareFunc {
	return requireFlags(CtxIsCustomer)
}

// requireFlags passes when at least one of the given claim flags is set.
func requireFlags(keys ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			for _, key := range keys {
				if flag, _ := c.Get(key).(bool); flag {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "not enough permission for this action"})
		}
	}
}
