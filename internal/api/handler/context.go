package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/goodmart/ecommerce-api/internal/api/middleware"
	"github.com/goodmart/ecommerce-api/internal/core/ports"
)

// ctxActor reconstructs the authenticated actor from the claims injected by
// the Auth middleware and fast-fails before any service call: a non-empty
// username proves the middleware ran, and the user id must be present for
// ownership checks to mean anything.
func ctxActor(c echo.Context) (ports.Actor, error) {
	username, _ := c.Get(middleware.CtxUsername).(string)
	if username == "" {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, ok := c.Get(middleware.CtxUserID).(int64)
	if !ok || userID == 0 {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "could not validate user")
	}

	isAdmin, _ := c.Get(middleware.CtxIsAdmin).(bool)
	isSupplier, _ := c.Get(middleware.CtxIsSupplier).(bool)
	isCustomer, _ := c.Get(middleware.CtxIsCustomer).(bool)

	return ports.Actor{
		UserID:     userID,
		Username:   username,
		IsAdmin:    isAdmin,
		IsSupplier: isSupplier,
		IsCustomer: isCustomer,
	}, nil
}
