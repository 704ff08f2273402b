package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/goodmart/ecommerce-api/internal/core/ports"
)

// PermissionHandler exposes the admin-only account mutations: the
// supplier/customer flip and user soft-delete.
type PermissionHandler struct {
	authService ports.AuthService
}

func NewPermissionHandler(authService ports.AuthService) *PermissionHandler {
	return &PermissionHandler{authService: authService}
}

type permissionResponse struct {
	Detail string `json:"detail"`
}

// SupplierPermission flips the target user between supplier and customer.
//
// @Summary      Grant or revoke supplier status
// @Tags         permission
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  query     int  true  "Target user id"
// @Success      200      {object}  permissionResponse
// @Failure      403      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /permission [patch]
func (h *PermissionHandler) SupplierPermission(c echo.Context) error {
	userID, err := strconv.ParseInt(c.QueryParam("user_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}

	nowSupplier, err := h.authService.SupplierPermission(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	detail := "User is no longer supplier"
	if nowSupplier {
		detail = "User is now supplier"
	}
	return c.JSON(http.StatusOK, permissionResponse{Detail: detail})
}

// DeleteUser soft-deletes the target user.
//
// @Summary      Soft-delete a user
// @Tags         permission
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  query     int  true  "Target user id"
// @Success      200      {object}  permissionResponse
// @Failure      403      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /permission/delete [delete]
func (h *PermissionHandler) DeleteUser(c echo.Context) error {
	userID, err := strconv.ParseInt(c.QueryParam("user_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}

	alreadyDeleted, err := h.authService.DeleteUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	detail := "User is deleted"
	if alreadyDeleted {
		detail = "User has already been deleted"
	}
	return c.JSON(http.StatusOK, permissionResponse{Detail: detail})
}
