package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/goodmart/ecommerce-api/internal/core/domain"
)

func TestPermissionHandler_SupplierPermission(t *testing.T) {
	cases := []struct {
		name        string
		nowSupplier bool
		wantDetail  string
	}{
		{"grant", true, "User is now supplier"},
		{"revoke", false, "User is no longer supplier"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubAuthService{
				supplierPermissionFn: func(_ context.Context, userID int64) (bool, error) {
					if userID != 7 {
						t.Fatalf("unexpected user id: %d", userID)
					}
					return tc.nowSupplier, nil
				},
			}
			handler := NewPermissionHandler(stub)

			c, rec := newJSONContext(t, http.MethodPatch, "/permission?user_id=7", "")

			if err := handler.SupplierPermission(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}

			var resp permissionResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Detail != tc.wantDetail {
				t.Fatalf("unexpected detail: %q", resp.Detail)
			}
		})
	}
}

func TestPermissionHandler_SupplierPermission_BadUserID(t *testing.T) {
	handler := NewPermissionHandler(&stubAuthService{})

	c, _ := newJSONContext(t, http.MethodPatch, "/permission?user_id=abc", "")

	err := handler.SupplierPermission(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestPermissionHandler_DeleteUser(t *testing.T) {
	cases := []struct {
		name           string
		alreadyDeleted bool
		wantDetail     string
	}{
		{"first delete", false, "User is deleted"},
		{"repeat delete", true, "User has already been deleted"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubAuthService{
				deleteUserFn: func(_ context.Context, userID int64) (bool, error) {
					return tc.alreadyDeleted, nil
				},
			}
			handler := NewPermissionHandler(stub)

			c, rec := newJSONContext(t, http.MethodDelete, "/permission/delete?user_id=7", "")

			if err := handler.DeleteUser(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}

			var resp permissionResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Detail != tc.wantDetail {
				t.Fatalf("unexpected detail: %q", resp.Detail)
			}
		})
	}
}

func TestPermissionHandler_DeleteUser_AdminTarget(t *testing.T) {
	stub := &stubAuthService{
		deleteUserFn: func(_ context.Context, _ int64) (bool, error) {
			return false, domain.ErrForbidden
		},
	}
	handler := NewPermissionHandler(stub)

	c, _ := newJSONContext(t, http.MethodDelete, "/permission/delete?user_id=1", "")

	if err := handler.DeleteUser(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
