package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/goodmart/ecommerce-api/internal/core/domain"
)

func render(t *testing.T, err error) (*httptest.ResponseRecorder, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec, resp
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrForbidden, http.StatusForbidden, "not enough permission for this action"},
		{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{domain.ErrInvalidName, http.StatusBadRequest, "name must contain letters or digits"},
		{domain.ErrCategoryNotFound, http.StatusNotFound, "category not found"},
		{domain.ErrProductNotFound, http.StatusNotFound, "product not found"},
		{domain.ErrReviewNotFound, http.StatusNotFound, "review not found"},
	}
	for _, tc := range cases {
		rec, resp := render(t, tc.err)
		if rec.Code != tc.wantCode {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.wantCode, rec.Code)
		}
		if resp.Error != tc.wantMsg {
			t.Errorf("%v: expected %q, got %q", tc.err, tc.wantMsg, resp.Error)
		}
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	rec, resp := render(t, echo.NewHTTPError(http.StatusBadRequest, "invalid token format"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if resp.Error != "invalid token format" {
		t.Fatalf("unexpected message: %q", resp.Error)
	}
}

func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	rec, resp := render(t, errors.New("mongo exploded"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	// The real cause is logged, never leaked.
	if resp.Error != "internal server error" {
		t.Fatalf("unexpected message: %q", resp.Error)
	}
}
