package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runRBAC(t *testing.T, mw echo.MiddlewareFunc, flags map[string]bool) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for key, value := range flags {
		c.Set(key, value)
	}

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestRequireAdmin(t *testing.T) {
	rec, called := runRBAC(t, RequireAdmin(), map[string]bool{CtxIsAdmin: true})
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("admin should pass, got %d", rec.Code)
	}

	rec, called = runRBAC(t, RequireAdmin(), map[string]bool{CtxIsSupplier: true})
	if called {
		t.Fatalf("supplier should not pass an admin gate")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireSupplierOrAdmin(t *testing.T) {
	for _, flags := range []map[string]bool{
		{CtxIsSupplier: true},
		{CtxIsAdmin: true},
	} {
		rec, called := runRBAC(t, RequireSupplierOrAdmin(), flags)
		if !called || rec.Code != http.StatusOK {
			t.Fatalf("flags %v should pass, got %d", flags, rec.Code)
		}
	}

	rec, called := runRBAC(t, RequireSupplierOrAdmin(), map[string]bool{CtxIsCustomer: true})
	if called {
		t.Fatalf("customer should not pass a supplier gate")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireCustomer(t *testing.T) {
	rec, called := runRBAC(t, RequireCustomer(), map[string]bool{CtxIsCustomer: true})
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("customer should pass, got %d", rec.Code)
	}

	rec, called = runRBAC(t, RequireCustomer(), nil)
	if called {
		t.Fatalf("anonymous claims should not pass")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
