package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/goodmart/ecommerce-api/internal/pkg/token"
)

func signedToken(t *testing.T, secret string, payload jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runAuth(t *testing.T, header string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(token.NewCodec("secret"))(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	signed := signedToken(t, "secret", jwt.MapClaims{
		"sub":         "alice",
		"id":          7,
		"is_admin":    true,
		"is_customer": true,
		"exp":         time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(token.NewCodec("secret"))(func(c echo.Context) error {
		called = true
		if c.Get(CtxUsername) != "alice" {
			t.Fatalf("username not set")
		}
		if c.Get(CtxUserID) != int64(7) {
			t.Fatalf("user id not set: %v", c.Get(CtxUserID))
		}
		if c.Get(CtxIsAdmin) != true || c.Get(CtxIsCustomer) != true {
			t.Fatalf("role flags not set")
		}
		if c.Get(CtxIsSupplier) != false {
			t.Fatalf("unset flag should read false")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec, called := runAuth(t, "")
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	rec, called := runAuth(t, "Token abc")
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	signed := signedToken(t, "secret", jwt.MapClaims{
		"sub": "alice",
		"id":  7,
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	rec, called := runAuth(t, "Bearer "+signed)
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingExpiry(t *testing.T) {
	signed := signedToken(t, "secret", jwt.MapClaims{
		"sub": "alice",
		"id":  7,
	})

	rec, called := runAuth(t, "Bearer "+signed)
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ExpiryWrongType(t *testing.T) {
	signed := signedToken(t, "secret", jwt.MapClaims{
		"sub": "alice",
		"id":  7,
		"exp": "soon",
	})

	rec, called := runAuth(t, "Bearer "+signed)
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthMiddleware_TamperedToken(t *testing.T) {
	signed := signedToken(t, "other-secret", jwt.MapClaims{
		"sub": "alice",
		"id":  7,
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	rec, called := runAuth(t, "Bearer "+signed)
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
