package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("secret")

	signed, err := codec.Encode(Claims{
		Username:   "alice",
		UserID:     42,
		IsAdmin:    true,
		IsCustomer: true,
	}, time.Hour)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	claims, err := codec.Decode(signed)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if claims.Username != "alice" {
		t.Fatalf("unexpected username: %q", claims.Username)
	}
	if claims.UserID != 42 {
		t.Fatalf("unexpected user id: %d", claims.UserID)
	}
	if !claims.IsAdmin || claims.IsSupplier || !claims.IsCustomer {
		t.Fatalf("unexpected role flags: %+v", claims)
	}
	if claims.ExpiresAt <= time.Now().Unix() {
		t.Fatalf("expiry not in the future: %d", claims.ExpiresAt)
	}
}

func TestCodec_Expired(t *testing.T) {
	codec := NewCodec("secret")

	signed, err := codec.Encode(Claims{Username: "alice", UserID: 1}, -time.Minute)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	if _, err := codec.Decode(signed); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	signed, err := NewCodec("secret").Encode(Claims{Username: "alice", UserID: 1}, time.Hour)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	if _, err := NewCodec("other").Decode(signed); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestCodec_Garbage(t *testing.T) {
	if _, err := NewCodec("secret").Decode("not.a.token"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

// sign builds a token with an arbitrary claim payload so tests can produce
// shapes Encode never emits.
func sign(t *testing.T, secret string, payload jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return signed
}

func TestCodec_MissingExpiry(t *testing.T) {
	signed := sign(t, "secret", jwt.MapClaims{"sub": "alice", "id": 1})

	if _, err := NewCodec("secret").Decode(signed); !errors.Is(err, ErrMissingExpiry) {
		t.Fatalf("expected ErrMissingExpiry, got %v", err)
	}
}

func TestCodec_ExpiryWrongType(t *testing.T) {
	signed := sign(t, "secret", jwt.MapClaims{"sub": "alice", "id": 1, "exp": "soon"})

	if _, err := NewCodec("secret").Decode(signed); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestCodec_MissingSubject(t *testing.T) {
	signed := sign(t, "secret", jwt.MapClaims{
		"id":  1,
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	if _, err := NewCodec("secret").Decode(signed); !errors.Is(err, ErrInvalidClaims) {
		t.Fatalf("expected ErrInvalidClaims, got %v", err)
	}
}

func TestCodec_MissingUserID(t *testing.T) {
	signed := sign(t, "secret", jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	if _, err := NewCodec("secret").Decode(signed); !errors.Is(err, ErrInvalidClaims) {
		t.Fatalf("expected ErrInvalidClaims, got %v", err)
	}
}
