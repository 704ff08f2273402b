// Package token encodes and decodes the signed claim set carried by bearer
// tokens. The codec is configured with its signing secret at construction;
// nothing in this package reads process-wide state.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalid covers signature mismatch and undecodable tokens. It is
	// deliberately generic so callers cannot tell which check failed.
	ErrInvalid = errors.New("invalid token")
	// ErrExpired is returned when the expiry claim is at or past now,
	// whether the signing library or the payload check caught it.
	ErrExpired = errors.New("token expired")
	// ErrMissingExpiry is returned when the payload carries no exp claim.
	ErrMissingExpiry = errors.New("no access token supplied")
	// ErrMalformed is returned when a required claim has the wrong type.
	ErrMalformed = errors.New("invalid token format")
	// ErrInvalidClaims is returned when subject or user id are absent.
	ErrInvalidClaims = errors.New("could not validate user")
)

// Claims is the decoded claim set: identity, role flags, and expiry.
type Claims struct {
	Username   string
	UserID     int64
	IsAdmin    bool
	IsSupplier bool
	IsCustomer bool
	ExpiresAt  int64
}

// Codec signs and verifies claim sets with a symmetric HMAC-SHA256 secret.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Encode serializes the claims with an absolute expiry of now+ttl and signs
// the result.
func (c *Codec) Encode(claims Claims, ttl time.Duration) (string, error) {
	payload := jwt.MapClaims{
		"sub":         claims.Username,
		"id":          claims.UserID,
		"is_admin":    claims.IsAdmin,
		"is_supplier": claims.IsSupplier,
		"is_customer": claims.IsCustomer,
		"exp":         time.Now().Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	return t.SignedString(c.secret)
}

// Decode verifies the signature first, then checks the payload. The expiry
// claim is validated twice: once by the signing library during parsing and
// once against the raw payload; both paths report ErrExpired.
func (c *Codec) Decode(raw string) (*Claims, error) {
	payload := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, payload, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrInvalidType):
			// exp present but not numeric
			return nil, ErrMalformed
		default:
			return nil, ErrInvalid
		}
	}
	if !tkn.Valid {
		return nil, ErrInvalid
	}

	rawExp, ok := payload["exp"]
	if !ok {
		return nil, ErrMissingExpiry
	}
	exp, ok := rawExp.(float64)
	if !ok {
		return nil, ErrMalformed
	}
	if int64(exp) <= time.Now().Unix() {
		return nil, ErrExpired
	}

	username, _ := payload["sub"].(string)
	id, idOK := payload["id"].(float64)
	if username == "" || !idOK {
		return nil, ErrInvalidClaims
	}

	return &Claims{
		Username:   username,
		UserID:     int64(id),
		IsAdmin:    boolClaim(payload, "is_admin"),
		IsSupplier: boolClaim(payload, "is_supplier"),
		IsCustomer: boolClaim(payload, "is_customer"),
		ExpiresAt:  int64(exp),
	}, nil
}

func boolClaim(m jwt.MapClaims, key string) bool {
	v, _ := m[key].(bool)
	return v
}
