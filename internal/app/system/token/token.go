// internal/app/system/token/token.go

// Package token issues and verifies the signed session tokens presented by
// the admin client as Bearer credentials.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long a session token stays valid.
const DefaultTTL = 7 * 24 * time.Hour

// ErrInvalidToken is returned for any verification failure: bad signature,
// malformed token, wrong signing method, or expiry. Callers must not
// distinguish these at the API boundary.
var ErrInvalidToken = errors.New("invalid or expired token")

// Principal is the identity carried inside a session token.
type Principal struct {
	AdminID string
	Email   string
}

// Issuer signs and verifies session JWTs with a fixed HS256 secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// New creates an Issuer. The secret must be non-empty; config validation
// rejects a missing secret before the server starts, so this is not
// re-checked per request. A zero ttl falls back to DefaultTTL.
func New(secret string, ttl time.Duration) *Issuer {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

type sessionClaims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// Issue creates a signed session token for the given admin.
func (i *Issuer) Issue(adminID, email string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		AdminID: adminID,
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			Issuer:    "treadhub",
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(i.secret)
}

// Verify parses and validates a session token, returning its principal.
func (i *Issuer) Verify(tokenStr string) (*Principal, error) {
	claims := &sessionClaims{}

	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	return &Principal{AdminID: claims.AdminID, Email: claims.Email}, nil
}
