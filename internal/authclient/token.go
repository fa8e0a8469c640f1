package authclient

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the part of the session token the storefront reads.
type Claims struct {
	jwt.RegisteredClaims
}

// DecodeToken reads the token payload without verifying the signature;
// the storefront treats the token as an opaque claim issued by the gateway.
// The header segment must also be valid base64url JSON, so a token with a
// malformed header counts as no session even if its payload is fine.
// It returns nil for anything that does not decode.
func DecodeToken(token string) *Claims {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	return claims
}

// ValidAt reports whether the token carries an expiry later than now.
func (c *Claims) ValidAt(now time.Time) bool {
	if c == nil || c.ExpiresAt == nil {
		return false
	}
	return c.ExpiresAt.After(now)
}
