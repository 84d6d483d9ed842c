package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of access-token claims the client reads for
// display and expiry hints. The token is decoded without verification:
// the backend is the verifier, the client only peeks.
type Claims struct {
	Subject   string
	Username  string
	ExpiresAt time.Time
}

type tokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// ParseClaims decodes the access token's claims without verifying the
// signature.
func ParseClaims(token string) (*Claims, error) {
	var tc tokenClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &tc); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}

	c := &Claims{
		Subject:  tc.Subject,
		Username: tc.Username,
	}
	if tc.ExpiresAt != nil {
		c.ExpiresAt = tc.ExpiresAt.Time
	}
	return c, nil
}

// ExpiresWithin reports whether the token expires inside d. Tokens
// without an exp claim never report as expiring.
func (c *Claims) ExpiresWithin(d time.Duration) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return time.Until(c.ExpiresAt) < d
}
