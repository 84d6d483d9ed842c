package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, username string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":      "user-42",
		"username": username,
	}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestParseClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	c, err := ParseClaims(signedToken(t, "asha", exp))
	require.NoError(t, err)

	assert.Equal(t, "user-42", c.Subject)
	assert.Equal(t, "asha", c.Username)
	assert.True(t, c.ExpiresAt.Equal(exp), "expiry: got %v, want %v", c.ExpiresAt, exp)
}

func TestParseClaimsRejectsGarbage(t *testing.T) {
	_, err := ParseClaims("not-a-token")
	assert.Error(t, err)
}

func TestExpiresWithin(t *testing.T) {
	soon, err := ParseClaims(signedToken(t, "asha", time.Now().Add(10*time.Minute)))
	require.NoError(t, err)
	assert.True(t, soon.ExpiresWithin(30*time.Minute))
	assert.False(t, soon.ExpiresWithin(time.Minute))

	noExp, err := ParseClaims(signedToken(t, "asha", time.Time{}))
	require.NoError(t, err)
	assert.False(t, noExp.ExpiresWithin(24*time.Hour), "token without exp must never report as expiring")
}
