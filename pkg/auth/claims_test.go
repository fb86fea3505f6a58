package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestInspectToken_ReadsDisplayClaims(t *testing.T) {
	// Arrange
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{
		"sub":   "u1",
		"email": "founder@acme.io",
		"role":  "STARTUP",
		"exp":   exp.Unix(),
	})

	// Act
	claims, err := InspectToken(token)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "founder@acme.io", claims.Email)
	assert.Equal(t, "STARTUP", claims.Role)
	assert.Equal(t, exp.Unix(), claims.ExpiresAt.Unix())
}

func TestInspectToken_RejectsGarbage(t *testing.T) {
	_, err := InspectToken("not-a-token")
	assert.Error(t, err)
}

func TestInspectToken_ExpiredTokenStillDecodes(t *testing.T) {
	// Expiry is a display hint; only a backend 401 ends the session.
	token := signedToken(t, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	claims, err := InspectToken(token)

	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.Before(time.Now()))
}
