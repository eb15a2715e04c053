package auth_test

import (
	"testing"
	"time"

	"recipeshare-backend/internal/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateAndValidateJWT tests the token round trip
func TestGenerateAndValidateJWT(t *testing.T) {
	authService := auth.NewAuthService("test-secret", time.Hour)
	userID := uuid.New()

	token, err := authService.GenerateJWT(userID, "alice", "alice@test.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := authService.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@test.com", claims.Email)
	assert.Equal(t, "recipeshare-backend", claims.Issuer)
	assert.Equal(t, userID.String(), claims.Subject)
}

// TestValidateJWTWrongSecret tests that a token signed elsewhere is rejected
func TestValidateJWTWrongSecret(t *testing.T) {
	issuer := auth.NewAuthService("one-secret", time.Hour)
	verifier := auth.NewAuthService("another-secret", time.Hour)

	token, err := issuer.GenerateJWT(uuid.New(), "alice", "alice@test.com")
	require.NoError(t, err)

	claims, err := verifier.ValidateJWT(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

// TestValidateJWTExpired tests that an expired token is rejected
func TestValidateJWTExpired(t *testing.T) {
	authService := auth.NewAuthService("test-secret", -time.Minute)

	token, err := authService.GenerateJWT(uuid.New(), "alice", "alice@test.com")
	require.NoError(t, err)

	claims, err := authService.ValidateJWT(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

// TestValidateJWTGarbage tests that a malformed token is rejected
func TestValidateJWTGarbage(t *testing.T) {
	authService := auth.NewAuthService("test-secret", time.Hour)

	claims, err := authService.ValidateJWT("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
