package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret := []byte("test-secret")
	userID := uuid.New()

	token, err := GenerateToken(secret, userID, "user@example.com", "Test User", "v1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "Test User", claims.Name)
	assert.Equal(t, "v1", claims.TokenVersion)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("right"), uuid.New(), "user@example.com", "Test User", "v1")
	require.NoError(t, err)

	_, err = ValidateToken([]byte("wrong"), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken([]byte("secret"), "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
