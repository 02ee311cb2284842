package auth

import (
	"testing"

	"barangay-backend/internal/config"
	"barangay-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret, expiry string) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.Expiry = expiry
	return cfg
}

func TestGenerateAndVerifyToken(t *testing.T) {
	manager := NewJWTManager(testConfig("test-secret", "1h"))
	user := &models.User{
		ID:    uuid.New(),
		Email: "resident@barangay.local",
		Name:  "Juan Dela Cruz",
		Role:  "resident",
	}

	token, err := manager.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Name, claims.Name)
	assert.Equal(t, user.Role, claims.Role)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	manager := NewJWTManager(testConfig("secret-a", "1h"))
	other := NewJWTManager(testConfig("secret-b", "1h"))
	user := &models.User{ID: uuid.New(), Email: "x@y.z", Role: "staff"}

	token, err := manager.GenerateToken(user)
	require.NoError(t, err)

	_, err = other.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenGarbage(t *testing.T) {
	manager := NewJWTManager(testConfig("test-secret", "1h"))

	_, err := manager.VerifyToken("not.a.token")
	assert.Error(t, err)
}

func TestNewJWTManagerBadExpiryFallsBack(t *testing.T) {
	manager := NewJWTManager(testConfig("test-secret", "soon"))
	user := &models.User{ID: uuid.New(), Role: "admin"}

	token, err := manager.GenerateToken(user)
	require.NoError(t, err)

	_, err = manager.VerifyToken(token)
	assert.NoError(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPassword("password123", hash))
	assert.False(t, CheckPassword("wrong-password", hash))
}
