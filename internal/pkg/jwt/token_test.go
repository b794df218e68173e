package jwt

import (
	"testing"
	"time"

	"github.com/piresc/taskgate/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "taskgate-test",
	}
}

func testUser() *models.UserProfile {
	return &models.UserProfile{
		ID:       "user-123",
		Email:    "a@b.com",
		FullName: "Test User",
	}
}

func TestGenerateToken(t *testing.T) {
	cfg := testJWTConfig()

	token, tokenID, expiresAt, err := GenerateToken(testUser(), cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, tokenID)
	assert.True(t, expiresAt > time.Now().Unix())

	claims, err := ValidateToken(token, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", (*claims)["user_id"])
	assert.Equal(t, "a@b.com", (*claims)["email"])
	assert.Equal(t, "otp", (*claims)["amr"])
	assert.Equal(t, tokenID, (*claims)["jti"])
	assert.Equal(t, cfg.Issuer, (*claims)["iss"])
}

func TestGenerateToken_UniqueTokenIDs(t *testing.T) {
	cfg := testJWTConfig()

	_, first, _, err := GenerateToken(testUser(), cfg)
	require.NoError(t, err)
	_, second, _, err := GenerateToken(testUser(), cfg)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	token, _, _, err := GenerateToken(testUser(), cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "test-secret")
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Expiration = -1

	token, _, _, err := GenerateToken(testUser(), cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg.Secret)
	assert.Error(t, err)
}
