package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/taskgate/internal/pkg/jwt"
	"github.com/piresc/taskgate/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionVerifier struct {
	active bool
	err    error
	calls  int
}

func (f *fakeSessionVerifier) SessionMatches(ctx context.Context, userID, tokenID string) (bool, error) {
	f.calls++
	return f.active, f.err
}

func gateTestConfig() models.JWTConfig {
	return models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "taskgate-test"}
}

func runGate(t *testing.T, authHeader string, sessions SessionVerifier) (*httptest.ResponseRecorder, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	handler := SessionGateMiddleware(gateTestConfig(), sessions)(func(c echo.Context) error {
		nextCalled = true
		return c.String(http.StatusOK, "ok")
	})

	err := handler(c)
	require.NoError(t, err)
	return rec, nextCalled
}

func TestSessionGate_MissingHeader(t *testing.T) {
	rec, nextCalled := runGate(t, "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// The protected handler must never run for unverified requests
	assert.False(t, nextCalled)
}

func TestSessionGate_MalformedHeader(t *testing.T) {
	rec, nextCalled := runGate(t, "Basic abcdef", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestSessionGate_InvalidToken(t *testing.T) {
	rec, nextCalled := runGate(t, "Bearer not-a-token", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestSessionGate_TokenWithoutOtpMarker(t *testing.T) {
	// Token signed with the right secret but missing the amr claim:
	// the credential factor alone must not open the gate
	claims := jwt.MapClaims{
		"user_id": "user-123",
		"jti":     "token-1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	rec, nextCalled := runGate(t, "Bearer "+tokenString, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestSessionGate_RevokedSession(t *testing.T) {
	user := &models.UserProfile{ID: "user-123", Email: "a@b.com", FullName: "Test"}
	token, _, _, err := jwtpkg.GenerateToken(user, gateTestConfig())
	require.NoError(t, err)

	sessions := &fakeSessionVerifier{active: false}
	rec, nextCalled := runGate(t, "Bearer "+token, sessions)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
	assert.Equal(t, 1, sessions.calls)
}

func TestSessionGate_VerifiedSessionPasses(t *testing.T) {
	user := &models.UserProfile{ID: "user-123", Email: "a@b.com", FullName: "Test"}
	token, _, _, err := jwtpkg.GenerateToken(user, gateTestConfig())
	require.NoError(t, err)

	sessions := &fakeSessionVerifier{active: true}
	rec, nextCalled := runGate(t, "Bearer "+token, sessions)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, nextCalled)
}
