package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/taskgate/internal/pkg/models"
	"github.com/piresc/taskgate/services/auth"
	"github.com/piresc/taskgate/services/auth/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest(t *testing.T, method, target, body string) (*AuthHandler, *mocks.MockAuthUC, echo.Context, *httptest.ResponseRecorder) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return handler, mockUC, c, rec
}

func TestLogin_Success(t *testing.T) {
	body := `{"email": "alice@example.com", "password": "secret1"}`
	handler, mockUC, c, rec := setupHandlerTest(t, http.MethodPost, "/auth/login", body)

	mockUC.EXPECT().
		Login(gomock.Any(), "alice@example.com", "secret1", gomock.Any()).
		Return(&models.OtpPendingResponse{SessionID: "sess-1"}, nil)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "sess-1", data["otp_session_id"])
	// The code never appears in the login response
	assert.NotContains(t, rec.Body.String(), "code")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	body := `{"email": "alice@example.com", "password": "wrong"}`
	handler, mockUC, c, rec := setupHandlerTest(t, http.MethodPost, "/auth/login", body)

	mockUC.EXPECT().
		Login(gomock.Any(), "alice@example.com", "wrong", gomock.Any()).
		Return(nil, auth.ErrInvalidCredentials)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_UpstreamUnavailable(t *testing.T) {
	body := `{"email": "alice@example.com", "password": "secret1"}`
	handler, mockUC, c, rec := setupHandlerTest(t, http.MethodPost, "/auth/login", body)

	mockUC.EXPECT().
		Login(gomock.Any(), "alice@example.com", "secret1", gomock.Any()).
		Return(nil, auth.ErrUpstreamUnavailable)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLogin_MissingFields(t *testing.T) {
	body := `{"email": "alice@example.com"}`
	handler, _, c, rec := setupHandlerTest(t, http.MethodPost, "/auth/login", body)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyOTP_Success(t *testing.T) {
	body := `{"otp_session_id": "sess-1", "code": "004821"}`
	handler, mockUC, c, rec := setupHandlerTest(t, http.MethodPost, "/auth/otp/verify", body)

	mockUC.EXPECT().
		VerifyOTP(gomock.Any(), "sess-1", "004821", gomock.Any()).
		Return(&models.AuthResponse{
			Token:     "signed.jwt.token",
			User:      models.UserProfile{ID: "user-1", Email: "alice@example.com"},
			ExpiresAt: 1700000000,
		}, nil)

	require.NoError(t, handler.VerifyOTP(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "signed.jwt.token", data["token"])
}

func TestVerifyOTP_IndistinguishableFailures(t *testing.T) {
	// Wrong code, unknown session and expired session must return the
	// same status and message
	cases := []struct {
		name string
		err  error
	}{
		{"wrong code", auth.ErrInvalidOTP},
		{"unknown session", auth.ErrSessionNotFound},
		{"expired session", auth.ErrOTPExpired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := `{"otp_session_id": "sess-1", "code": "999999"}`
			handler, mockUC, c, rec := setupHandlerTest(t, http.MethodPost, "/auth/otp/verify", body)

			mockUC.EXPECT().
				VerifyOTP(gomock.Any(), "sess-1", "999999", gomock.Any()).
				Return(nil, tc.err)

			require.NoError(t, handler.VerifyOTP(c))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, "Invalid or expired code", response["error"])
		})
	}
}

func TestVerifyOTP_MissingFields(t *testing.T) {
	body := `{"otp_session_id": "sess-1"}`
	handler, _, c, rec := setupHandlerTest(t, http.MethodPost, "/auth/otp/verify", body)

	require.NoError(t, handler.VerifyOTP(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogout_Success(t *testing.T) {
	handler, mockUC, c, rec := setupHandlerTest(t, http.MethodPost, "/auth/logout", "")
	c.Set("user_id", "user-1")

	mockUC.EXPECT().
		Logout(gomock.Any(), "user-1", gomock.Any()).
		Return(nil)

	require.NoError(t, handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogout_NoUserInContext(t *testing.T) {
	handler, _, c, rec := setupHandlerTest(t, http.MethodPost, "/auth/logout", "")

	require.NoError(t, handler.Logout(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRecentEvents_Success(t *testing.T) {
	handler, mockUC, c, rec := setupHandlerTest(t, http.MethodGet, "/auth/events", "")
	c.Set("user_id", "user-1")

	mockUC.EXPECT().
		RecentEvents(gomock.Any(), "user-1").
		Return([]models.AuthEvent{
			{ID: "e1", UserID: "user-1", Kind: models.AuthEventOtpVerified},
		}, nil)

	require.NoError(t, handler.RecentEvents(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "otp_verified")
}
