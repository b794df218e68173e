package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/taskgate/internal/pkg/logger"
	"github.com/piresc/taskgate/internal/pkg/models"
	"github.com/piresc/taskgate/internal/utils"
	"github.com/piresc/taskgate/services/auth"
)

// AuthHandler handles HTTP requests for login and OTP operations
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth HTTP handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// Login handles the credential check and OTP issuance request
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	resp, err := h.authUC.Login(c.Request().Context(), req.Email, req.Password, c.RealIP())
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			return utils.UnauthorizedResponse(c, "Invalid email or password")
		case errors.Is(err, auth.ErrUpstreamUnavailable):
			return utils.ServiceUnavailableResponse(c, "Sign-in is temporarily unavailable, please try again")
		default:
			logger.Error("Failed to issue OTP",
				logger.String("email", utils.MaskEmail(req.Email)),
				logger.ErrorField(err))
			return utils.InternalServerErrorResponse(c, "Failed to process login")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent", resp)
}

// VerifyOTP handles the one-time code verification request
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if req.SessionID == "" || req.Code == "" {
		return utils.BadRequestResponse(c, "Session ID and code are required")
	}

	resp, err := h.authUC.VerifyOTP(c.Request().Context(), req.SessionID, req.Code, c.RealIP())
	if err != nil {
		// Wrong code, unknown session and expired session all read the
		// same to the client so the response leaks nothing about which.
		switch {
		case errors.Is(err, auth.ErrInvalidOTP),
			errors.Is(err, auth.ErrSessionNotFound),
			errors.Is(err, auth.ErrOTPExpired):
			return utils.UnauthorizedResponse(c, "Invalid or expired code")
		default:
			logger.Error("Failed to verify OTP",
				logger.String("session_id", req.SessionID),
				logger.ErrorField(err))
			return utils.InternalServerErrorResponse(c, "Failed to verify code")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Logout revokes the caller's verified session
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	if err := h.authUC.Logout(c.Request().Context(), userID, c.RealIP()); err != nil {
		logger.Error("Failed to revoke session",
			logger.String("user_id", userID),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to log out")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// RecentEvents returns the caller's recent authentication activity
func (h *AuthHandler) RecentEvents(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	events, err := h.authUC.RecentEvents(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to fetch auth events",
			logger.String("user_id", userID),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to fetch activity")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Recent activity", events)
}
