package auth

import (
	"context"

	"github.com/piresc/taskgate/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/taskgate/services/auth AuthUC

// AuthUC represents the authentication usecase interface
type AuthUC interface {
	// Login checks credentials against the identity collaborator and,
	// on success, issues a pending OTP session
	Login(ctx context.Context, email, password, clientIP string) (*models.OtpPendingResponse, error)

	// VerifyOTP validates a submitted code against the pending session
	// and mints the verified-session token
	VerifyOTP(ctx context.Context, sessionID, code, clientIP string) (*models.AuthResponse, error)

	// Logout revokes the user's active verified session
	Logout(ctx context.Context, userID, clientIP string) error

	// RecentEvents returns the user's latest auth audit entries
	RecentEvents(ctx context.Context, userID string) ([]models.AuthEvent, error)
}
