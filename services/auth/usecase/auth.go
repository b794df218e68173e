package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/google/uuid"
	jwtpkg "github.com/piresc/taskgate/internal/pkg/jwt"
	"github.com/piresc/taskgate/internal/pkg/logger"
	"github.com/piresc/taskgate/internal/pkg/models"
	"github.com/piresc/taskgate/internal/utils"
	"github.com/piresc/taskgate/services/auth"
)

// Login verifies credentials against the identity collaborator and issues
// a pending OTP session. Only the opaque session id is returned; the code
// goes out through the delivery gateway.
func (u *AuthUC) Login(ctx context.Context, email, password, clientIP string) (*models.OtpPendingResponse, error) {
	if !utils.IsValidEmail(email) {
		return nil, auth.ErrInvalidCredentials
	}
	if password == "" {
		return nil, auth.ErrInvalidCredentials
	}

	user, err := u.identityGW.VerifyCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}

	code, err := generateOTPCode()
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(u.cfg.OTP.TTLSeconds) * time.Second
	now := time.Now()
	session := &models.OtpSession{
		SessionID: uuid.New().String(),
		Code:      code,
		User:      *user,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}

	if err := u.sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store otp session: %w", err)
	}

	if err := u.deliveryGW.SendOTP(ctx, user, code, ttl); err != nil {
		// The session is already stored; a delivery hiccup should not
		// force the user back to the password step
		logger.Error("Failed to deliver OTP",
			logger.String("email", utils.MaskEmail(email)),
			logger.Err(err))
	}

	u.recordEvent(ctx, user, models.AuthEventOtpIssued, clientIP)

	logger.Info("Issued OTP session",
		logger.String("email", utils.MaskEmail(email)),
		logger.String("otp_session_id", session.SessionID))

	return &models.OtpPendingResponse{SessionID: session.SessionID}, nil
}

// VerifyOTP validates a submitted code against the pending session. A code
// is single-use: the first matching submission consumes the session, any
// later one sees ErrSessionNotFound.
func (u *AuthUC) VerifyOTP(ctx context.Context, sessionID, code, clientIP string) (*models.AuthResponse, error) {
	session, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load otp session: %w", err)
	}
	if session == nil {
		return nil, auth.ErrSessionNotFound
	}

	if !time.Now().Before(session.ExpiresAt) {
		if _, err := u.sessions.Delete(ctx, sessionID); err != nil {
			logger.Warn("Failed to purge expired otp session",
				logger.String("otp_session_id", sessionID),
				logger.Err(err))
		}
		return nil, auth.ErrOTPExpired
	}

	// Full fixed-length string comparison; a numeric compare would drop
	// leading zeros
	if subtle.ConstantTimeCompare([]byte(session.Code), []byte(code)) != 1 {
		attempts, err := u.sessions.IncrementAttempts(ctx, sessionID)
		if err != nil {
			logger.Warn("Failed to count otp attempt",
				logger.String("otp_session_id", sessionID),
				logger.Err(err))
		}
		if attempts >= u.cfg.OTP.MaxAttempts {
			if _, err := u.sessions.Delete(ctx, sessionID); err != nil {
				logger.Warn("Failed to purge otp session after max attempts",
					logger.String("otp_session_id", sessionID),
					logger.Err(err))
			}
		}
		u.recordEvent(ctx, &session.User, models.AuthEventOtpFailed, clientIP)
		logger.Warn("OTP verification failed",
			logger.String("email", utils.MaskEmail(session.User.Email)),
			logger.String("otp_session_id", sessionID),
			logger.Int("attempts", attempts))
		return nil, auth.ErrInvalidOTP
	}

	// Consume the session. Exactly one concurrent submission wins the
	// delete; the rest observe an absent session.
	consumed, err := u.sessions.Delete(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to consume otp session: %w", err)
	}
	if !consumed {
		return nil, auth.ErrSessionNotFound
	}

	token, tokenID, expiresAt, err := jwtpkg.GenerateToken(&session.User, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := u.registry.SaveSession(ctx, session.User.ID, tokenID, time.Until(time.Unix(expiresAt, 0))); err != nil {
		return nil, fmt.Errorf("failed to register session: %w", err)
	}

	u.recordEvent(ctx, &session.User, models.AuthEventOtpVerified, clientIP)

	logger.Info("OTP verified",
		logger.String("email", utils.MaskEmail(session.User.Email)),
		logger.String("user_id", session.User.ID))

	return &models.AuthResponse{
		Token:     token,
		User:      session.User,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout revokes the active verified session for a user
func (u *AuthUC) Logout(ctx context.Context, userID, clientIP string) error {
	if err := u.registry.RevokeSession(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	u.recordEvent(ctx, &models.UserProfile{ID: userID}, models.AuthEventLogout, clientIP)

	logger.Info("Session revoked", logger.String("user_id", userID))
	return nil
}

// RecentEvents returns the user's latest auth audit entries, newest first
func (u *AuthUC) RecentEvents(ctx context.Context, userID string) ([]models.AuthEvent, error) {
	events, err := u.auditRepo.EventsByUser(ctx, userID, 20)
	if err != nil {
		return nil, fmt.Errorf("failed to load auth events: %w", err)
	}
	return events, nil
}

// recordEvent appends to the audit trail; failures are logged, never
// surfaced to the login flow
func (u *AuthUC) recordEvent(ctx context.Context, user *models.UserProfile, kind, clientIP string) {
	event := &models.AuthEvent{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Email:     user.Email,
		Kind:      kind,
		ClientIP:  clientIP,
		CreatedAt: time.Now(),
	}

	if err := u.auditRepo.RecordEvent(ctx, event); err != nil {
		logger.Warn("Failed to record auth event",
			logger.String("kind", kind),
			logger.String("user_id", user.ID),
			logger.Err(err))
	}
}
