package auth

import (
	"context"
	"time"

	"github.com/piresc/taskgate/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/taskgate/services/auth SessionStore,SessionRegistry,AuditRepo

// SessionStore holds pending OTP sessions. Implementations must key
// exclusively by session id and keep at most one pending session per user:
// Put replaces any earlier pending session for the same user.
type SessionStore interface {
	// Put stores a pending session with a TTL derived from its expiry
	Put(ctx context.Context, session *models.OtpSession) error

	// Get returns the pending session, or nil when absent
	Get(ctx context.Context, sessionID string) (*models.OtpSession, error)

	// Delete removes the session and reports whether it still existed.
	// Concurrent deletes of the same id see true exactly once.
	Delete(ctx context.Context, sessionID string) (bool, error)

	// IncrementAttempts bumps the failed-attempt counter for a session
	// and returns the new count
	IncrementAttempts(ctx context.Context, sessionID string) (int, error)
}

// SessionRegistry tracks the active verified session per user, so logout
// revokes tokens server-side
type SessionRegistry interface {
	SaveSession(ctx context.Context, userID, tokenID string, ttl time.Duration) error
	SessionMatches(ctx context.Context, userID, tokenID string) (bool, error)
	RevokeSession(ctx context.Context, userID string) error
}

// AuditRepo records authentication events for the operational trail
type AuditRepo interface {
	RecordEvent(ctx context.Context, event *models.AuthEvent) error
	EventsByUser(ctx context.Context, userID string, limit int) ([]models.AuthEvent, error)
}
