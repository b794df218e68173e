package repository

import (
	"context"
	"sync"
	"time"

	"github.com/piresc/taskgate/internal/pkg/models"
)

// MemoryAuthStore is an in-process SessionStore and SessionRegistry for
// tests and single-instance deployments. Expiry is lazy: expired entries
// are dropped on read, no sweeper is required for correctness.
type MemoryAuthStore struct {
	mu           sync.Mutex
	sessions     map[string]*models.OtpSession
	userSessions map[string]string // user id -> pending otp session id
	active       map[string]activeSession
}

type activeSession struct {
	tokenID   string
	expiresAt time.Time
}

// NewMemoryAuthStore creates a new in-memory auth store
func NewMemoryAuthStore() *MemoryAuthStore {
	return &MemoryAuthStore{
		sessions:     make(map[string]*models.OtpSession),
		userSessions: make(map[string]string),
		active:       make(map[string]activeSession),
	}
}

// Put stores a pending session, replacing any earlier pending session for
// the same user
func (s *MemoryAuthStore) Put(ctx context.Context, session *models.OtpSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.userSessions[session.User.ID]; ok {
		delete(s.sessions, prev)
	}

	copied := *session
	s.sessions[session.SessionID] = &copied
	s.userSessions[session.User.ID] = session.SessionID
	return nil
}

// Get returns the pending session, or nil when absent or already expired.
// Expired entries are purged here, mirroring the Redis backend where the
// native TTL makes them vanish before the read.
func (s *MemoryAuthStore) Get(ctx context.Context, sessionID string) (*models.OtpSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}

	if !time.Now().Before(session.ExpiresAt) {
		delete(s.sessions, sessionID)
		if s.userSessions[session.User.ID] == sessionID {
			delete(s.userSessions, session.User.ID)
		}
		return nil, nil
	}

	copied := *session
	return &copied, nil
}

// Delete removes the session and reports whether it still existed
func (s *MemoryAuthStore) Delete(ctx context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return false, nil
	}

	delete(s.sessions, sessionID)
	if s.userSessions[session.User.ID] == sessionID {
		delete(s.userSessions, session.User.ID)
	}
	return true, nil
}

// IncrementAttempts bumps the failed-attempt counter for a session
func (s *MemoryAuthStore) IncrementAttempts(ctx context.Context, sessionID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return 0, nil
	}

	session.Attempts++
	return session.Attempts, nil
}

// SaveSession registers the active verified session for a user
func (s *MemoryAuthStore) SaveSession(ctx context.Context, userID, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active[userID] = activeSession{
		tokenID:   tokenID,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// SessionMatches reports whether the token id is still the active session
func (s *MemoryAuthStore) SessionMatches(ctx context.Context, userID, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.active[userID]
	if !ok {
		return false, nil
	}
	if time.Now().After(session.expiresAt) {
		delete(s.active, userID)
		return false, nil
	}
	return session.tokenID == tokenID, nil
}

// RevokeSession drops the active session for a user
func (s *MemoryAuthStore) RevokeSession(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.active, userID)
	return nil
}
