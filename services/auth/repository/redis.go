package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/taskgate/internal/pkg/constants"
	"github.com/piresc/taskgate/internal/pkg/database"
	"github.com/piresc/taskgate/internal/pkg/models"
)

// RedisAuthStore is the production SessionStore and SessionRegistry.
// Pending sessions live under their own keys with a native TTL, so Redis
// reclaims expired entries without a sweeper; every lookup still checks
// expiry itself and never depends on it.
type RedisAuthStore struct {
	redisClient *database.RedisClient
}

// NewRedisAuthStore creates a new Redis-backed auth store
func NewRedisAuthStore(redisClient *database.RedisClient) *RedisAuthStore {
	return &RedisAuthStore{redisClient: redisClient}
}

// Put stores a pending session with the TTL derived from its expiry and
// replaces any earlier pending session for the same user
func (s *RedisAuthStore) Put(ctx context.Context, session *models.OtpSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal otp session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("otp session already expired")
	}

	indexKey := fmt.Sprintf(constants.KeyOtpUserIndex, session.User.ID)

	// Single pending session per user: drop the previous one first
	prev, err := s.redisClient.Get(ctx, indexKey)
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to read otp user index: %w", err)
	}
	if prev != "" {
		if _, err := s.redisClient.Delete(ctx,
			fmt.Sprintf(constants.KeyOtpSession, prev),
			fmt.Sprintf(constants.KeyOtpAttempts, prev)); err != nil {
			return fmt.Errorf("failed to invalidate previous otp session: %w", err)
		}
	}

	key := fmt.Sprintf(constants.KeyOtpSession, session.SessionID)
	if err := s.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to store otp session in redis: %w", err)
	}
	if err := s.redisClient.Set(ctx, indexKey, session.SessionID, ttl); err != nil {
		return fmt.Errorf("failed to store otp user index: %w", err)
	}

	return nil
}

// Get returns the pending session, or nil when absent. Redis drops expired
// keys on its own, which lookups observe as absence.
func (s *RedisAuthStore) Get(ctx context.Context, sessionID string) (*models.OtpSession, error) {
	key := fmt.Sprintf(constants.KeyOtpSession, sessionID)

	data, err := s.redisClient.Get(ctx, key)
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get otp session from redis: %w", err)
	}

	var session models.OtpSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal otp session: %w", err)
	}

	return &session, nil
}

// Delete removes the session and reports whether it still existed. DEL's
// removed-count makes consumption atomic: concurrent deletes of the same
// id see true exactly once.
func (s *RedisAuthStore) Delete(ctx context.Context, sessionID string) (bool, error) {
	key := fmt.Sprintf(constants.KeyOtpSession, sessionID)

	removed, err := s.redisClient.Delete(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to delete otp session from redis: %w", err)
	}

	// The attempt counter rides along; its absence is fine
	_, _ = s.redisClient.Delete(ctx, fmt.Sprintf(constants.KeyOtpAttempts, sessionID))

	return removed > 0, nil
}

// IncrementAttempts bumps the failed-attempt counter, expiring alongside
// the session itself
func (s *RedisAuthStore) IncrementAttempts(ctx context.Context, sessionID string) (int, error) {
	key := fmt.Sprintf(constants.KeyOtpAttempts, sessionID)

	count, err := s.redisClient.Incr(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("failed to increment otp attempts: %w", err)
	}
	if count == 1 {
		sessionKey := fmt.Sprintf(constants.KeyOtpSession, sessionID)
		ttl, err := s.redisClient.Client.TTL(ctx, sessionKey).Result()
		if err != nil || ttl <= 0 {
			ttl = 2 * time.Minute
		}
		if err := s.redisClient.Expire(ctx, key, ttl); err != nil {
			return int(count), fmt.Errorf("failed to expire otp attempts counter: %w", err)
		}
	}

	return int(count), nil
}

// SaveSession registers the active verified session for a user
func (s *RedisAuthStore) SaveSession(ctx context.Context, userID, tokenID string, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyUserSession, userID)
	if err := s.redisClient.Set(ctx, key, tokenID, ttl); err != nil {
		return fmt.Errorf("failed to store user session in redis: %w", err)
	}
	return nil
}

// SessionMatches reports whether the token id is still the active session
func (s *RedisAuthStore) SessionMatches(ctx context.Context, userID, tokenID string) (bool, error) {
	key := fmt.Sprintf(constants.KeyUserSession, userID)

	current, err := s.redisClient.Get(ctx, key)
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get user session from redis: %w", err)
	}

	return current == tokenID, nil
}

// RevokeSession drops the active session for a user
func (s *RedisAuthStore) RevokeSession(ctx context.Context, userID string) error {
	key := fmt.Sprintf(constants.KeyUserSession, userID)
	if _, err := s.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to revoke user session in redis: %w", err)
	}
	return nil
}
