package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/piresc/taskgate/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingSession(sessionID, userID string) *models.OtpSession {
	now := time.Now()
	return &models.OtpSession{
		SessionID: sessionID,
		Code:      "004821",
		User:      models.UserProfile{ID: userID, Email: "a@b.com", FullName: "Test User"},
		IssuedAt:  now,
		ExpiresAt: now.Add(120 * time.Second),
	}
}

func TestMemoryStore_PutGet(t *testing.T) {
	store := NewMemoryAuthStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, pendingSession("s-1", "u-1")))

	session, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "004821", session.Code)
	assert.Equal(t, "u-1", session.User.ID)

	missing, err := store.Get(ctx, "s-404")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryStore_GetDropsExpiredSession(t *testing.T) {
	store := NewMemoryAuthStore()
	ctx := context.Background()

	expired := pendingSession("s-1", "u-1")
	expired.ExpiresAt = time.Now().Add(-time.Second)
	require.NoError(t, store.Put(ctx, expired))

	session, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Nil(t, session)

	// The entry is gone, not just hidden: a fresh session for the same
	// user is unaffected by the stale index
	require.NoError(t, store.Put(ctx, pendingSession("s-2", "u-1")))
	existed, err := store.Delete(ctx, "s-1")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestMemoryStore_PutReplacesPendingSessionForUser(t *testing.T) {
	store := NewMemoryAuthStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, pendingSession("s-1", "u-1")))
	require.NoError(t, store.Put(ctx, pendingSession("s-2", "u-1")))

	old, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Nil(t, old)

	current, err := store.Get(ctx, "s-2")
	require.NoError(t, err)
	assert.NotNil(t, current)
}

func TestMemoryStore_DeleteIsSingleWinner(t *testing.T) {
	store := NewMemoryAuthStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, pendingSession("s-1", "u-1")))

	const goroutines = 32
	var wins int64
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := store.Delete(ctx, "s-1")
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), wins)
}

func TestMemoryStore_IncrementAttempts(t *testing.T) {
	store := NewMemoryAuthStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, pendingSession("s-1", "u-1")))

	n, err := store.IncrementAttempts(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = store.IncrementAttempts(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	session, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, 2, session.Attempts)
}

func TestMemoryStore_SessionRegistry(t *testing.T) {
	store := NewMemoryAuthStore()
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, "u-1", "token-1", time.Minute))

	ok, err := store.SessionMatches(ctx, "u-1", "token-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.SessionMatches(ctx, "u-1", "token-2")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.RevokeSession(ctx, "u-1"))

	ok, err = store.SessionMatches(ctx, "u-1", "token-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_ExpiredRegistryEntry(t *testing.T) {
	store := NewMemoryAuthStore()
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, "u-1", "token-1", -time.Second))

	ok, err := store.SessionMatches(ctx, "u-1", "token-1")
	require.NoError(t, err)
	assert.False(t, ok)
}
