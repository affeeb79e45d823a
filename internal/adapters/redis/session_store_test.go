package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
	apperrors "github.com/goldengigs/goldengigs/internal/errors"
	"github.com/goldengigs/goldengigs/internal/testutil"
)

func testSession(id, principalID string) domainauth.ClientSession {
	return domainauth.ClientSession{
		ID:          id,
		PrincipalID: principalID,
		Email:       "user@example.com",
		ExpiresAt:   time.Now().Add(30 * time.Minute),
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()
	store := NewSessionStore(client)
	ctx := context.Background()

	sess := testSession("sess-1", "user-123")
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, sess.PrincipalID, got.PrincipalID)
	assert.Equal(t, sess.Email, got.Email)
	assert.WithinDuration(t, sess.ExpiresAt, got.ExpiresAt, time.Second)
}

func TestSessionStore_GetNonExistent(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()
	store := NewSessionStore(client)

	_, err := store.Get(context.Background(), "missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSessionStore_SaveExpiredRejected(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()
	store := NewSessionStore(client)

	sess := testSession("sess-1", "user-123")
	sess.ExpiresAt = time.Now().Add(-time.Minute)
	err := store.Save(context.Background(), sess)
	assert.True(t, apperrors.IsValidation(err))
}

func TestSessionStore_Delete(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()
	store := NewSessionStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("sess-1", "user-123")))
	require.NoError(t, store.Delete(ctx, "sess-1"))

	_, err := store.Get(ctx, "sess-1")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSessionStore_DeleteByPrincipal(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()
	store := NewSessionStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("sess-1", "user-123")))
	require.NoError(t, store.Save(ctx, testSession("sess-2", "user-123")))
	require.NoError(t, store.Save(ctx, testSession("sess-3", "user-456")))

	require.NoError(t, store.DeleteByPrincipal(ctx, "user-123"))

	_, err := store.Get(ctx, "sess-1")
	assert.True(t, apperrors.IsNotFound(err))
	_, err = store.Get(ctx, "sess-2")
	assert.True(t, apperrors.IsNotFound(err))

	// Other principals are untouched.
	_, err = store.Get(ctx, "sess-3")
	assert.NoError(t, err)
}
