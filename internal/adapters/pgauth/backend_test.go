package pgauth

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
	apperrors "github.com/goldengigs/goldengigs/internal/errors"
	mockbackend "github.com/goldengigs/goldengigs/internal/mocks/backend"
	"github.com/goldengigs/goldengigs/internal/ports"
	"github.com/goldengigs/goldengigs/internal/testutil"
)

func newTestBackend(db *sql.DB) (*Backend, *mockbackend.MemoryEventBus) {
	bus := mockbackend.NewMemoryEventBus()
	b := NewBackend(Options{
		DB:       db,
		Sessions: mockbackend.NewMemorySessionStore(),
		Bus:      bus,
		Logger:   slog.New(slog.DiscardHandler),
	})
	return b, bus
}

func TestBackend_SignUpAndSignIn(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		b, _ := newTestBackend(db)

		principal, err := b.SignUp(ctx, ports.SignUpInput{
			Email:    "Alice@Example.com",
			Password: "pw12345678",
			Role:     domainauth.RoleJobSeeker,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, principal.ID)
		assert.Equal(t, "alice@example.com", principal.Email)

		sess, err := b.SignInWithPassword(ctx, "alice@example.com", "pw12345678")
		require.NoError(t, err)
		assert.Equal(t, principal.ID, sess.PrincipalID)
		assert.True(t, sess.ExpiresAt.After(time.Now()))

		got, err := b.GetSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, sess.ID, got.ID)
	})
}

func TestBackend_SignUpDuplicateEmail(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		b, _ := newTestBackend(db)

		_, err := b.SignUp(ctx, ports.SignUpInput{
			Email: "alice@example.com", Password: "pw12345678", Role: domainauth.RoleJobSeeker,
		})
		require.NoError(t, err)

		_, err = b.SignUp(ctx, ports.SignUpInput{
			Email: "ALICE@example.com", Password: "otherpassword", Role: domainauth.RoleEmployer,
		})
		assert.True(t, apperrors.IsDuplicateAccount(err))
	})
}

func TestBackend_SignUpValidation(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		b, _ := newTestBackend(db)

		_, err := b.SignUp(ctx, ports.SignUpInput{
			Email: "alice@example.com", Password: "short", Role: domainauth.RoleJobSeeker,
		})
		assert.True(t, apperrors.IsValidation(err))
		assert.Equal(t, "password", apperrors.GetField(err))

		_, err = b.SignUp(ctx, ports.SignUpInput{
			Email: "", Password: "pw12345678", Role: domainauth.RoleJobSeeker,
		})
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestBackend_SignInBadCredentials(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		b, _ := newTestBackend(db)

		_, err := b.SignUp(ctx, ports.SignUpInput{
			Email: "alice@example.com", Password: "pw12345678", Role: domainauth.RoleJobSeeker,
		})
		require.NoError(t, err)

		_, err = b.SignInWithPassword(ctx, "alice@example.com", "wrongpassword")
		assert.True(t, apperrors.IsAuthentication(err))

		_, err = b.SignInWithPassword(ctx, "nobody@example.com", "pw12345678")
		assert.True(t, apperrors.IsAuthentication(err))
	})
}

func TestBackend_SignOutPublishesEvent(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		b, bus := newTestBackend(db)

		principal, err := b.SignUp(ctx, ports.SignUpInput{
			Email: "alice@example.com", Password: "pw12345678", Role: domainauth.RoleJobSeeker,
		})
		require.NoError(t, err)
		sess, err := b.SignInWithPassword(ctx, "alice@example.com", "pw12345678")
		require.NoError(t, err)

		sub, err := bus.Subscribe(ctx, principal.ID)
		require.NoError(t, err)
		defer sub.Unsubscribe()

		require.NoError(t, b.SignOut(ctx, sess.ID))

		select {
		case ev := <-sub.Events():
			assert.Equal(t, domainauth.EventSignedOut, ev.Type)
		case <-time.After(time.Second):
			t.Fatal("expected a signed-out event")
		}

		_, err = b.GetSession(ctx, sess.ID)
		assert.True(t, apperrors.IsNotFound(err))

		// Signing out an already-dead session is a no-op.
		assert.NoError(t, b.SignOut(ctx, sess.ID))
	})
}

func TestBackend_SignOutEverywhere(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		b, _ := newTestBackend(db)

		principal, err := b.SignUp(ctx, ports.SignUpInput{
			Email: "alice@example.com", Password: "pw12345678", Role: domainauth.RoleJobSeeker,
		})
		require.NoError(t, err)

		first, err := b.SignInWithPassword(ctx, "alice@example.com", "pw12345678")
		require.NoError(t, err)
		second, err := b.SignInWithPassword(ctx, "alice@example.com", "pw12345678")
		require.NoError(t, err)

		require.NoError(t, b.SignOutEverywhere(ctx, principal.ID))

		_, err = b.GetSession(ctx, first.ID)
		assert.True(t, apperrors.IsNotFound(err))
		_, err = b.GetSession(ctx, second.ID)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestBackend_SignUpRateLimited(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		bus := mockbackend.NewMemoryEventBus()
		b := NewBackend(Options{
			DB:       db,
			Sessions: mockbackend.NewMemorySessionStore(),
			Bus:      bus,
			Limiter:  denyAllLimiter{},
			Logger:   slog.New(slog.DiscardHandler),
		})

		_, err := b.SignUp(ctx, ports.SignUpInput{
			Email: "alice@example.com", Password: "pw12345678", Role: domainauth.RoleJobSeeker,
		})
		assert.True(t, apperrors.IsRateLimited(err))
	})
}

type denyAllLimiter struct{}

func (denyAllLimiter) Allow(context.Context, string) (bool, error) { return false, nil }
