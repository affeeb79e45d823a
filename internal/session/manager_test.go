package session

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
	apperrors "github.com/goldengigs/goldengigs/internal/errors"
)

func newTestManager(env *testEnv) *Manager {
	return NewManager(ManagerOptions{
		Backend:  env.backend,
		Users:    env.users,
		Profiles: env.profiles,
		Bus:      env.bus,
		Logger:   slog.New(slog.DiscardHandler),
	})
}

func TestManager_SignIn_RetainsController(t *testing.T) {
	env := newTestEnv()
	env.seedJobSeeker("alice@example.com", "pw12345678")
	m := newTestManager(env)

	ctrl, principal, err := m.SignIn(context.Background(), "alice@example.com", "pw12345678")
	require.NoError(t, err)
	require.NotNil(t, principal)

	// Attach with the same session token returns the same controller.
	again, err := m.Attach(context.Background(), ctrl.SessionID())
	require.NoError(t, err)
	assert.Same(t, ctrl, again)
}

func TestManager_Attach_ConcurrentBootstrapKeepsOneController(t *testing.T) {
	env := newTestEnv()
	env.seedJobSeeker("alice@example.com", "pw12345678")
	sess, err := env.backend.SignInWithPassword(context.Background(), "alice@example.com", "pw12345678")
	require.NoError(t, err)
	m := newTestManager(env)

	// Two attaches race on an unseen token: both miss the registry and
	// bootstrap their own controller before either retains.
	first := m.newController(sess.ID)
	require.NoError(t, first.Bootstrap(context.Background()))
	second := m.newController(sess.ID)
	require.NoError(t, second.Bootstrap(context.Background()))

	require.Same(t, first, m.retain(first))

	// The loser is closed, not leaked, and the winner stays indexed.
	assert.Same(t, first, m.retain(second))
	assert.True(t, second.closed)

	again, err := m.Attach(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Same(t, first, again)

	first.Close()
}

func TestManager_SignIn_BadCredentialsNotRetained(t *testing.T) {
	env := newTestEnv()
	m := newTestManager(env)

	ctrl, principal, err := m.SignIn(context.Background(), "ghost@example.com", "nope")
	assert.True(t, apperrors.IsAuthentication(err))
	assert.Nil(t, ctrl)
	assert.Nil(t, principal)
}

func TestManager_Attach_BootstrapsFromToken(t *testing.T) {
	env := newTestEnv()
	id := env.seedEmployer("boss@acme.test", "hunter22222")
	sess, err := env.backend.SignInWithPassword(context.Background(), "boss@acme.test", "hunter22222")
	require.NoError(t, err)
	m := newTestManager(env)

	ctrl, err := m.Attach(context.Background(), sess.ID)
	require.NoError(t, err)
	st := ctrl.State()
	require.NotNil(t, st.Principal)
	assert.Equal(t, id, st.Principal.ID)
	require.NotNil(t, st.UserRecord)
	assert.Equal(t, domainauth.RoleEmployer, st.UserRecord.UserType)
}

func TestManager_Attach_UnknownTokenNotRetained(t *testing.T) {
	env := newTestEnv()
	m := newTestManager(env)

	ctrl, err := m.Attach(context.Background(), "no-such-session")
	require.NoError(t, err)
	assert.Nil(t, ctrl.State().Principal)

	// A fresh controller is built each time; nothing was indexed.
	again, err := m.Attach(context.Background(), "no-such-session")
	require.NoError(t, err)
	assert.NotSame(t, ctrl, again)
}

func TestManager_SignUp_RetainsOnSuccess(t *testing.T) {
	env := newTestEnv()
	m := newTestManager(env)

	ctrl, principal, err := m.SignUp(context.Background(), "alice@example.com", "pw12345678", domainauth.RoleJobSeeker)
	require.NoError(t, err)
	require.NotNil(t, principal)

	again, err := m.Attach(context.Background(), ctrl.SessionID())
	require.NoError(t, err)
	assert.Same(t, ctrl, again)
}

func TestManager_SignUp_PartialFailureNotRetained(t *testing.T) {
	env := newTestEnv()
	env.users.CreateErr = assertAnError
	m := newTestManager(env)

	_, _, err := m.SignUp(context.Background(), "alice@example.com", "pw12345678", domainauth.RoleJobSeeker)
	require.True(t, apperrors.IsPartialSignup(err))
}

func TestManager_SignOut_ReleasesAndEndsSession(t *testing.T) {
	env := newTestEnv()
	env.seedJobSeeker("alice@example.com", "pw12345678")
	m := newTestManager(env)

	ctrl, _, err := m.SignIn(context.Background(), "alice@example.com", "pw12345678")
	require.NoError(t, err)
	sessID := ctrl.SessionID()

	require.NoError(t, m.SignOut(context.Background(), sessID))
	assert.Nil(t, ctrl.State().Principal)

	// The remote session is gone too.
	_, err = env.backend.GetSession(context.Background(), sessID)
	assert.True(t, apperrors.IsNotFound(err))

	// A later attach with the dead token starts over unauthenticated.
	fresh, err := m.Attach(context.Background(), sessID)
	require.NoError(t, err)
	assert.NotSame(t, ctrl, fresh)
	assert.Nil(t, fresh.State().Principal)
}

func TestManager_SignOut_UntrackedSessionStillEndsRemotely(t *testing.T) {
	env := newTestEnv()
	env.seedJobSeeker("alice@example.com", "pw12345678")
	sess, err := env.backend.SignInWithPassword(context.Background(), "alice@example.com", "pw12345678")
	require.NoError(t, err)
	m := newTestManager(env)

	require.NoError(t, m.SignOut(context.Background(), sess.ID))
	_, err = env.backend.GetSession(context.Background(), sess.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestManager_EvictsOnExternalSignOut(t *testing.T) {
	env := newTestEnv()
	env.seedJobSeeker("alice@example.com", "pw12345678")
	m := newTestManager(env)

	ctrl, _, err := m.SignIn(context.Background(), "alice@example.com", "pw12345678")
	require.NoError(t, err)
	sessID := ctrl.SessionID()

	// Sign out from elsewhere; the event stream clears the controller and the
	// manager drops its index entry.
	require.NoError(t, env.backend.SignOut(context.Background(), sessID))

	require.Eventually(t, func() bool {
		m.mu.Lock()
		_, tracked := m.controllers[sessID]
		m.mu.Unlock()
		return !tracked && ctrl.State().Principal == nil
	}, time.Second, 5*time.Millisecond)
}

// assertAnError is a sentinel for fakes that only need a non-nil error.
var assertAnError = apperrors.Internal("boom")
