package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
	"github.com/goldengigs/goldengigs/internal/domain/model"
	apperrors "github.com/goldengigs/goldengigs/internal/errors"
	"github.com/goldengigs/goldengigs/internal/ports"
)

// profileFetchTimeout bounds profile fetches triggered by externally-delivered
// auth events, which have no caller context.
const profileFetchTimeout = 10 * time.Second

// ControllerOptions groups dependencies for a Controller.
type ControllerOptions struct {
	Backend  ports.AuthBackend
	Users    ports.UserStore
	Profiles ports.ProfileStore
	Bus      ports.AuthEventBus
	Logger   *slog.Logger

	// SessionID is an existing client session token to bootstrap from.
	// Empty means no prior session.
	SessionID string
}

// Controller owns a State and keeps it synchronized with the auth backend.
// It is the single writer of its State; all other components hold read-only
// snapshots obtained via State() or Subscribe().
//
// Every profile fetch is tagged with the generation of the principal it was
// issued for. A fetch whose generation is stale by the time it resolves is
// discarded, so a slow fetch for user A can never overwrite state after user B
// signed in or after a sign-out. Generations only advance on principal
// transitions, all of which happen under one mutex, which is what makes each
// state write all-or-nothing from a subscriber's perspective.
type Controller struct {
	backend  ports.AuthBackend
	users    ports.UserStore
	profiles ports.ProfileStore
	bus      ports.AuthEventBus
	logger   *slog.Logger

	mu        sync.Mutex
	state     State
	gen       uint64
	sessionID string
	sub       ports.EventSubscription
	subs      []stateSubscriber
	nextSubID int
	closed    bool
}

type stateSubscriber struct {
	id int
	fn func(State)
}

// NewController constructs a Controller. The state starts in Loading until
// Bootstrap completes.
func NewController(opts ControllerOptions) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		backend:   opts.Backend,
		users:     opts.Users,
		profiles:  opts.Profiles,
		bus:       opts.Bus,
		logger:    logger,
		sessionID: opts.SessionID,
		state:     State{Loading: true},
	}
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SessionID returns the client session token the controller is bound to,
// or empty when signed out.
func (c *Controller) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Subscribe registers fn to receive every complete state snapshot. It returns
// an unsubscribe function. Callbacks run after the state write commits and
// must not block for long.
func (c *Controller) Subscribe(fn func(State)) func() {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subs = append(c.subs, stateSubscriber{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// Bootstrap resolves the existing client session, if any, and loads the user
// record and role profile for its principal. It never fails hard: fetch
// failures resolve to a degraded-but-consistent state and are returned for
// diagnostics only.
func (c *Controller) Bootstrap(ctx context.Context) error {
	c.mu.Lock()
	sessID := c.sessionID
	c.mu.Unlock()

	if sessID == "" {
		c.clearLocal()
		return nil
	}

	sess, err := c.backend.GetSession(ctx, sessID)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			c.logger.Warn("session bootstrap failed", "error", err)
		}
		c.clearLocal()
		return nil
	}

	gen := c.adoptPrincipal(sess)
	c.resubscribe(ctx, sess.PrincipalID)
	return c.loadProfileData(ctx, sess.PrincipalID, gen)
}

// SignIn verifies credentials and synchronously populates the full profile
// before returning, so callers can act on it immediately. Returns an
// Authentication error on bad credentials and a ProfileDegraded error when the
// principal resolved but profile data could not be loaded.
func (c *Controller) SignIn(ctx context.Context, email, password string) (*domainauth.Principal, error) {
	sess, err := c.backend.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}

	principal := sess.AsPrincipal()
	gen := c.adoptPrincipal(sess)
	c.resubscribe(ctx, sess.PrincipalID)
	if err := c.loadProfileData(ctx, sess.PrincipalID, gen); err != nil {
		return &principal, err
	}
	return &principal, nil
}

// SignUp creates the principal, the user record, and for employers an initial
// empty profile row, then signs the new user in so the state is populated when
// the call returns. The writes are not transactional: a failure after the
// principal exists surfaces as PartialSignup naming the failed stage, and the
// local state stays unauthenticated.
func (c *Controller) SignUp(ctx context.Context, email, password string, role domainauth.Role) (*domainauth.Principal, error) {
	if !role.Valid() {
		return nil, apperrors.ValidationField("role", "role must be employer or jobseeker")
	}

	principal, err := c.backend.SignUp(ctx, ports.SignUpInput{Email: email, Password: password, Role: role})
	if err != nil {
		return nil, err
	}

	if _, err := c.users.Create(ctx, &model.CreateUserRequest{
		ID:       principal.ID,
		Email:    email,
		UserType: role,
	}); err != nil {
		return nil, apperrors.PartialSignup("user_record", err)
	}

	// Employers get an empty profile row up front; job seekers create theirs
	// later via CreateRoleProfile, so a missing row is a valid state for them.
	if role == domainauth.RoleEmployer {
		if _, err := c.profiles.CreateEmployerShell(ctx, principal.ID); err != nil {
			return nil, apperrors.PartialSignup("role_profile", err)
		}
	}

	sess, err := c.backend.SignInWithPassword(ctx, email, password)
	if err != nil {
		return &principal, apperrors.Wrap(err, apperrors.ErrCodeInternal, "sign in after sign-up")
	}

	gen := c.adoptPrincipal(sess)
	c.resubscribe(ctx, sess.PrincipalID)
	if err := c.loadProfileData(ctx, sess.PrincipalID, gen); err != nil {
		return &principal, err
	}
	return &principal, nil
}

// SignOut clears local state first so dependents react immediately, then ends
// the remote session. A remote failure is surfaced but the local clear is
// never rolled back.
func (c *Controller) SignOut(ctx context.Context) error {
	sessID := c.clearLocal()
	if sessID == "" {
		return nil
	}
	if err := c.backend.SignOut(ctx, sessID); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "remote sign-out")
	}
	return nil
}

// RefreshProfile re-runs the user record and role profile fetch for the
// current principal. No-op when unauthenticated.
func (c *Controller) RefreshProfile(ctx context.Context) error {
	c.mu.Lock()
	if c.state.Principal == nil {
		c.mu.Unlock()
		return nil
	}
	pid := c.state.Principal.ID
	gen := c.gen
	c.state.Loading = true
	snapshot, subs := c.state, c.snapshotSubs()
	c.mu.Unlock()
	notify(subs, snapshot)

	return c.loadProfileData(ctx, pid, gen)
}

// CreateRoleProfile inserts the deferred job-seeker profile row for the
// current principal and refreshes state on success.
func (c *Controller) CreateRoleProfile(ctx context.Context, data *model.CreateJobSeekerProfileRequest) error {
	c.mu.Lock()
	principal := c.state.Principal
	c.mu.Unlock()

	if principal == nil {
		return apperrors.NotAuthenticated("no user is signed in")
	}
	if _, err := c.profiles.CreateJobSeeker(ctx, principal.ID, data); err != nil {
		return err
	}
	return c.RefreshProfile(ctx)
}

// Close detaches the controller from the auth event stream. It does not
// change state; use SignOut to end the session.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	sub := c.sub
	c.sub = nil
	c.mu.Unlock()
	if sub != nil {
		sub.Unsubscribe()
	}
}

// --- state transitions ---

// adoptPrincipal installs a new principal, clears any previous user's data,
// and returns the generation tag fetches for this principal must carry.
func (c *Controller) adoptPrincipal(sess domainauth.ClientSession) uint64 {
	principal := sess.AsPrincipal()

	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.sessionID = sess.ID
	c.state = State{Principal: &principal, Loading: true}
	snapshot, subs := c.state, c.snapshotSubs()
	c.mu.Unlock()

	notify(subs, snapshot)
	return gen
}

// clearLocal resets state to unauthenticated and returns the previous client
// session token. The generation bump makes every in-flight fetch stale.
func (c *Controller) clearLocal() string {
	c.mu.Lock()
	c.gen++
	sessID := c.sessionID
	c.sessionID = ""
	sub := c.sub
	c.sub = nil
	c.state = State{}
	snapshot, subs := c.state, c.snapshotSubs()
	c.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
	notify(subs, snapshot)
	return sessID
}

// loadProfileData performs the two-step role-dispatched lookup: user record
// first, then the profile table selected by its user_type. The result is
// applied only if gen is still current.
func (c *Controller) loadProfileData(ctx context.Context, principalID string, gen uint64) error {
	record, err := c.users.GetByID(ctx, principalID)
	if err != nil {
		c.applyIfCurrent(gen, nil, nil)
		c.logger.Warn("user record fetch failed", "principal_id", principalID, "error", err)
		return apperrors.ProfileDegraded(err)
	}

	var roleProfile *model.RoleProfile
	var profileErr error
	switch record.UserType {
	case domainauth.RoleJobSeeker:
		p, err := c.profiles.GetJobSeeker(ctx, principalID)
		switch {
		case err == nil:
			roleProfile = model.NewJobSeekerRoleProfile(p)
		case apperrors.IsNotFound(err):
			// Deferred profile creation: a missing row is a valid state.
		default:
			profileErr = err
		}
	case domainauth.RoleEmployer:
		p, err := c.profiles.GetEmployer(ctx, principalID)
		switch {
		case err == nil:
			roleProfile = model.NewEmployerRoleProfile(p)
		case apperrors.IsNotFound(err):
		default:
			profileErr = err
		}
	}

	applied := c.applyIfCurrent(gen, record, roleProfile)
	if !applied {
		c.logger.Debug("discarding stale profile fetch", "principal_id", principalID)
		return nil
	}
	if profileErr != nil {
		c.logger.Warn("role profile fetch failed", "principal_id", principalID, "error", profileErr)
		return apperrors.ProfileDegraded(profileErr)
	}
	return nil
}

// applyIfCurrent writes the fetch result and settles Loading, unless the
// principal changed while the fetch was in flight.
func (c *Controller) applyIfCurrent(gen uint64, record *model.UserRecord, roleProfile *model.RoleProfile) bool {
	c.mu.Lock()
	if gen != c.gen || c.state.Principal == nil {
		c.mu.Unlock()
		return false
	}
	c.state.UserRecord = record
	c.state.RoleProfile = roleProfile
	c.state.Loading = false
	snapshot, subs := c.state, c.snapshotSubs()
	c.mu.Unlock()

	notify(subs, snapshot)
	return true
}

// --- auth event handling ---

// resubscribe points the controller's event subscription at principalID.
// Events are consumed by a single goroutine per subscription, which preserves
// delivery order.
func (c *Controller) resubscribe(ctx context.Context, principalID string) {
	if c.bus == nil {
		return
	}

	sub, err := c.bus.Subscribe(ctx, principalID)
	if err != nil {
		c.logger.Warn("auth event subscription failed", "principal_id", principalID, "error", err)
		return
	}

	c.mu.Lock()
	old := c.sub
	if c.closed {
		c.mu.Unlock()
		sub.Unsubscribe()
		return
	}
	c.sub = sub
	c.mu.Unlock()

	if old != nil {
		old.Unsubscribe()
	}
	go c.consumeEvents(sub)
}

func (c *Controller) consumeEvents(sub ports.EventSubscription) {
	for ev := range sub.Events() {
		c.handleAuthEvent(ev)
	}
}

// handleAuthEvent processes one externally-delivered auth notification.
// A signed-out event always wins: it bumps the generation, so any profile
// fetch still in flight for the previous principal resolves stale.
func (c *Controller) handleAuthEvent(ev domainauth.Event) {
	switch ev.Type {
	case domainauth.EventSignedOut:
		c.clearLocal()

	case domainauth.EventSignedIn, domainauth.EventTokenRefreshed:
		if ev.Principal == nil {
			return
		}
		principal := *ev.Principal

		c.mu.Lock()
		if c.state.Principal == nil || c.state.Principal.ID != principal.ID {
			c.gen++
		}
		gen := c.gen
		keepSession := c.sessionID
		c.state = State{Principal: &principal, Loading: true}
		c.sessionID = keepSession
		snapshot, subs := c.state, c.snapshotSubs()
		c.mu.Unlock()
		notify(subs, snapshot)

		ctx, cancel := context.WithTimeout(context.Background(), profileFetchTimeout)
		defer cancel()
		if err := c.loadProfileData(ctx, principal.ID, gen); err != nil {
			c.logger.Warn("profile refresh after auth event failed", "principal_id", principal.ID, "error", err)
		}
	}
}

// --- subscriber plumbing ---

func (c *Controller) snapshotSubs() []stateSubscriber {
	out := make([]stateSubscriber, len(c.subs))
	copy(out, c.subs)
	return out
}

func notify(subs []stateSubscriber, st State) {
	for _, s := range subs {
		s.fn(st)
	}
}
