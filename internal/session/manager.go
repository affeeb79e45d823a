package session

import (
	"context"
	"log/slog"
	"sync"

	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
	"github.com/goldengigs/goldengigs/internal/ports"
)

// ManagerOptions groups dependencies for a Manager.
type ManagerOptions struct {
	Backend  ports.AuthBackend
	Users    ports.UserStore
	Profiles ports.ProfileStore
	Bus      ports.AuthEventBus
	Logger   *slog.Logger
}

// Manager is the registry of live controllers, one per client session. It is
// the Go-native home for what the original design treats as a process-wide
// singleton: each connected client gets its own controller, constructed here
// and handed to consumers by reference.
type Manager struct {
	opts ManagerOptions

	mu          sync.Mutex
	controllers map[string]*Controller
}

// NewManager constructs a Manager.
func NewManager(opts ManagerOptions) *Manager {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Manager{
		opts:        opts,
		controllers: make(map[string]*Controller),
	}
}

// Attach returns the controller bound to sessionID, bootstrapping a new one on
// first sight. An unauthenticated result is returned but not retained.
func (m *Manager) Attach(ctx context.Context, sessionID string) (*Controller, error) {
	if sessionID != "" {
		m.mu.Lock()
		if ctrl, ok := m.controllers[sessionID]; ok {
			m.mu.Unlock()
			return ctrl, nil
		}
		m.mu.Unlock()
	}

	ctrl := m.newController(sessionID)
	err := ctrl.Bootstrap(ctx)
	if ctrl.State().Authenticated() {
		return m.retain(ctrl), err
	}
	ctrl.Close()
	return ctrl, err
}

// SignIn authenticates credentials and returns a retained controller with a
// fully-populated state.
func (m *Manager) SignIn(ctx context.Context, email, password string) (*Controller, *domainauth.Principal, error) {
	ctrl := m.newController("")
	principal, err := ctrl.SignIn(ctx, email, password)
	if principal == nil {
		ctrl.Close()
		return nil, nil, err
	}
	m.retain(ctrl)
	return ctrl, principal, err
}

// SignUp creates an account and returns a retained controller when a session
// was established. Partial-signup failures surface unchanged.
func (m *Manager) SignUp(ctx context.Context, email, password string, role domainauth.Role) (*Controller, *domainauth.Principal, error) {
	ctrl := m.newController("")
	principal, err := ctrl.SignUp(ctx, email, password, role)
	if ctrl.State().Authenticated() {
		m.retain(ctrl)
	} else {
		ctrl.Close()
	}
	return ctrl, principal, err
}

// SignOut ends the session for sessionID and releases its controller.
func (m *Manager) SignOut(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	ctrl, ok := m.controllers[sessionID]
	if ok {
		delete(m.controllers, sessionID)
	}
	m.mu.Unlock()

	if !ok {
		// Not tracked here (other process or already evicted); end it remotely.
		if sessionID == "" {
			return nil
		}
		return m.opts.Backend.SignOut(ctx, sessionID)
	}

	err := ctrl.SignOut(ctx)
	ctrl.Close()
	return err
}

// Release drops the controller for sessionID without remote side effects.
func (m *Manager) Release(sessionID string) {
	m.mu.Lock()
	ctrl, ok := m.controllers[sessionID]
	if ok {
		delete(m.controllers, sessionID)
	}
	m.mu.Unlock()
	if ok {
		ctrl.Close()
	}
}

func (m *Manager) newController(sessionID string) *Controller {
	return NewController(ControllerOptions{
		Backend:   m.opts.Backend,
		Users:     m.opts.Users,
		Profiles:  m.opts.Profiles,
		Bus:       m.opts.Bus,
		Logger:    m.opts.Logger,
		SessionID: sessionID,
	})
}

// retain indexes the controller by its session token and evicts it when its
// state later becomes unauthenticated (external sign-out or expiry). When a
// concurrent bootstrap already retained a controller for the same token, the
// newcomer is closed and the retained one returned.
func (m *Manager) retain(ctrl *Controller) *Controller {
	sessID := ctrl.SessionID()
	if sessID == "" {
		ctrl.Close()
		return ctrl
	}

	m.mu.Lock()
	if existing, ok := m.controllers[sessID]; ok && existing != ctrl {
		m.mu.Unlock()
		ctrl.Close()
		return existing
	}
	m.controllers[sessID] = ctrl
	m.mu.Unlock()

	ctrl.Subscribe(func(st State) {
		if !st.Loading && !st.Authenticated() {
			// Detach asynchronously: the callback runs on the controller's
			// notification path and Release re-enters the controller.
			go m.Release(sessID)
		}
	})
	return ctrl
}
