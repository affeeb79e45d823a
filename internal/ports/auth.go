package ports

// Package ports defines interfaces (hexagonal ports) for the managed-backend
// surface the application consumes. Implementations live in internal/adapters;
// orchestration in internal/session and internal/service.

import (
	"context"

	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
)

// SignUpInput carries inputs for creating a new principal.
type SignUpInput struct {
	Email    string
	Password string
	// Role travels as sign-up metadata so the backend can record the intended
	// account type even before the user row exists.
	Role domainauth.Role
}

// AuthBackend is the credential and session authority. It issues principals,
// verifies passwords, and owns the remote notion of "who is signed in".
type AuthBackend interface {
	// GetSession resolves a client session token to its stored session.
	// Returns a NotFound error when no live session exists.
	GetSession(ctx context.Context, sessionID string) (domainauth.ClientSession, error)

	// SignInWithPassword verifies credentials and establishes a session.
	// Returns an Authentication error on bad credentials.
	SignInWithPassword(ctx context.Context, email, password string) (domainauth.ClientSession, error)

	// SignUp creates a new principal. Returns a DuplicateAccount error when the
	// email is already registered and a RateLimited error when throttled.
	SignUp(ctx context.Context, in SignUpInput) (domainauth.Principal, error)

	// SignOut ends the session identified by sessionID and notifies subscribers.
	SignOut(ctx context.Context, sessionID string) error
}

// EventSubscription is a handle on an ordered stream of auth-state changes.
type EventSubscription interface {
	// Events yields notifications in delivery order. The channel is closed
	// after Unsubscribe.
	Events() <-chan domainauth.Event
	// Unsubscribe stops delivery and releases the subscription.
	Unsubscribe()
}

// AuthEventBus propagates auth-state changes to interested controllers,
// including changes triggered from other devices or processes.
type AuthEventBus interface {
	Publish(ctx context.Context, principalID string, ev domainauth.Event) error
	Subscribe(ctx context.Context, principalID string) (EventSubscription, error)
}

// SessionStore persists and retrieves client sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.ClientSession) error
	Get(ctx context.Context, id string) (domainauth.ClientSession, error)
	Delete(ctx context.Context, id string) error
	// DeleteByPrincipal removes every session for a principal (external sign-out).
	DeleteByPrincipal(ctx context.Context, principalID string) error
}

// RateLimiter bounds how often an operation may run for a given key.
type RateLimiter interface {
	// Allow reports whether another attempt is permitted for key.
	Allow(ctx context.Context, key string) (bool, error)
}
