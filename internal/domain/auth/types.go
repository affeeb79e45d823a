package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of adapter concerns.

import "time"

// Role represents a user's side of the marketplace.
// Keep string form for easy persistence and cookies.
type Role string

const (
	RoleEmployer  Role = "employer"
	RoleJobSeeker Role = "jobseeker"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleEmployer || r == RoleJobSeeker
}

// Principal is the authenticated identity issued by the auth backend.
// The session controller holds a read-only cached copy.
type Principal struct {
	ID    string
	Email string
}

// EventType identifies an auth-state change notification.
type EventType string

const (
	// EventSignedIn fires when a session becomes present (sign-in or restore).
	EventSignedIn EventType = "signed_in"
	// EventSignedOut fires when the backend's session ends, including sign-outs
	// triggered from another device and session expiry.
	EventSignedOut EventType = "signed_out"
	// EventTokenRefreshed fires when the backend rotates session credentials.
	EventTokenRefreshed EventType = "token_refreshed"
)

// Event is an auth-state change notification delivered to subscribers.
// Principal is nil for signed-out events.
type Event struct {
	Type      EventType  `json:"type"`
	Principal *Principal `json:"principal,omitempty"`
}

// ClientSession is the server-side record persisted for an authenticated client.
// ID is an opaque session identifier (random URL-safe string).
type ClientSession struct {
	ID          string    `json:"id"`
	PrincipalID string    `json:"principal_id"`
	Email       string    `json:"email"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry.
func (s ClientSession) Expired() bool { return time.Now().After(s.ExpiresAt) }

// AsPrincipal returns the principal cached on the session.
func (s ClientSession) AsPrincipal() Principal {
	return Principal{ID: s.PrincipalID, Email: s.Email}
}
