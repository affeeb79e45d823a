// Package session implements the session/profile controller: the single source
// of truth for "who is signed in and what role-data do they have". It keeps
// that state synchronized with the auth backend, whose own notion of session
// truth can change asynchronously (token refresh, sign-out from another
// device, expiry).
package session

import (
	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
	"github.com/goldengigs/goldengigs/internal/domain/model"
)

// State is the authentication/profile snapshot owned by a Controller.
//
// Invariants, once Loading is false:
//   - Principal == nil means unauthenticated; UserRecord and RoleProfile are
//     nil too (no orphaned profile data survives sign-out).
//   - Principal != nil with UserRecord == nil is the explicit degraded state:
//     the principal resolved but the backing fetch failed.
//   - RoleProfile may be nil for an authenticated job seeker who has not
//     created a profile yet; that is a valid state, not an error.
type State struct {
	Principal   *domainauth.Principal
	UserRecord  *model.UserRecord
	RoleProfile *model.RoleProfile
	Loading     bool
}

// Authenticated reports whether a principal is present.
func (s State) Authenticated() bool { return s.Principal != nil }

// Degraded reports whether the session is authenticated but the user record
// could not be loaded, so the role cannot be evaluated.
func (s State) Degraded() bool {
	return !s.Loading && s.Principal != nil && s.UserRecord == nil
}

// Role returns the user's role, or empty string while it is unknown.
func (s State) Role() domainauth.Role {
	if s.UserRecord == nil {
		return ""
	}
	return s.UserRecord.UserType
}
