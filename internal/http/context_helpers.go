package httpx

import (
	"context"

	"github.com/goldengigs/goldengigs/internal/session"
)

// controllerKey is an unexported context key type to avoid collisions across
// packages. Centralized here so all handlers/middleware use the same key.
type controllerKey struct{}

// SetControllerInContext returns a child context carrying the session controller.
// If ctrl is nil, the original ctx is returned unchanged.
func SetControllerInContext(ctx context.Context, ctrl *session.Controller) context.Context {
	if ctrl == nil {
		return ctx
	}
	return context.WithValue(ctx, controllerKey{}, ctrl)
}

// ControllerFromContext returns the session controller from context and a
// boolean indicating presence.
func ControllerFromContext(ctx context.Context) (*session.Controller, bool) {
	if ctrl, ok := ctx.Value(controllerKey{}).(*session.Controller); ok && ctrl != nil {
		return ctrl, true
	}
	return nil, false
}

// StateFromContext returns the auth-state snapshot for the request. Requests
// without an attached controller get the unauthenticated zero state.
func StateFromContext(ctx context.Context) session.State {
	if ctrl, ok := ControllerFromContext(ctx); ok {
		return ctrl.State()
	}
	return session.State{}
}

// PrincipalIDFromContext returns the authenticated principal id, or empty
// string for anonymous requests.
func PrincipalIDFromContext(ctx context.Context) string {
	st := StateFromContext(ctx)
	if st.Principal == nil {
		return ""
	}
	return st.Principal.ID
}
