package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
	apperrors "github.com/goldengigs/goldengigs/internal/errors"
	"github.com/goldengigs/goldengigs/internal/session"
)

// SessionService defines the session manager operations the auth handlers use.
type SessionService interface {
	SignIn(ctx context.Context, email, password string) (*session.Controller, *domainauth.Principal, error)
	SignUp(ctx context.Context, email, password string, role domainauth.Role) (*session.Controller, *domainauth.Principal, error)
	SignOut(ctx context.Context, sessionID string) error
}

// TokenMinter wraps a session id in a signed cookie value.
type TokenMinter interface {
	Mint(sessionID string) (string, error)
}

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Sessions     SessionService
	Tokens       TokenMinter
	CookieDomain string
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

type signUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Role     string `json:"role" validate:"required,oneof=employer jobseeker"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUp handles account creation.
// POST /api/auth/signup.
func (h *AuthHandlers) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if !ValidateStruct(w, &req) {
		return
	}

	ctrl, principal, err := h.Sessions.SignUp(r.Context(), req.Email, req.Password, domainauth.Role(req.Role))
	if err != nil {
		if apperrors.IsPartialSignup(err) {
			h.logger().ErrorContext(r.Context(), "partial sign-up",
				"stage", apperrors.GetStage(err), "error", err)
		}
		WriteAppError(w, err)
		return
	}

	h.setSessionCookie(w, r, ctrl.SessionID())
	WriteJSON(w, http.StatusCreated, authResponse(ctrl, principal))
}

// SignIn handles credential sign-in.
// POST /api/auth/signin.
func (h *AuthHandlers) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if !ValidateStruct(w, &req) {
		return
	}

	ctrl, principal, err := h.Sessions.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	h.setSessionCookie(w, r, ctrl.SessionID())

	// Guard denials send users here with their origin attached; echo it back
	// so the client can return them after sign-in.
	resp := authResponse(ctrl, principal)
	if raw := r.URL.Query().Get("redirect_uri"); raw != "" {
		resp.RedirectTo = safeRedirectPath(raw)
	}
	WriteJSON(w, http.StatusOK, resp)
}

// SignOut ends the current session. The cookie is cleared even when the remote
// sign-out fails; the client is signed out locally either way.
// POST /api/auth/signout.
func (h *AuthHandlers) SignOut(w http.ResponseWriter, r *http.Request) {
	// Set-Cookie must go out before WriteJSON commits the header block.
	h.clearSessionCookie(w, r)

	if ctrl, ok := ControllerFromContext(r.Context()); ok {
		if err := h.Sessions.SignOut(r.Context(), ctrl.SessionID()); err != nil {
			h.logger().WarnContext(r.Context(), "remote sign-out failed", "error", err)
		}
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "signed_out"})
}

// Me returns the current auth-state snapshot.
// GET /api/auth/me.
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	st := StateFromContext(r.Context())
	WriteJSON(w, http.StatusOK, stateResponse(st))
}

// RefreshProfile re-fetches the current principal's profile data.
// POST /api/auth/refresh.
func (h *AuthHandlers) RefreshProfile(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := ControllerFromContext(r.Context())
	if !ok {
		WriteAppError(w, apperrors.NotAuthenticated("no active session"))
		return
	}

	if err := ctrl.RefreshProfile(r.Context()); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, stateResponse(ctrl.State()))
}

// stateView is the wire shape of an auth-state snapshot.
type stateView struct {
	Authenticated bool                  `json:"authenticated"`
	Degraded      bool                  `json:"degraded,omitempty"`
	Principal     *domainauth.Principal `json:"principal,omitempty"`
	User          any                   `json:"user,omitempty"`
	Profile       any                   `json:"profile,omitempty"`
	RedirectTo    string                `json:"redirect_to,omitempty"`
}

func stateResponse(st session.State) stateView {
	view := stateView{
		Authenticated: st.Authenticated(),
		Degraded:      st.Degraded(),
		Principal:     st.Principal,
	}
	if st.UserRecord != nil {
		view.User = st.UserRecord
	}
	if st.RoleProfile != nil {
		view.Profile = st.RoleProfile
	}
	return view
}

func authResponse(ctrl *session.Controller, principal *domainauth.Principal) stateView {
	view := stateResponse(ctrl.State())
	if view.Principal == nil {
		view.Principal = principal
	}
	return view
}

// setSessionCookie wraps the session id in a signed token and stores it in the
// session cookie.
func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, sessionID string) {
	token, err := h.Tokens.Mint(sessionID)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "mint session token failed", "error", err)
		return
	}

	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie clears the session cookie by setting it to expire
// immediately. It mirrors the attributes used when setting the cookie to
// maximize compatibility across browsers during deletion.
func (h *AuthHandlers) clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecure,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

// safeRedirectPath allows only relative paths so a crafted redirect_uri cannot
// send the user off-site.
func safeRedirectPath(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	return raw
}
