package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
	apperrors "github.com/goldengigs/goldengigs/internal/errors"
	"github.com/goldengigs/goldengigs/internal/session"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "gg_session"

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// TokenParser resolves a session cookie value to the session id it wraps.
type TokenParser interface {
	Parse(tokenString string) (string, error)
}

// SessionAttacher binds a session id to its live controller.
type SessionAttacher interface {
	Attach(ctx context.Context, sessionID string) (*session.Controller, error)
}

// AttachSession returns a middleware that resolves the session cookie to a
// controller and stores it in the request context. Requests without a valid
// cookie continue anonymously; guarding is a separate concern.
func AttachSession(sessions SessionAttacher, tokens TokenParser, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			sessionID, err := tokens.Parse(cookie.Value)
			if err != nil {
				// Tampered or expired token: proceed anonymously.
				next.ServeHTTP(w, r)
				return
			}

			ctrl, err := sessions.Attach(r.Context(), sessionID)
			if err != nil && !apperrors.IsNotFound(err) && !errors.Is(err, context.Canceled) {
				logger.WarnContext(r.Context(), "session attach failed", "error", err)
			}
			if ctrl == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := SetControllerInContext(r.Context(), ctrl)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth returns a middleware admitting any authenticated user.
func RequireAuth() func(http.Handler) http.Handler {
	return requireGuard("")
}

// RequireRole returns a middleware admitting only authenticated users with the
// given role. Sessions whose user record could not be loaded are denied: the
// role check cannot be evaluated against a missing record.
func RequireRole(role domainauth.Role) func(http.Handler) http.Handler {
	return requireGuard(role)
}

func requireGuard(role domainauth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			st := StateFromContext(r.Context())
			outcome := session.EvaluateGuard(st, role, r.URL.RequestURI())

			switch outcome.Decision {
			case session.DecisionAdmitted:
				next.ServeHTTP(w, r)

			case session.DecisionDeniedUnauthenticated:
				WriteError(w, ErrorParams{
					Code:       http.StatusUnauthorized,
					ErrCode:    "authentication_required",
					Err:        errors.New("authentication required"),
					RedirectTo: outcome.RedirectTo,
				})

			case session.DecisionDeniedWrongRole:
				WriteError(w, ErrorParams{
					Code:       http.StatusForbidden,
					ErrCode:    "insufficient_permissions",
					Err:        errors.New("insufficient permissions"),
					RedirectTo: outcome.RedirectTo,
				})

			case session.DecisionDeniedDegraded:
				WriteError(w, ErrorParams{
					Code:       http.StatusForbidden,
					ErrCode:    string(apperrors.ErrCodeProfileDegraded),
					Err:        errors.New("profile data unavailable, role cannot be verified"),
					RedirectTo: outcome.RedirectTo,
				})

			default:
				// Pending never happens server-side: Attach bootstraps before
				// the request reaches a guard.
				WriteError(w, ErrorParams{
					Code:    http.StatusServiceUnavailable,
					ErrCode: "state_pending",
					Err:     errors.New("session state not ready"),
				})
			}
		})
	}
}
