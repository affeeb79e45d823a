// Package pgauth implements the credential and session authority on Postgres:
// bcrypt password hashes in auth_accounts, sessions in the session store, and
// auth-state change notifications on the event bus.
package pgauth

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/goldengigs/goldengigs/internal/data/pgxutil"
	domainauth "github.com/goldengigs/goldengigs/internal/domain/auth"
	apperrors "github.com/goldengigs/goldengigs/internal/errors"
	"github.com/goldengigs/goldengigs/internal/ports"
)

const (
	defaultSessionTTL = 24 * time.Hour
	minPasswordLength = 8
)

// Options groups dependencies for the Backend.
type Options struct {
	DB       *sql.DB
	Sessions ports.SessionStore
	Bus      ports.AuthEventBus
	// Limiter throttles sign-up attempts; nil disables throttling.
	Limiter ports.RateLimiter
	// SessionTTL defaults to 24h.
	SessionTTL time.Duration
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
	Logger     *slog.Logger
}

// Backend is the Postgres-backed ports.AuthBackend.
type Backend struct {
	db         *sql.DB
	sessions   ports.SessionStore
	bus        ports.AuthEventBus
	limiter    ports.RateLimiter
	sessionTTL time.Duration
	bcryptCost int
	logger     *slog.Logger
}

var _ ports.AuthBackend = (*Backend)(nil)

// NewBackend constructs a Backend.
func NewBackend(opts Options) *Backend {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	cost := opts.BcryptCost
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Backend{
		db:         opts.DB,
		sessions:   opts.Sessions,
		bus:        opts.Bus,
		limiter:    opts.Limiter,
		sessionTTL: ttl,
		bcryptCost: cost,
		logger:     logger,
	}
}

// SignUp creates a new principal. Duplicate emails map to a DuplicateAccount
// error; throttled attempts to RateLimited.
func (b *Backend) SignUp(ctx context.Context, in ports.SignUpInput) (domainauth.Principal, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return domainauth.Principal{}, apperrors.ValidationField("email", "email is required")
	}
	if len(in.Password) < minPasswordLength {
		return domainauth.Principal{}, apperrors.ValidationField("password",
			fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	if !in.Role.Valid() {
		return domainauth.Principal{}, apperrors.ValidationField("role", "role must be employer or jobseeker")
	}

	if b.limiter != nil {
		ok, err := b.limiter.Allow(ctx, email)
		if err != nil {
			b.logger.Warn("signup rate limit check failed", "error", err)
		} else if !ok {
			return domainauth.Principal{}, apperrors.RateLimited("too many signup attempts, try again later")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), b.bcryptCost)
	if err != nil {
		return domainauth.Principal{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "hash password")
	}

	var id string
	err = pgxutil.WithPgxConn(ctx, b.db, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `
			INSERT INTO auth_accounts (email, password_hash, signup_role)
			VALUES ($1, $2, $3)
			RETURNING id`,
			email, string(hash), in.Role,
		).Scan(&id)
	})
	if err != nil {
		if apperrors.IsUniqueViolation(err) {
			return domainauth.Principal{}, apperrors.DuplicateAccount("email is already registered")
		}
		return domainauth.Principal{}, apperrors.MapDBError(err)
	}

	return domainauth.Principal{ID: id, Email: email}, nil
}

// SignInWithPassword verifies credentials, establishes a session, and
// publishes a signed-in event.
func (b *Backend) SignInWithPassword(ctx context.Context, email, password string) (domainauth.ClientSession, error) {
	email = normalizeEmail(email)

	var id, hash string
	err := pgxutil.WithPgxConn(ctx, b.db, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx,
			"SELECT id, password_hash FROM auth_accounts WHERE lower(email) = $1", email,
		).Scan(&id, &hash)
	})
	if err != nil {
		if apperrors.IsNotFound(apperrors.MapDBError(err)) {
			// Equalize the timing of unknown-email and wrong-password paths.
			_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$invalidinvalidinvalidinvalidinvalid"), []byte(password))
			return domainauth.ClientSession{}, apperrors.Authentication("invalid email or password")
		}
		return domainauth.ClientSession{}, apperrors.MapDBError(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return domainauth.ClientSession{}, apperrors.Authentication("invalid email or password")
	}

	sess := domainauth.ClientSession{
		ID:          uuid.NewString(),
		PrincipalID: id,
		Email:       email,
		ExpiresAt:   time.Now().Add(b.sessionTTL),
	}
	if err := b.sessions.Save(ctx, sess); err != nil {
		return domainauth.ClientSession{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "save session")
	}

	if b.bus != nil {
		principal := sess.AsPrincipal()
		if err := b.bus.Publish(ctx, id, domainauth.Event{
			Type:      domainauth.EventSignedIn,
			Principal: &principal,
		}); err != nil {
			b.logger.Warn("publish signed-in event failed", "principal_id", id, "error", err)
		}
	}
	return sess, nil
}

// GetSession resolves a session token. Returns a NotFound error for unknown
// or expired tokens.
func (b *Backend) GetSession(ctx context.Context, sessionID string) (domainauth.ClientSession, error) {
	return b.sessions.Get(ctx, sessionID)
}

// SignOut ends one session and notifies the principal's subscribers. Unknown
// sessions are a no-op.
func (b *Backend) SignOut(ctx context.Context, sessionID string) error {
	sess, err := b.sessions.Get(ctx, sessionID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil
		}
		return err
	}

	if err := b.sessions.Delete(ctx, sessionID); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "delete session")
	}

	if b.bus != nil {
		if err := b.bus.Publish(ctx, sess.PrincipalID, domainauth.Event{
			Type: domainauth.EventSignedOut,
		}); err != nil {
			b.logger.Warn("publish signed-out event failed", "principal_id", sess.PrincipalID, "error", err)
		}
	}
	return nil
}

// SignOutEverywhere ends every session the principal holds and publishes a
// single signed-out event.
func (b *Backend) SignOutEverywhere(ctx context.Context, principalID string) error {
	if err := b.sessions.DeleteByPrincipal(ctx, principalID); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "delete principal sessions")
	}
	if b.bus != nil {
		if err := b.bus.Publish(ctx, principalID, domainauth.Event{Type: domainauth.EventSignedOut}); err != nil {
			b.logger.Warn("publish signed-out event failed", "principal_id", principalID, "error", err)
		}
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
