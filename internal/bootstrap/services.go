package bootstrap

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/goldengigs/goldengigs/config"
	"github.com/goldengigs/goldengigs/internal/adapters/pgauth"
	redisadapter "github.com/goldengigs/goldengigs/internal/adapters/redis"
	"github.com/goldengigs/goldengigs/internal/adapters/s3blob"
	"github.com/goldengigs/goldengigs/internal/data"
	httpx "github.com/goldengigs/goldengigs/internal/http"
	"github.com/goldengigs/goldengigs/internal/ports"
	"github.com/goldengigs/goldengigs/internal/service"
	"github.com/goldengigs/goldengigs/internal/session"
)

const signupRateLimitPrefix = "goldengigs:ratelimit:signup:"

// ServiceContainer holds all initialized services and their dependencies.
type ServiceContainer struct {
	Config config.AppConfig
	Logger *slog.Logger

	Sessions *session.Manager
	Router   http.Handler
	Reaper   *service.Reaper

	httpServer *http.Server
}

// NewServices initializes the services enabled in cfg against the given
// database and Redis connections.
func NewServices(ctx context.Context, cfg config.AppConfig, db *sql.DB, redisClient redis.UniversalClient, logger *slog.Logger) (*ServiceContainer, error) {
	if db == nil {
		return nil, errors.New("database connection is required")
	}
	if redisClient == nil {
		return nil, errors.New("redis connection is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	users := data.NewUserRepo(db)
	profiles := data.NewProfileRepo(db)
	jobs := data.NewJobRepo(db)
	applications := data.NewApplicationRepo(db)

	sessionStore := redisadapter.NewSessionStore(redisClient)
	bus := redisadapter.NewEventBus(redisClient, logger)
	limiter := redisadapter.NewRateLimiter(redisClient, signupRateLimitPrefix, cfg.Auth.SignupRateLimit, cfg.Auth.SignupRateWindow)

	backend := pgauth.NewBackend(pgauth.Options{
		DB:         db,
		Sessions:   sessionStore,
		Bus:        bus,
		Limiter:    limiter,
		SessionTTL: cfg.Auth.SessionTTL,
		BcryptCost: cfg.Auth.BcryptCost,
		Logger:     logger,
	})

	secret := cfg.Auth.TokenSecret
	if secret == "" {
		// A random per-process secret invalidates cookies on restart.
		// ValidateServiceConfig rejects this path outside development.
		generated, err := randomSecret()
		if err != nil {
			return nil, fmt.Errorf("generate token secret: %w", err)
		}
		secret = generated
		logger.Warn("AUTH_TOKEN_SECRET not set, using ephemeral secret")
	}
	tokens := pgauth.NewTokenCodec([]byte(secret), cfg.Auth.SessionTTL)

	manager := session.NewManager(session.ManagerOptions{
		Backend:  backend,
		Users:    users,
		Profiles: profiles,
		Bus:      bus,
		Logger:   logger,
	})

	var blobs ports.BlobStore
	if cfg.Storage.IsConfigured() {
		store, err := s3blob.New(ctx, s3blob.Options{
			Region:    cfg.Storage.Region,
			Bucket:    cfg.Storage.Bucket,
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
		})
		if err != nil {
			return nil, fmt.Errorf("init blob storage: %w", err)
		}
		blobs = store
	} else {
		logger.Info("blob storage not configured, resume uploads disabled")
	}

	container := &ServiceContainer{
		Config:   cfg,
		Logger:   logger,
		Sessions: manager,
	}

	if cfg.IsHTTPServerEnabled() {
		container.Router = httpx.NewRouter(httpx.RouterServices{
			Sessions:     manager,
			Tokens:       tokens,
			Profiles:     profiles,
			Jobs:         jobs,
			Applications: applications,
			Blobs:        blobs,
			CookieDomain: cfg.HTTP.CookieDomain,
			Logger:       logger,
		})
	}

	if cfg.IsReaperEnabled() {
		reaper, err := service.NewReaper(service.ReaperOptions{
			Jobs:   jobs,
			Config: cfg.Reaper,
			Logger: logger,
		})
		if err != nil {
			return nil, fmt.Errorf("init reaper: %w", err)
		}
		container.Reaper = reaper
	}

	return container, nil
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
