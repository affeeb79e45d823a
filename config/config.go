// Package config defines application configuration loaded from environment
// variables via caarlos0/env struct tags.
package config

import (
	"os"
	"strings"
)

// AppConfig is the root configuration for all GoldenGigs services.
type AppConfig struct {
	// HTTP server configuration.
	HTTP HTTPConfig

	// Auth configuration (sessions, sign-up limits).
	Auth AuthConfig `envPrefix:"AUTH_"`

	// Postgres database configuration.
	Postgres DBConfig `envPrefix:"DB_"`

	// Redis configuration (sessions, auth events, rate limiting).
	Redis RedisConfig `envPrefix:"REDIS_"`

	// Storage configuration for resume uploads.
	Storage StorageConfig `envPrefix:"S3_"`

	// ServicesConfig selects which services run in this process.
	ServicesConfig

	// IsDev relaxes cookie security for local development.
	IsDev bool `env:"DEV" envDefault:"false"`

	// DevSeed populates demo data on startup. Ignored outside development.
	DevSeed bool `env:"DEV_SEED" envDefault:"false"`
}

// Sanitize applies guardrails to all configuration values. Call after parsing.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Auth.Sanitize()
	c.Redis.Sanitize()
	c.Storage.Sanitize()
	c.ServicesConfig.Sanitize()

	if !c.IsDev {
		c.IsDev = isDevEnvironment()
	}
}

func isDevEnvironment() bool {
	env := strings.ToLower(strings.TrimSpace(os.Getenv("APP_ENV")))
	return env == "dev" || env == "development" || env == "local"
}
