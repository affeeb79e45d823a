package config

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// AuthConfig contains authentication and session configuration.
type AuthConfig struct {
	// SessionTTL is how long a session remains valid after sign-in.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// TokenSecret signs the session cookie. Required outside dev.
	TokenSecret string `env:"TOKEN_SECRET"`

	// BcryptCost is the work factor for password hashing.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	// SignupRateLimit caps sign-up attempts per address per window.
	SignupRateLimit  int           `env:"SIGNUP_RATE_LIMIT"  envDefault:"5"`
	SignupRateWindow time.Duration `env:"SIGNUP_RATE_WINDOW" envDefault:"1m"`
}

// Sanitize applies guardrails to auth configuration values.
func (c *AuthConfig) Sanitize() {
	c.TokenSecret = strings.TrimSpace(c.TokenSecret)

	if c.SessionTTL < time.Minute {
		c.SessionTTL = time.Minute
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		c.BcryptCost = bcrypt.DefaultCost
	}
	if c.SignupRateLimit < 1 {
		c.SignupRateLimit = 1
	}
	if c.SignupRateWindow < time.Second {
		c.SignupRateWindow = time.Second
	}
}
