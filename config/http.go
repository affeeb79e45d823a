package config

import "strings"

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the listen address for the HTTP server.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// BaseURL is the externally visible URL of the application.
	BaseURL string `env:"HTTP_BASE_URL" envDefault:"http://localhost:8080"`

	// CookieDomain scopes the session cookie. Empty means host-only.
	CookieDomain string `env:"HTTP_COOKIE_DOMAIN"`
}

// Sanitize applies guardrails to HTTP configuration values.
func (c *HTTPConfig) Sanitize() {
	c.Addr = strings.TrimSpace(c.Addr)
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	c.CookieDomain = strings.TrimSpace(c.CookieDomain)
}
