package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldengigs/goldengigs/config"
)

func TestValidateServiceConfig(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		require.Error(t, ValidateServiceConfig(nil))
	})

	t.Run("invalid service name", func(t *testing.T) {
		cfg := &config.AppConfig{IsDev: true}
		cfg.Services = "http,scheduler"
		require.Error(t, ValidateServiceConfig(cfg))
	})

	t.Run("missing token secret outside dev", func(t *testing.T) {
		cfg := &config.AppConfig{}
		cfg.Services = "http"
		err := ValidateServiceConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "AUTH_TOKEN_SECRET")
	})

	t.Run("missing token secret allowed in dev", func(t *testing.T) {
		cfg := &config.AppConfig{IsDev: true}
		cfg.Services = "http,reaper"
		require.NoError(t, ValidateServiceConfig(cfg))
	})

	t.Run("valid", func(t *testing.T) {
		cfg := &config.AppConfig{}
		cfg.Services = "http,reaper"
		cfg.Auth.TokenSecret = "secret"
		require.NoError(t, ValidateServiceConfig(cfg))
	})
}

func TestGetEnabledServices(t *testing.T) {
	assert.Empty(t, GetEnabledServices(nil))

	cfg := &config.AppConfig{}
	cfg.Services = "reaper"
	assert.Equal(t, []string{"reaper"}, GetEnabledServices(cfg))

	cfg.Services = "bogus"
	assert.Empty(t, GetEnabledServices(cfg))
}
