package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestParseDefaults(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "http://localhost:8080", cfg.HTTP.BaseURL)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, "goldengigs", cfg.Postgres.Name)
	assert.True(t, cfg.Postgres.RunMigrationsOnStart)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, 5*time.Minute, cfg.Reaper.Interval)
	assert.True(t, cfg.IsHTTPServerEnabled())
	assert.True(t, cfg.IsReaperEnabled())
}

func TestParseServices(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []ServiceMode
		wantErr bool
	}{
		{name: "single service", input: "http", want: []ServiceMode{ServiceModeHTTP}},
		{name: "multiple services", input: "http,reaper", want: []ServiceMode{ServiceModeHTTP, ServiceModeReaper}},
		{name: "whitespace tolerated", input: " http , reaper ", want: []ServiceMode{ServiceModeHTTP, ServiceModeReaper}},
		{name: "empty string", input: "", wantErr: true},
		{name: "invalid name", input: "http,scheduler", wantErr: true},
		{name: "only commas", input: ",,", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseServices(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for _, mode := range tt.want {
				assert.True(t, got[mode], "expected %s enabled", mode)
			}
		})
	}
}

func TestAuthConfigSanitize(t *testing.T) {
	cfg := AuthConfig{
		SessionTTL:       time.Second,
		TokenSecret:      "  secret  ",
		BcryptCost:       99,
		SignupRateLimit:  0,
		SignupRateWindow: 0,
	}
	cfg.Sanitize()

	assert.Equal(t, time.Minute, cfg.SessionTTL)
	assert.Equal(t, "secret", cfg.TokenSecret)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.Equal(t, 1, cfg.SignupRateLimit)
	assert.Equal(t, time.Second, cfg.SignupRateWindow)
}

func TestHTTPConfigSanitize(t *testing.T) {
	cfg := HTTPConfig{
		Addr:         "  ",
		BaseURL:      "https://goldengigs.example/ ",
		CookieDomain: " goldengigs.example ",
	}
	cfg.Sanitize()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "https://goldengigs.example", cfg.BaseURL)
	assert.Equal(t, "goldengigs.example", cfg.CookieDomain)
}

func TestStorageConfigSanitize(t *testing.T) {
	cfg := StorageConfig{
		Region:   " ",
		Bucket:   " resumes ",
		Endpoint: "http://localhost:9000/",
	}
	cfg.Sanitize()

	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, "resumes", cfg.Bucket)
	assert.Equal(t, "http://localhost:9000", cfg.Endpoint)
	assert.True(t, cfg.IsConfigured())

	cfg.Bucket = ""
	assert.False(t, cfg.IsConfigured())
}

func TestReaperConfigSanitize(t *testing.T) {
	cfg := ReaperConfig{Interval: time.Second}
	cfg.Sanitize()
	assert.Equal(t, time.Minute, cfg.Interval)
}

func TestDevEnvironmentDetection(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.True(t, cfg.IsDev)
}
