package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/api", cfg.API.Prefix)
	assert.Equal(t, []string{"/run", "/submit"}, cfg.Auth.StudentActions)
	assert.True(t, cfg.Auth.AmbiguousFallback)
	assert.Zero(t, cfg.API.Timeout(), "no client-side timeout unless configured")
	assert.Equal(t, 0.6, cfg.Release.Alpha)
	assert.Equal(t, 0.4, cfg.Release.Beta)
	assert.Equal(t, 10.0, cfg.Release.Gamma)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_PREFIX", "/v2")
	t.Setenv("AUTH_STUDENT_ACTIONS", "/run, /submit, /retest")
	t.Setenv("AUTH_AMBIGUOUS_FALLBACK", "false")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "15")
	t.Setenv("CRED_BACKEND", "redis")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/v2", cfg.API.Prefix)
	assert.Equal(t, []string{"/run", "/submit", "/retest"}, cfg.Auth.StudentActions)
	assert.False(t, cfg.Auth.AmbiguousFallback)
	assert.Equal(t, 15, cfg.API.TimeoutSeconds)
	assert.Equal(t, "redis", cfg.Credentials.Backend)
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}
