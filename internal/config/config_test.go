package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.Equal(t, 10*time.Second, cfg.LeaderboardPushInterval)
	assert.Equal(t, 2*time.Second, cfg.LoginRateLimit)
	assert.True(t, cfg.IsDevelopment())
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "s3cr3t-for-prod")
	t.Setenv("PORT", "9090")
	t.Setenv("CACHE_TTL", "2m")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Origins())
}

func TestLoad_RejectsBadDurations(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("CACHE_TTL", "0s")
	_, err = Load()
	assert.ErrorContains(t, err, "CACHE_TTL")
}

func TestLoadClient(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://api.test:5000/")
	t.Setenv("DEMO_FALLBACK", "false")

	cfg, err := LoadClient()
	require.NoError(t, err)

	assert.Equal(t, "http://api.test:5000", cfg.APIBaseURL)
	assert.False(t, cfg.DemoFallback)
	assert.Equal(t, uint64(2), cfg.MaxRetries)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoad_RequiresJWTSecretOutsideDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", DefaultJWTSecret)
	_, err = Load()
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "s3cr3t-for-prod")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t-for-prod", cfg.JWTSecret)
}

func TestLoad_DevelopmentAcceptsDefaultSecret(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", DefaultJWTSecret)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
}
