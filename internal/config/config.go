package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultJWTSecret is only accepted when APP_ENV is development.
const DefaultJWTSecret = "change-me"

type Config struct {
	AppEnv         string `env:"APP_ENV" envDefault:"development"`
	Port           string `env:"PORT" envDefault:"5000"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`

	DatabaseURL string        `env:"DATABASE_URL"`
	RedisURL    string        `env:"REDIS_URL"`
	CacheTTL    time.Duration `env:"CACHE_TTL" envDefault:"30s"`

	JWTSecret string        `env:"JWT_SECRET" envDefault:"change-me"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"1h"`

	LoginRateLimit time.Duration `env:"LOGIN_RATE_LIMIT" envDefault:"2s"`

	LeaderboardPushInterval time.Duration `env:"LEADERBOARD_PUSH_INTERVAL" envDefault:"10s"`
}

// ClientConfig configures the terminal dashboard.
type ClientConfig struct {
	AppEnv        string        `env:"APP_ENV" envDefault:"development"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"warn"`
	APIBaseURL    string        `env:"API_BASE_URL" envDefault:"http://localhost:5000"`
	DemoFallback  bool          `env:"DEMO_FALLBACK" envDefault:"true"`
	Timeout       time.Duration `env:"CLIENT_TIMEOUT" envDefault:"5s"`
	MaxRetries    uint64        `env:"CLIENT_MAX_RETRIES" envDefault:"2"`
	RetryInterval time.Duration `env:"CLIENT_RETRY_INTERVAL" envDefault:"200ms"`
	Email         string        `env:"DASHBOARD_EMAIL"`
	Password      string        `env:"DASHBOARD_PASSWORD"`
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.CacheTTL <= 0 {
		return nil, fmt.Errorf("invalid CACHE_TTL: must be positive, got %s", cfg.CacheTTL)
	}
	if cfg.LeaderboardPushInterval <= 0 {
		return nil, fmt.Errorf("invalid LEADERBOARD_PUSH_INTERVAL: must be positive, got %s", cfg.LeaderboardPushInterval)
	}
	if !cfg.IsDevelopment() && (cfg.JWTSecret == "" || cfg.JWTSecret == DefaultJWTSecret) {
		return nil, errors.New("JWT_SECRET must be set outside development")
	}

	return cfg, nil
}

func LoadClient() (*ClientConfig, error) {
	_ = godotenv.Load()

	cfg := &ClientConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse client config: %w", err)
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Origins splits ALLOWED_ORIGINS on commas.
func (c *Config) Origins() []string {
	var origins []string
	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
