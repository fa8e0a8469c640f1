package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

type Config struct {
	Port        string `env:"PORT,default=8080"`
	GatewayPort string `env:"GATEWAY_PORT,default=8082"`
	AppURL      string `env:"APP_URL,default=http://localhost:5173"`
	CORSOrigin  string `env:"CORS_ORIGIN,default=http://localhost:5173"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`

	AuthBaseURL   string        `env:"AUTH_BASE_URL,default=http://localhost:8082/api/auth"`
	AuthTimeout   time.Duration `env:"AUTH_TIMEOUT,default=0s"`
	AuthRateLimit float64       `env:"AUTH_RATE_LIMIT,default=1"`
	AuthRateBurst int           `env:"AUTH_RATE_BURST,default=5"`

	StorageDriver string `env:"STORAGE_DRIVER,default=memory"`
	StorageFile   string `env:"STORAGE_FILE,default=./data/local-storage.json"`
	DBURL         string `env:"DB_URL"`
	RedisURL      string `env:"REDIS_URL"`

	NotificationTTL    time.Duration `env:"NOTIFICATION_TTL,default=4s"`
	SessionIdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT,default=24h"`
	SessionSweep       string        `env:"SESSION_SWEEP,default=@every 1m"`
	SecureCookies      bool          `env:"SECURE_COOKIES,default=false"`
	MediaDir           string        `env:"MEDIA_DIR,default=./media"`

	StripeSecretKey     string `env:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`

	// Dev gateway only.
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,default=24h"`
}

// LoadEnv reads .env when present, then decodes the environment.
func LoadEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found. Using system environment variables.")
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the chosen storage driver has what it needs.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageMemory:
	case StorageFile:
		if c.StorageFile == "" {
			return errors.New("STORAGE_FILE is required for the file storage driver")
		}
	case StoragePostgres:
		if c.DBURL == "" {
			return errors.New("DB_URL is required for the postgres storage driver")
		}
	case StorageRedis:
		if c.RedisURL == "" {
			return errors.New("REDIS_URL is required for the redis storage driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	return nil
}

// RequireJWTSecret is checked by the dev gateway, which signs tokens.
func (c *Config) RequireJWTSecret() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required to run the auth gateway")
	}
	return nil
}
