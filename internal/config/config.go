package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// ErrStartupConfigMissing reports a required setting that was not provided.
// The process must not start when Load returns it.
var ErrStartupConfigMissing = errors.New("required configuration missing")

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName                string        `env:"APP_NAME" envDefault:"TaskAPI"`
	AppEnv                 string        `env:"APP_ENV" envDefault:"development"`
	Port                   string        `env:"PORT" envDefault:"3000"`
	LogLevel               string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseURL            string        `env:"DB_URI"`
	JWTSecret              string        `env:"JWT_SECRET"`
	TokenTTL               time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
	RedisURL               string        `env:"REDIS_URL"`
	CORSOrigins            string        `env:"CORS_ORIGINS" envDefault:"https://3-mtt-capstone-project-frontend.vercel.app"`
	PublicDir              string        `env:"PUBLIC_DIR" envDefault:"public"`
	ShutdownPeriod         time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	IdempotencyTTL         time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"24h"`
	LoginAttemptsPerMinute int           `env:"LOGIN_ATTEMPTS_PER_MINUTE" envDefault:"5"`
	BcryptCost             int           `env:"BCRYPT_COST" envDefault:"10"`
}

// Load reads configuration values from the environment and populates a Config instance.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the settings the process cannot run without are present.
func (c Config) Validate() error {
	var missing []string
	if c.DatabaseURL == "" {
		missing = append(missing, "DB_URI")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s must be set", ErrStartupConfigMissing, strings.Join(missing, ", "))
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("invalid TOKEN_TTL %s: must be positive", c.TokenTTL)
	}
	return nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

// IsDev reports whether the app runs in a local development environment.
func (c Config) IsDev() bool {
	switch strings.ToLower(c.AppEnv) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}

// LogValue keeps secrets and connection strings out of log output.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("app_name", c.AppName),
		slog.String("app_env", c.AppEnv),
		slog.String("port", c.Port),
		slog.String("log_level", c.LogLevel),
		slog.Bool("database_configured", c.DatabaseURL != ""),
		slog.Bool("redis_configured", c.RedisURL != ""),
		slog.Duration("token_ttl", c.TokenTTL),
		slog.String("cors_origins", c.CORSOrigins),
	)
}
