// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
// The same Config serves the backend server and the flysnipe CLI.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Timeouts TimeoutConfig
	Logging  LoggingConfig
	App      AppConfig
	Storage  StorageConfig
	Checkout CheckoutConfig
	Client   ClientConfig
	Upgrade  UpgradeConfig
	Metrics  MetricsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// TimeoutConfig holds per-operation deadlines.
type TimeoutConfig struct {
	// Request bounds the handling of one API request on the server
	Request time.Duration `env:"TIMEOUT_REQUEST" envDefault:"5s"`

	// StatusQuery bounds each payment status query made by the upgrade confirmation
	StatusQuery time.Duration `env:"TIMEOUT_STATUS_QUERY" envDefault:"3s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// StorageConfig holds SQLite storage settings.
type StorageConfig struct {
	Path          string        `env:"STORAGE_PATH" envDefault:"data/flysnipe.db"`
	SweepInterval time.Duration `env:"STORAGE_SWEEP_INTERVAL" envDefault:"5m"`
}

// CheckoutConfig holds hosted checkout settings.
type CheckoutConfig struct {
	BaseURL    string        `env:"CHECKOUT_BASE_URL" envDefault:"http://localhost:8080"`
	SessionTTL time.Duration `env:"CHECKOUT_SESSION_TTL" envDefault:"30m"`
}

// ClientConfig holds settings for the CLI's backend client.
type ClientConfig struct {
	BackendURL string        `env:"BACKEND_URL" envDefault:"http://localhost:8080"`
	Timeout    time.Duration `env:"CLIENT_TIMEOUT" envDefault:"10s"`
}

// UpgradeConfig holds the upgrade confirmation polling budget.
type UpgradeConfig struct {
	PollInterval time.Duration `env:"UPGRADE_POLL_INTERVAL" envDefault:"2s"`
	MaxAttempts  int           `env:"UPGRADE_MAX_ATTEMPTS" envDefault:"10"`
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	Enabled bool `env:"METRICS_ENABLED" envDefault:"true"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	positive := []struct {
		name  string
		value time.Duration
	}{
		{"SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout},
		{"SERVER_SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout},
		{"TIMEOUT_REQUEST", cfg.Timeouts.Request},
		{"TIMEOUT_STATUS_QUERY", cfg.Timeouts.StatusQuery},
		{"STORAGE_SWEEP_INTERVAL", cfg.Storage.SweepInterval},
		{"CHECKOUT_SESSION_TTL", cfg.Checkout.SessionTTL},
		{"CLIENT_TIMEOUT", cfg.Client.Timeout},
		{"UPGRADE_POLL_INTERVAL", cfg.Upgrade.PollInterval},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive", p.name)
		}
	}

	if cfg.Upgrade.MaxAttempts < 1 {
		return fmt.Errorf("UPGRADE_MAX_ATTEMPTS must be at least 1, got %d", cfg.Upgrade.MaxAttempts)
	}

	if cfg.Storage.Path == "" {
		return fmt.Errorf("STORAGE_PATH must not be empty")
	}

	if err := validateURL("CHECKOUT_BASE_URL", cfg.Checkout.BaseURL); err != nil {
		return err
	}
	if err := validateURL("BACKEND_URL", cfg.Client.BackendURL); err != nil {
		return err
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

func validateURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", name, raw)
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
