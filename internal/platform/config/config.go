// Copyright (c) 2026 NitikBatik. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. In development a local
'.env' file is loaded first with 'joho/godotenv'.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (API client, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// # Configuration Schema

// Config holds all runtime configuration for the storefront server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Upstream NitikBatik REST backend
	APIBaseURL string        `env:"API_BASE_URL" envDefault:"http://localhost:8081/api"`
	APITimeout time.Duration `env:"API_TIMEOUT"  envDefault:"30s"`

	// Persisted session cookie
	SessionCookieName  string        `env:"SESSION_COOKIE_NAME"  envDefault:"auth-storage"`
	SessionFallbackTTL time.Duration `env:"SESSION_FALLBACK_TTL" envDefault:"24h"`
	SecureCookies      bool          `env:"SECURE_COOKIES"       envDefault:"false"`

	// Key-Value store for the token revocation list. Empty means in-memory.
	RedisURL string `env:"REDIS_URL"`

	// WorkspaceIdleTTL is how long an untouched visitor workspace is kept.
	WorkspaceIdleTTL time.Duration `env:"WORKSPACE_IDLE_TTL" envDefault:"30m"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// A missing .env file is normal outside development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read .env file: %w", err)
	}

	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.APITimeout <= 0 {
		return nil, fmt.Errorf("config: API_TIMEOUT must be positive, got %s", cfg.APITimeout)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
