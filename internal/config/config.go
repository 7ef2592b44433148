// Package config assembles the client configuration from environment
// variables and command-line flags. Sources are merged in priority order
// (env over flags over defaults) with mergo and validated before use.
package config

import (
	"errors"
	"time"
)

// Config is the top-level configuration for the remote-access client.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type Config struct {
	// API holds the settings of the outbound transport layer.
	API API `envPrefix:"API_"`

	// Storage holds the local credential cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Session holds refresh and keep-alive timer settings.
	Session Session `envPrefix:"SESSION_"`
}

// API holds network settings used by the client transport layer.
type API struct {
	// Address is the base URL of the remote-access server
	// (e.g. "https://remote.example.com/api").
	// Env: API_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the default timeout for outbound requests
	// (e.g. "30s", "1m").
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds local persistence settings.
type Storage struct {
	// DSN is the SQLite connection string of the local credential cache
	// (e.g. "file:remote-access.db"). The cache replaces the browser
	// client's localStorage: it keeps the composite login salt and the
	// derived secret key, never the password.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`
}

// Session holds background session maintenance settings.
type Session struct {
	// RefreshInterval defines how often the background worker silently
	// refreshes the session cookies (e.g. "5m").
	// Env: SESSION_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

var (
	// ErrNoAddress is returned when no server address was configured.
	ErrNoAddress = errors.New("server address is required")
	// ErrBadTimeout is returned for a zero or negative request timeout.
	ErrBadTimeout = errors.New("request timeout must be positive")
)

func (c *Config) validate() error {
	if c.API.Address == "" {
		return ErrNoAddress
	}
	if c.API.RequestTimeout <= 0 {
		return ErrBadTimeout
	}
	return nil
}

// defaults returns the baseline configuration merged in last, so every
// field has a workable value even when neither env nor flags set it.
func defaults() *Config {
	return &Config{
		API: API{
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			DSN: "file:remote-access.db",
		},
		Session: Session{
			RefreshInterval: 5 * time.Minute,
		},
	}
}
