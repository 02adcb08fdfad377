// Package config handles configuration for the auth layer, including
// defaults, JSON overlay, and command-line flags.
package config

import (
	"errors"
	"time"
)

// Resolver mode names accepted in ResolverMode.
const (
	ResolverModeRemote  = "remote"
	ResolverModeSession = "session"
)

// Config holds runtime settings for the auth layer.
//
// Fields:
//   - SecretKey: HMAC secret for validating JWTs (HS256). The default is for
//     development only and must be overridden in any real deployment.
//   - ResourceAPIURL: base URL of the resource API (persistence collaborator).
//   - SessionTTL: lifetime of an established session.
//   - RequestTimeout: per-call timeout for resource API requests.
//   - ResolverMode: identity resolution strategy, "remote" (re-validates the
//     token against the resource API on every request) or "session" (trusts
//     locally held session fields after local token validation).
//   - SessionStoreDSN: optional PostgreSQL DSN for the server-side session
//     store. Empty selects the in-memory store.
type Config struct {
	SecretKey       string
	ResourceAPIURL  string
	SessionTTL      time.Duration
	RequestTimeout  time.Duration
	ResolverMode    string
	SessionStoreDSN string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.SecretKey = "your-secret-key-here"
	c.ResourceAPIURL = "http://localhost:8000"
	c.SessionTTL = 3600 * time.Second
	c.RequestTimeout = 10 * time.Second
	c.ResolverMode = ResolverModeRemote
}

// Validate reports configuration errors that must be fatal at startup.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return errors.New("secret key is required")
	}
	if c.ResourceAPIURL == "" {
		return errors.New("resource API URL is required")
	}
	if c.ResolverMode != ResolverModeRemote && c.ResolverMode != ResolverModeSession {
		return errors.New("resolver mode must be \"remote\" or \"session\"")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
