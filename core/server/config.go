package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// JWTSecret verifies session tokens. Empty means every request is a guest.
	JWTSecret string `mapstructure:"jwt_secret" default:""`
	// RosterPath is the operator roster JSON served by the roster feature.
	RosterPath string `mapstructure:"roster_path" default:"data/operators.json"`
	// ShutdownTimeoutSeconds bounds the final flush of pending depot changes.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"10"`
}

// ShutdownTimeout returns the shutdown flush budget, defaulting to ten seconds.
func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// SessionsEnabled reports whether bearer tokens are verified.
func (c Config) SessionsEnabled() bool {
	return c.JWTSecret != ""
}
