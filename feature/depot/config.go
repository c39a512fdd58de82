package depot

import "time"

// Config holds configuration for the depot sync engine.
type Config struct {
	// DebounceMS is the quiet window before pending changes are pushed.
	DebounceMS int `mapstructure:"debounce_ms" default:"5000"`
	// LocalKey is the local storage key of the depot snapshot.
	LocalKey string `mapstructure:"local_key" default:"v3_depot"`
	// Table is the remote table holding depot rows.
	Table string `mapstructure:"table" default:"depot"`
	// SyncTimeoutSeconds bounds one debounced remote write.
	SyncTimeoutSeconds int `mapstructure:"sync_timeout_seconds" default:"30"`
}

// DebounceDelay returns the quiet window, defaulting to five seconds.
func (c Config) DebounceDelay() time.Duration {
	if c.DebounceMS <= 0 {
		return DefaultDebounceDelay
	}
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// SyncTimeout returns the debounced write budget, defaulting to thirty seconds.
func (c Config) SyncTimeout() time.Duration {
	if c.SyncTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.SyncTimeoutSeconds) * time.Second
}
