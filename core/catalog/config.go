package catalog

import "time"

// Config holds configuration for the static item catalog.
type Config struct {
	// Source selects where the catalog is read from (file or object).
	Source string `mapstructure:"source" default:"file"`
	// Path is the items.json path of the file source.
	Path string `mapstructure:"path" default:"data/items.json"`
	// Object is the object name of the object source, read from the storage bucket.
	Object string `mapstructure:"object" default:"items.json"`
	// CacheTTLSeconds is how long a loaded catalog is reused. Zero reloads on every request.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}

// CacheTTL returns the configured TTL as a duration.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
