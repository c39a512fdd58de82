package kv

// Config holds configuration for the local persistent key-value store.
type Config struct {
	// Driver selects the backend (file, redis, memory).
	Driver string `mapstructure:"driver" default:"file"`
	// Dir is the data directory of the file driver.
	Dir string `mapstructure:"dir" default:".planner"`
	// Compress enables lz4 compression of file driver values.
	Compress bool `mapstructure:"compress" default:"true"`
	// RedisAddr is the host:port of the redis driver.
	RedisAddr string `mapstructure:"redis_addr" default:"localhost:6379"`
	// RedisPassword authenticates against redis.
	RedisPassword string `mapstructure:"redis_password" default:""`
	// RedisDB selects the redis logical database.
	RedisDB int `mapstructure:"redis_db" default:"0"`
	// Prefix namespaces every key written by this process.
	Prefix string `mapstructure:"prefix" default:"planner:"`
}
