// Package config provides configuration management for the depot planner.
//
// It uses Viper for loading configuration from environment variables and an optional .env file.
// Defaults come from the `default` struct tags of each partial configuration.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key, JWT secret
//   - Database: remote depot database (postgres, mysql, sqlite)
//   - Storage: S3/MinIO settings for static game data objects
//   - KV: local persistent key-value store (file, redis, memory)
//   - Catalog: where the item catalog is read from
//   - Depot: debounce window, local storage key, table name
//   - Session: CLI session token
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Depot.DebounceMS)
package config
