// Package server holds the HTTP server configuration.
//
// While cmd/start handles the server startup, this package defines the settings it reads:
// the listen port, the API key, the JWT secret used to resolve depot owners, the roster file and
// the shutdown budget used to flush unsynced depot changes.
package server
