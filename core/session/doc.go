// Package session resolves the identity that scopes every remote depot operation.
//
// A missing identity is a normal state: the depot then runs local-only (guest mode). Tokens are
// HS256 JWTs carrying a user_id claim. The HTTP server resolves them per request through
// Middleware; CLI commands use the token from configuration through FromConfig.
package session
