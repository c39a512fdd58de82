package session

// Config holds the session used by CLI commands.
type Config struct {
	// Token is a signed session token. Empty runs commands as a guest.
	Token string `mapstructure:"token" default:""`
	// Secret verifies Token. It usually matches server.jwt_secret.
	Secret string `mapstructure:"secret" default:""`
}
