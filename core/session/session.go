package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned for tokens that fail verification or carry no user.
	ErrInvalidToken = errors.New("session: invalid token")
	// ErrNoSecret is returned when signing or verifying without a secret.
	ErrNoSecret = errors.New("session: empty secret")
)

// Resolver resolves the identity that owns remote depot rows.
// An empty user id with a nil error means there is no session (guest mode).
type Resolver interface {
	UserID(ctx context.Context) (string, error)
}

// Static always resolves to the same user id. Static("") is a guest.
type Static string

func (s Static) UserID(context.Context) (string, error) { return string(s), nil }

// Anonymous never has a session.
var Anonymous Resolver = Static("")

// Claims are the registered JWT claims plus the depot owner.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Generate signs an HS256 token for userID valid for ttl.
func Generate(secret, userID, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrNoSecret
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Parse verifies tokenString and returns its user id.
func Parse(secret, tokenString string) (string, error) {
	if secret == "" {
		return "", ErrNoSecret
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.UserID != "" {
		return claims.UserID, nil
	}
	if claims.Subject != "" {
		return claims.Subject, nil
	}
	return "", ErrInvalidToken
}

// Token resolves the user id from a signed token on every call, so an expired
// token turns into an error instead of a stale identity.
type Token struct {
	Secret string
	Value  string
}

func (t Token) UserID(context.Context) (string, error) {
	if t.Value == "" {
		return "", nil
	}
	return Parse(t.Secret, t.Value)
}

// FromConfig returns the CLI resolver for cfg.
func FromConfig(cfg Config) Resolver {
	if cfg.Token == "" {
		return Anonymous
	}
	return Token{Secret: cfg.Secret, Value: cfg.Token}
}
