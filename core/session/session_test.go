package session

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := Generate("s3cret", "user-1", "planner", time.Hour)
	require.NoError(t, err)

	userID, err := Parse("s3cret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	_, err = Parse("other", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Expired(t *testing.T) {
	token, err := Generate("s3cret", "user-1", "planner", -time.Minute)
	require.NoError(t, err)

	_, err = Parse("s3cret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestEmptySecret(t *testing.T) {
	_, err := Generate("", "user-1", "planner", time.Hour)
	assert.ErrorIs(t, err, ErrNoSecret)
	_, err = Parse("", "x")
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestResolvers(t *testing.T) {
	ctx := context.Background()

	id, err := Anonymous.UserID(ctx)
	assert.NoError(t, err)
	assert.Empty(t, id)

	id, err = Static("user-2").UserID(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "user-2", id)

	token, err := Generate("s3cret", "user-3", "planner", time.Hour)
	require.NoError(t, err)
	id, err = FromConfig(Config{Token: token, Secret: "s3cret"}).UserID(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "user-3", id)

	id, err = FromConfig(Config{}).UserID(ctx)
	assert.NoError(t, err)
	assert.Empty(t, id)
}

func TestMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(Middleware("s3cret"))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.SendString(UserID(c))
	})

	token, err := Generate("s3cret", "user-4", "planner", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"Guest", "", fiber.StatusOK},
		{"Valid", "Bearer " + token, fiber.StatusOK},
		{"Malformed", "Token abc", fiber.StatusUnauthorized},
		{"Invalid", "Bearer abc", fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
