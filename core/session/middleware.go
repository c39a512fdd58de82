package session

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// LocalUserID is the fiber Locals key holding the resolved user id.
const LocalUserID = "user_id"

// Middleware resolves the bearer token into c.Locals(LocalUserID).
// Requests without an Authorization header continue as guests; malformed or
// invalid tokens are rejected.
func Middleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || secret == "" {
			return c.Next()
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "expected Bearer <token>"})
		}

		userID, err := Parse(secret, strings.TrimSpace(parts[1]))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// UserID returns the user id stored by Middleware, or "" for guests.
func UserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}
