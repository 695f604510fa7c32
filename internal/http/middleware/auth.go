package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"safesign/internal/auth"
)

const (
	// UserIDLocalKey is the context locals key holding the verified user id.
	UserIDLocalKey = "user_id"
	// AdminLocalKey is the context locals key holding the admin flag.
	AdminLocalKey = "is_admin"
)

// Auth verifies the Bearer token on incoming requests and stores the
// caller's identity in context locals. Requests without a valid token
// are rejected with 401.
func Auth(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "malformed authorization header")
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(UserIDLocalKey, claims.Subject)
		c.Locals(AdminLocalKey, claims.Admin)

		return c.Next()
	}
}
