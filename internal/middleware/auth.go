package middleware

import (
	"errors"

	"duit-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const userLocal = "user"

var errNoUser = errors.New("no user in session")

// RequireAuth ensures a user is in the session. Returns 401 with standard error format if not.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals(userLocal)
		if user == nil {
			return response.Unauthorized(c, "Unauthorized")
		}
		c.Locals("auth", user)
		return c.Next()
	}
}

// GetUser returns the session user from Locals (nil if not logged in).
func GetUser(c *fiber.Ctx) interface{} {
	return c.Locals(userLocal)
}

// UserID extracts the authenticated user's id from the session user.
// Every data query is scoped by this id.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	user := GetUser(c)
	if user == nil {
		return uuid.Nil, errNoUser
	}
	m, ok := user.(map[string]interface{})
	if !ok {
		return uuid.Nil, errNoUser
	}
	idStr, _ := m["user_id"].(string)
	if idStr == "" {
		return uuid.Nil, errNoUser
	}
	return uuid.Parse(idStr)
}
