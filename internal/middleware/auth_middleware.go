package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prepdeck/interview-api/internal/service"
)

const (
	localUserID    = "userID"
	localUserEmail = "userEmail"
)

// Auth validates the Bearer token and stores the caller identity in the
// request locals. Handlers behind it read the identity via UserID.
func Auth(tokens *service.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "No token provided")
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		c.Locals(localUserID, claims.UserID)
		c.Locals(localUserEmail, claims.Email)
		return c.Next()
	}
}

// UserID returns the authenticated caller's id set by Auth.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := c.Locals(localUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}
	return id, nil
}
