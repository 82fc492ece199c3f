package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OwnerIDKey is the fiber locals key holding the authenticated owner id.
const OwnerIDKey = "ownerID"

// Verifier is the credential check the middleware depends on.
type Verifier interface {
	Verify(tokenString string) (uuid.UUID, error)
}

// RequireAuth verifies the Authorization bearer token before any downstream
// handler runs, so unauthenticated requests are rejected before any store
// access. The owner id is stashed in the request locals on success.
func RequireAuth(verifier Verifier, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthorized(c)
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return unauthorized(c)
		}

		ownerID, err := verifier.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			logger.Warn("credential verification failed", zap.Error(err))
			return unauthorized(c)
		}

		c.Locals(OwnerIDKey, ownerID)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": "invalid or missing credential",
	})
}
