package handlers

import (
	"strings"

	applog "tradeyard/internal/log"
	"tradeyard/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth extracts the bearer identity and stores the subject id and
// role in request locals. Missing or unparsable identity is always 401.
func RequireAuth(tokens *services.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return fail(c, fiber.StatusUnauthorized, "authorization header required")
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fail(c, fiber.StatusUnauthorized, "invalid authorization header format")
		}
		claims, err := tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			applog.Security(c, "auth.token.invalid", map[string]any{"reason": err.Error()})
			return fail(c, fiber.StatusUnauthorized, "invalid or expired token")
		}
		c.Locals("userID", claims.Subject)
		c.Locals("role", claims.Role)
		return c.Next()
	}
}

// RequireRole gates an already-authenticated route on a single role.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if callerRole(c) != role {
			applog.Security(c, "access.denied.role", map[string]any{"required": role})
			return fail(c, fiber.StatusForbidden, "insufficient role for this operation")
		}
		return c.Next()
	}
}

func callerID(c *fiber.Ctx) string {
	id, _ := c.Locals("userID").(string)
	return id
}

func callerRole(c *fiber.Ctx) string {
	role, _ := c.Locals("role").(string)
	return role
}
