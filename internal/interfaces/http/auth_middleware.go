package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/remodj/billing-api/internal/application/dto"
	"github.com/remodj/billing-api/pkg/jwt"
)

// Locals key for the gate session ID in Fiber.
const LocalSessionID = "session_id"

// GateMiddleware validates the Bearer session token issued by the unlock
// endpoint and stores the session ID in c.Locals. It only proves the caller
// passed the 4-digit gate; it is UI gating, not an authentication boundary.
func GateMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}
		sessionID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		c.Locals(LocalSessionID, sessionID)
		return c.Next()
	}
}

// GetSessionID returns the gate session ID from the context (after GateMiddleware).
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
