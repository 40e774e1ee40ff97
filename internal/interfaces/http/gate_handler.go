package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/remodj/billing-api/internal/application/dto"
	appgate "github.com/remodj/billing-api/internal/application/gate"
	"github.com/remodj/billing-api/internal/domain"
)

// GateHandler handles the billing-screen access gate.
type GateHandler struct {
	uc *appgate.UseCase
}

// NewGateHandler builds the handler.
func NewGateHandler(uc *appgate.UseCase) *GateHandler {
	return &GateHandler{uc: uc}
}

// Unlock exchanges the 4-digit code for a session token.
// POST /api/gate/unlock
func (h *GateHandler) Unlock(c *fiber.Ctx) error {
	var in dto.UnlockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	token, err := h.uc.Unlock(in.Code)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			// Same retry message the billing modal shows on a wrong key.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CODE", Message: "Invalid secret key. Please try again."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.UnlockResponse{Token: token})
}
