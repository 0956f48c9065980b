package handlers

import (
	"sahay/internal/models"
	"sahay/internal/services/fraud"
	"sahay/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// FraudHandler exposes the read-only risk surface.
type FraudHandler struct {
	service fraud.Service
}

func NewFraudHandler(service fraud.Service) *FraudHandler {
	return &FraudHandler{service: service}
}

// GetStats handles GET /fraud/stats.
func (h *FraudHandler) GetStats(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	stats, err := h.service.GetStats(c.Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "failed to compute fraud stats")
	}
	return response.Success(c, "fraud stats", stats)
}
