package handlers

import (
	"errors"
	"strconv"

	"sahay/internal/models"
	"sahay/internal/repositories"
	"sahay/internal/services/user"
	"sahay/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /register.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var input models.RegisterUserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	created, err := h.service.Register(&input)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrEmailTaken),
			errors.Is(err, repositories.ErrPhoneTaken):
			return response.Error(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, user.ErrInvalidInput),
			errors.Is(err, user.ErrWeakPassword):
			return response.BadRequest(c, err.Error())
		default:
			return response.ServerError(c, "Failed to register user")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Account created",
		"user": fiber.Map{
			"id":      created.ID,
			"name":    created.Name,
			"email":   created.Email,
			"upi_id":  created.UpiID,
			"balance": created.Balance,
		},
	})
}

// GetProfile handles GET /me.
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	u, err := h.service.GetByID(claims.UserID)
	if err != nil {
		return response.Error(c, fiber.StatusNotFound, "user not found")
	}

	return c.JSON(fiber.Map{
		"id":                u.ID,
		"name":              u.Name,
		"email":             u.Email,
		"phone":             u.Phone,
		"upi_id":            u.UpiID,
		"balance":           u.Balance,
		"transaction_limit": u.TransactionLimit,
		"daily_limit":       u.DailyLimit,
		"account_status":    u.AccountStatus,
		"accessibility":     u.Accessibility,
	})
}

// GetSettings handles GET /settings/accessibility.
func (h *UserHandler) GetSettings(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	settings, err := h.service.GetSettings(claims.UserID)
	if err != nil {
		return response.ServerError(c, "failed to load settings")
	}
	return response.Success(c, "accessibility settings", settings)
}

// UpdateSettings handles PUT /settings/accessibility.
func (h *UserHandler) UpdateSettings(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var settings models.AccessibilitySettings
	if err := c.BodyParser(&settings); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updated, err := h.service.UpdateSettings(claims.UserID, settings)
	if err != nil {
		return response.ServerError(c, "failed to update settings")
	}
	return response.Success(c, "settings updated", updated)
}

// UpdateAccountStatus handles PUT /admin/users/:id/status.
func (h *UserHandler) UpdateAccountStatus(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.service.UpdateAccountStatus(uint(userID), input.Status); err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidStatus):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, repositories.ErrUserNotFound):
			return response.Error(c, fiber.StatusNotFound, "user not found")
		default:
			return response.ServerError(c, "failed to update account status")
		}
	}
	return response.Success(c, "account status updated", fiber.Map{
		"user_id": userID,
		"status":  input.Status,
	})
}
