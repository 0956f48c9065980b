package handlers

import (
	"errors"

	"sahay/internal/models"
	"sahay/internal/repositories"
	"sahay/internal/services/contact"
	"sahay/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	service contact.Service
}

func NewContactHandler(service contact.Service) *ContactHandler {
	return &ContactHandler{service: service}
}

// Add handles POST /contacts.
func (h *ContactHandler) Add(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var req contact.AddRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	created, err := h.service.Add(claims.UserID, req)
	if err != nil {
		return contactError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "contact added",
		"contact": created,
	})
}

// List handles GET /contacts.
func (h *ContactHandler) List(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	contacts, err := h.service.List(claims.UserID)
	if err != nil {
		return response.ServerError(c, "failed to list contacts")
	}
	return response.Success(c, "trusted contacts", contacts)
}

// Update handles PUT /contacts/:upiId.
func (h *ContactHandler) Update(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var req contact.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updated, err := h.service.Update(claims.UserID, c.Params("upiId"), req)
	if err != nil {
		return contactError(c, err)
	}
	return response.Success(c, "contact updated", updated)
}

// Remove handles DELETE /contacts/:upiId.
func (h *ContactHandler) Remove(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	if err := h.service.Remove(claims.UserID, c.Params("upiId")); err != nil {
		return contactError(c, err)
	}
	return response.Success(c, "contact removed", nil)
}

func contactError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repositories.ErrContactNotFound):
		return response.Error(c, fiber.StatusNotFound, "contact not found")
	case errors.Is(err, repositories.ErrContactExists):
		return response.Error(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, contact.ErrInvalidUpiID),
		errors.Is(err, contact.ErrInvalidRelationship):
		return response.BadRequest(c, err.Error())
	default:
		return response.ServerError(c, "contact operation failed")
	}
}
