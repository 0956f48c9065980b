package handlers

import (
	"errors"
	"strconv"

	"sahay/internal/models"
	"sahay/internal/repositories"
	"sahay/internal/services/transfer"
	"sahay/internal/services/user"
	"sahay/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// TransferHandler exposes the transfer lifecycle endpoints.
type TransferHandler struct {
	service transfer.Service
	users   user.Service
}

func NewTransferHandler(s transfer.Service, users user.Service) *TransferHandler {
	return &TransferHandler{service: s, users: users}
}

// SendMoney handles POST /transfers. Flagged transfers are accepted but
// reported with a review notice so the client can walk the user through
// the extra confirmation.
func (h *TransferHandler) SendMoney(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var req transfer.SendRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	sender, err := h.users.GetByID(claims.UserID)
	if err != nil {
		return response.ServerError(c, "failed to load account")
	}

	txn, err := h.service.Send(c.Context(), sender, req)
	if err != nil {
		return transferError(c, err)
	}

	message := "transfer created, awaiting confirmation"
	if txn.Fraud.Flagged {
		message = "transfer flagged for review, additional confirmation required"
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     message,
		"transaction": txn,
	})
}

// Confirm handles POST /transfers/:id/confirm.
func (h *TransferHandler) Confirm(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var req transfer.ConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	txn, err := h.service.Confirm(c.Context(), claims.UserID, c.Params("id"), req)
	if err != nil {
		return transferError(c, err)
	}
	return response.Success(c, "transfer completed", txn)
}

// Cancel handles POST /transfers/:id/cancel.
func (h *TransferHandler) Cancel(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var req struct {
		Reason string `json:"reason"`
	}
	// An empty body is a valid cancel request.
	_ = c.BodyParser(&req)

	txn, err := h.service.Cancel(c.Context(), claims.UserID, c.Params("id"), req.Reason)
	if err != nil {
		return transferError(c, err)
	}
	return response.Success(c, "transfer cancelled", txn)
}

// Get handles GET /transfers/:id.
func (h *TransferHandler) Get(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	txn, err := h.service.Get(c.Context(), claims.UserID, c.Params("id"))
	if err != nil {
		return transferError(c, err)
	}
	return response.Success(c, "transfer retrieved", txn)
}

// List handles GET /transfers with optional status, limit and offset.
func (h *TransferHandler) List(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if offset < 0 {
		offset = 0
	}

	txns, total, err := h.service.List(c.Context(), claims.UserID, c.Query("status"), limit, offset)
	if err != nil {
		return response.ServerError(c, "failed to list transfers")
	}

	return c.JSON(fiber.Map{
		"transactions": txns,
		"total":        total,
		"limit":        limit,
		"offset":       offset,
	})
}

// Stats handles GET /transfers/stats.
func (h *TransferHandler) Stats(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	sender, err := h.users.GetByID(claims.UserID)
	if err != nil {
		return response.ServerError(c, "failed to load account")
	}

	summary, err := h.service.Stats(c.Context(), sender)
	if err != nil {
		return response.ServerError(c, "failed to compute transfer stats")
	}
	return response.Success(c, "transfer stats", summary)
}

// transferError maps service errors onto HTTP statuses.
func transferError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repositories.ErrTransactionNotFound):
		return response.Error(c, fiber.StatusNotFound, "transfer not found")
	case errors.Is(err, transfer.ErrAccountNotActive):
		return response.Error(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, transfer.ErrInvalidAmount),
		errors.Is(err, transfer.ErrLimitExceeded),
		errors.Is(err, transfer.ErrInvalidRecipient):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, transfer.ErrInsufficientBalance):
		return response.Error(c, fiber.StatusPaymentRequired, err.Error())
	case errors.Is(err, transfer.ErrNotConfirmable),
		errors.Is(err, transfer.ErrNotCancellable),
		errors.Is(err, transfer.ErrCancelWindowExpired):
		return response.Error(c, fiber.StatusConflict, err.Error())
	default:
		return response.ServerError(c, "transfer failed")
	}
}
