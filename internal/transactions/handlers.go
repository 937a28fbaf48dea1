package transactions

import (
	"errors"

	"duit-backend/internal/middleware"
	"duit-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// ListTransactions GET /api/v1/transactions?month=YYYY-MM&type=expense&category_id=...
func (h *Handlers) ListTransactions(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	f := ListFilter{
		Month: c.Query("month"),
		Type:  c.Query("type"),
	}
	if raw := c.Query("category_id"); raw != "" {
		catID, err := uuid.Parse(raw)
		if err != nil {
			return response.Error(c, "Invalid category ID format (must be a valid UUID)", 400, nil)
		}
		f.CategoryID = &catID
	}

	data, err := h.Service.ListTransactions(c.Context(), userID, f)
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Transactions fetched successfully", data, nil)
}

// CreateTransaction POST /api/v1/transactions
func (h *Handlers) CreateTransaction(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	var in CreateInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}

	t, err := h.Service.CreateTransaction(c.Context(), userID, in)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidType),
			errors.Is(err, ErrInvalidAmount),
			errors.Is(err, ErrInvalidDate),
			errors.Is(err, ErrCategoryRequired),
			errors.Is(err, ErrAssetRequired):
			return response.Error(c, err.Error(), 400, nil)
		default:
			return response.Error(c, "Internal Server Error", 500, nil)
		}
	}
	return response.SuccessCreated(c, "Transaction created successfully", t, nil)
}

// DeleteTransaction DELETE /api/v1/transactions/:id
func (h *Handlers) DeleteTransaction(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	txID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid transaction ID format (must be a valid UUID)", 400, nil)
	}

	if err := h.Service.DeleteTransaction(c.Context(), userID, txID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return response.Error(c, err.Error(), 404, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Transaction deleted successfully", nil, nil)
}
