package budgets

import (
	"errors"
	"time"

	"duit-backend/internal/middleware"
	"duit-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// ListBudgets GET /api/v1/budgets
func (h *Handlers) ListBudgets(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	data, err := h.Service.ListBudgets(c.Context(), userID, time.Now())
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Budgets fetched successfully", data, nil)
}

// CreateBudget POST /api/v1/budgets
func (h *Handlers) CreateBudget(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	var in CreateInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}

	b, err := h.Service.CreateBudget(c.Context(), userID, in)
	if err != nil {
		switch {
		case errors.Is(err, ErrNameRequired),
			errors.Is(err, ErrInvalidAmount),
			errors.Is(err, ErrCategoryRequired):
			return response.Error(c, err.Error(), 400, nil)
		default:
			return response.Error(c, "Internal Server Error", 500, nil)
		}
	}
	return response.SuccessCreated(c, "Budget created successfully", b, nil)
}

// DeleteBudget DELETE /api/v1/budgets/:id
func (h *Handlers) DeleteBudget(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	budgetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid budget ID format (must be a valid UUID)", 400, nil)
	}

	if err := h.Service.DeleteBudget(c.Context(), userID, budgetID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return response.Error(c, err.Error(), 404, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Budget deleted successfully", nil, nil)
}
