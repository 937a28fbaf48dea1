package categories

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

// ListCategories GET /api/v1/categories?type=expense
func (h *Handlers) ListCategories(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	data, err := h.Service.ListCategories(c.Context(), userID, c.Query("type"))
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Categories fetched successfully", data, nil)
}

// CreateCategory POST /api/v1/categories
func (h *Handlers) CreateCategory(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	var in CreateInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}

	cat, err := h.Service.CreateCategory(c.Context(), userID, in)
	if err != nil {
		switch {
		case errors.Is(err, ErrNameRequired), errors.Is(err, ErrInvalidType):
			return response.Error(c, err.Error(), 400, nil)
		default:
			return response.Error(c, "Internal Server Error", 500, nil)
		}
	}
	return response.SuccessCreated(c, "Category created successfully", cat, nil)
}

// DeleteCategory DELETE /api/v1/categories/:id
func (h *Handlers) DeleteCategory(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	catID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid category ID format (must be a valid UUID)", 400, nil)
	}

	if err := h.Service.DeleteCategory(c.Context(), userID, catID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return response.Error(c, err.Error(), 404, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Category deleted successfully", nil, nil)
}
