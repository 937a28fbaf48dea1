package tasks

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

// ListBoard GET /api/v1/tasks
func (h *Handlers) ListBoard(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	board, err := h.Service.ListBoard(c.Context(), userID)
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Tasks fetched successfully", board, nil)
}

// CreateTask POST /api/v1/tasks
func (h *Handlers) CreateTask(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	var in TaskInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}

	t, err := h.Service.CreateTask(c.Context(), userID, in)
	if err != nil {
		return taskError(c, err)
	}
	return response.SuccessCreated(c, "Task created successfully", t, nil)
}

// UpdateTask PUT /api/v1/tasks/:id
func (h *Handlers) UpdateTask(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid task ID format (must be a valid UUID)", 400, nil)
	}

	var in TaskInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}

	t, err := h.Service.UpdateTask(c.Context(), userID, taskID, in)
	if err != nil {
		return taskError(c, err)
	}
	return response.Success(c, "Task updated successfully", t, nil)
}

type moveRequest struct {
	Status string `json:"status"`
}

// MoveTask PATCH /api/v1/tasks/:id/status
func (h *Handlers) MoveTask(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid task ID format (must be a valid UUID)", 400, nil)
	}

	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}

	t, err := h.Service.MoveTask(c.Context(), userID, taskID, req.Status)
	if err != nil {
		return taskError(c, err)
	}
	return response.Success(c, "Task moved successfully", t, nil)
}

// DeleteTask DELETE /api/v1/tasks/:id
func (h *Handlers) DeleteTask(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid task ID format (must be a valid UUID)", 400, nil)
	}

	if err := h.Service.DeleteTask(c.Context(), userID, taskID); err != nil {
		return taskError(c, err)
	}
	return response.Success(c, "Task deleted successfully", nil, nil)
}

func taskError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return response.Error(c, err.Error(), 404, nil)
	case errors.Is(err, ErrTitleRequired),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidPriority):
		return response.Error(c, err.Error(), 400, nil)
	default:
		return response.Error(c, "Internal Server Error", 500, nil)
	}
}
