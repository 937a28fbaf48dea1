package dashboard

import (
	"time"

	"duit-backend/internal/middleware"
	"duit-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// GetSummary GET /api/v1/dashboard/summary
func (h *Handlers) GetSummary(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	data, err := h.Service.GetSummary(c.Context(), userID, time.Now())
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Dashboard summary fetched successfully", data, nil)
}
