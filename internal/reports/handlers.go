package reports

import (
	"strconv"
	"time"

	"duit-backend/internal/middleware"
	"duit-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// GetNetWorth GET /api/v1/reports/net-worth
func (h *Handlers) GetNetWorth(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	data, err := h.Service.GetNetWorth(c.Context(), userID)
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Net worth fetched successfully", data, nil)
}

// GetSummary GET /api/v1/reports/summary?months=6
func (h *Handlers) GetSummary(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	months := 6
	if raw := c.Query("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 60 {
			return response.Error(c, "months must be a number between 1 and 60", 400, nil)
		}
		months = n
	}

	data, err := h.Service.GetSummary(c.Context(), userID, months, time.Now())
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Report summary fetched successfully", data, nil)
}
