package prices

import (
	"duit-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles price-feed handlers.
type Handlers struct {
	Fetcher Fetcher
}

// GetPrice GET /api/v1/crypto/price?coin_id=bitcoin
func (h *Handlers) GetPrice(c *fiber.Ctx) error {
	coinID := c.Query("coin_id")
	if coinID == "" {
		return response.Error(c, "coin_id is required", 400, nil)
	}

	price, err := h.Fetcher.FetchPrice(c.Context(), coinID)
	if err != nil {
		return response.Error(c, "Failed to fetch latest price", 502, nil)
	}
	return response.Success(c, "Price fetched successfully", fiber.Map{
		"coin_id": coinID,
		"price":   price,
	}, nil)
}
