package assets

import (
	"errors"

	"duit-backend/internal/middleware"
	"duit-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers bundles asset handlers.
type Handlers struct {
	Service *Service
}

// ListAssets GET /api/v1/assets
func (h *Handlers) ListAssets(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	data, err := h.Service.ListAssets(c.Context(), userID)
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Assets fetched successfully", data.Assets, fiber.Map{
		"total":   data.Total,
		"by_type": data.ByType,
	})
}

// CreateAsset POST /api/v1/assets
func (h *Handlers) CreateAsset(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	var in AssetInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}

	a, err := h.Service.CreateAsset(c.Context(), userID, in)
	if err != nil {
		return assetError(c, err)
	}
	return response.SuccessCreated(c, "Asset created successfully", a, nil)
}

// UpdateAsset PUT /api/v1/assets/:id
func (h *Handlers) UpdateAsset(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	assetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid asset ID format (must be a valid UUID)", 400, nil)
	}

	var in AssetInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}

	a, err := h.Service.UpdateAsset(c.Context(), userID, assetID, in)
	if err != nil {
		return assetError(c, err)
	}
	return response.Success(c, "Asset updated successfully", a, nil)
}

// DeleteAsset DELETE /api/v1/assets/:id
func (h *Handlers) DeleteAsset(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	assetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid asset ID format (must be a valid UUID)", 400, nil)
	}

	if err := h.Service.DeleteAsset(c.Context(), userID, assetID); err != nil {
		return assetError(c, err)
	}
	return response.Success(c, "Asset deleted successfully", nil, nil)
}

// RefreshPrice POST /api/v1/assets/:id/refresh-price
func (h *Handlers) RefreshPrice(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	assetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid asset ID format (must be a valid UUID)", 400, nil)
	}

	a, err := h.Service.RefreshPrice(c.Context(), userID, assetID)
	if err != nil {
		return assetError(c, err)
	}
	return response.Success(c, "Price refreshed successfully", a, nil)
}

// Settle POST /api/v1/assets/:id/settle
func (h *Handlers) Settle(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	assetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid asset ID format (must be a valid UUID)", 400, nil)
	}

	var in SettleInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}

	data, err := h.Service.Settle(c.Context(), userID, assetID, in)
	if err != nil {
		return assetError(c, err)
	}
	return response.Success(c, "Settlement applied successfully", data, nil)
}

// assetError maps service errors to HTTP codes in the standard envelope.
func assetError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrAssetNotFound):
		return response.Error(c, err.Error(), 404, nil)
	case errors.Is(err, ErrInvalidAssetType),
		errors.Is(err, ErrNameRequired),
		errors.Is(err, ErrNotSettleable),
		errors.Is(err, ErrInvalidSettleMode),
		errors.Is(err, ErrAmountRequired),
		errors.Is(err, ErrCategoryRequired),
		errors.Is(err, ErrUnitPriceUnavailable),
		errors.Is(err, ErrNoPriceFeed):
		return response.Error(c, err.Error(), 400, nil)
	case errors.Is(err, ErrPriceFeedFailed):
		return response.Error(c, err.Error(), 502, nil)
	default:
		return response.Error(c, "Internal Server Error", 500, nil)
	}
}
