package assets

import "errors"

var (
	ErrAssetNotFound        = errors.New("Asset not found")
	ErrInvalidAssetType     = errors.New("Invalid asset type")
	ErrNameRequired         = errors.New("Asset name is required")
	ErrNotSettleable        = errors.New("Only debt or receivable assets can be settled")
	ErrInvalidSettleMode    = errors.New("Settlement mode must be full or partial")
	ErrAmountRequired       = errors.New("Settlement amount must be positive")
	ErrCategoryRequired     = errors.New("Category is required when recording a transaction")
	ErrUnitPriceUnavailable = errors.New("Unit price unavailable for unit-based settlement")
	ErrNoPriceFeed          = errors.New("Asset has no price feed reference")
	ErrPriceFeedFailed      = errors.New("Failed to fetch latest price")
)
