package assets

import (
	"github.com/shopspring/decimal"

	"duit-backend/internal/domain"
)

// CurrentValue derives a unit-denominated holding's value: quantity times
// current price, rounded to whole currency units. Zero unless both sides
// are positive.
func CurrentValue(quantity, currentPrice float64) float64 {
	if quantity <= 0 || currentPrice <= 0 {
		return 0
	}
	return decimal.NewFromFloat(quantity).
		Mul(decimal.NewFromFloat(currentPrice)).
		Round(0).
		InexactFloat64()
}

// InitialValue is the cost basis: quantity times buy price, rounded to whole
// currency units. Used for profit/loss display only.
func InitialValue(quantity, buyPrice float64) float64 {
	if quantity <= 0 || buyPrice <= 0 {
		return 0
	}
	return decimal.NewFromFloat(quantity).
		Mul(decimal.NewFromFloat(buyPrice)).
		Round(0).
		InexactFloat64()
}

// ProfitLoss is current value minus cost basis.
func ProfitLoss(quantity, buyPrice, currentPrice float64) float64 {
	return CurrentValue(quantity, currentPrice) - InitialValue(quantity, buyPrice)
}

// UnitMode decides whether a holding carries quantity/price fields.
// Crypto and investment always do; debt and receivable only when explicitly
// flagged as unit-denominated (DeFi-style loans).
func UnitMode(assetType string, flagged bool) bool {
	switch assetType {
	case domain.AssetCrypto, domain.AssetInvestment:
		return true
	case domain.AssetDebt, domain.AssetReceivable:
		return flagged
	default:
		return false
	}
}
