package assets

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"duit-backend/internal/domain"
)

// Settlement modes and input units.
const (
	SettleFull    = "full"
	SettlePartial = "partial"

	UnitCurrency = "currency"
	UnitUnits    = "units"
)

// SettleInput is one settlement action against a debt or receivable.
type SettleInput struct {
	Mode              string     `json:"mode"`
	Unit              string     `json:"unit"`
	Amount            float64    `json:"amount"`
	RecordTransaction bool       `json:"record_transaction"`
	CategoryID        *uuid.UUID `json:"category_id"`
}

// SettleOutcome is the computed state transition before it is applied.
type SettleOutcome struct {
	PayAmount   float64 `json:"pay_amount"`
	NewValue    float64 `json:"new_value"`
	NewQuantity float64 `json:"new_quantity"`
}

// Validate rejects inputs that must never reach the database: bad mode,
// non-positive partial amount, recording without a category.
func (in SettleInput) Validate() error {
	if in.Mode != SettleFull && in.Mode != SettlePartial {
		return ErrInvalidSettleMode
	}
	if in.Mode == SettlePartial && in.Amount <= 0 {
		return ErrAmountRequired
	}
	if in.RecordTransaction && in.CategoryID == nil {
		return ErrCategoryRequired
	}
	return nil
}

// ComputeSettlement derives the new balance for a settlement payment.
// Overpayment is not capped: the remaining value and quantity clamp at
// exactly zero, never negative, while PayAmount records the full input.
func ComputeSettlement(a *domain.Asset, in SettleInput) (SettleOutcome, error) {
	if !a.Settleable() {
		return SettleOutcome{}, ErrNotSettleable
	}
	if err := in.Validate(); err != nil {
		return SettleOutcome{}, err
	}

	value := decimal.NewFromFloat(a.Value)
	qty := decimal.Zero
	if a.Quantity != nil {
		qty = decimal.NewFromFloat(*a.Quantity)
	}
	price := decimal.Zero
	if a.CurrentPrice != nil {
		price = decimal.NewFromFloat(*a.CurrentPrice)
	}

	if in.Mode == SettleFull {
		return SettleOutcome{
			PayAmount:   value.InexactFloat64(),
			NewValue:    0,
			NewQuantity: 0,
		}, nil
	}

	input := decimal.NewFromFloat(in.Amount)

	if in.Unit == UnitUnits {
		if !a.UnitDenominated || !price.IsPositive() {
			return SettleOutcome{}, ErrUnitPriceUnavailable
		}
		newQty := decimal.Max(decimal.Zero, qty.Sub(input))
		return SettleOutcome{
			PayAmount:   input.Mul(price).InexactFloat64(),
			NewValue:    newQty.Mul(price).InexactFloat64(),
			NewQuantity: newQty.InexactFloat64(),
		}, nil
	}

	newValue := decimal.Max(decimal.Zero, value.Sub(input))
	newQty := qty
	if a.UnitDenominated && price.IsPositive() {
		newQty = newValue.Div(price)
	}
	return SettleOutcome{
		PayAmount:   input.InexactFloat64(),
		NewValue:    newValue.InexactFloat64(),
		NewQuantity: newQty.InexactFloat64(),
	}, nil
}
