package assets

import (
	"testing"

	"duit-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debtAsset(value float64) *domain.Asset {
	return &domain.Asset{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Name:   "Bank loan",
		Type:   domain.AssetDebt,
		Value:  value,
	}
}

func unitDebtAsset(qty, price float64) *domain.Asset {
	value := CurrentValue(qty, price)
	return &domain.Asset{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		Name:            "ETH loan",
		Type:            domain.AssetDebt,
		Value:           value,
		Quantity:        &qty,
		CurrentPrice:    &price,
		UnitDenominated: true,
	}
}

func TestComputeSettlement_FullClearsBalance(t *testing.T) {
	a := debtAsset(1_000_000)
	out, err := ComputeSettlement(a, SettleInput{Mode: SettleFull})
	require.NoError(t, err)
	assert.Equal(t, 1_000_000.0, out.PayAmount)
	assert.Equal(t, 0.0, out.NewValue)
	assert.Equal(t, 0.0, out.NewQuantity)
}

func TestComputeSettlement_FullUnitDenominated(t *testing.T) {
	a := unitDebtAsset(2, 50_000_000)
	out, err := ComputeSettlement(a, SettleInput{Mode: SettleFull})
	require.NoError(t, err)
	assert.Equal(t, 100_000_000.0, out.PayAmount)
	assert.Equal(t, 0.0, out.NewValue)
	assert.Equal(t, 0.0, out.NewQuantity)
}

func TestComputeSettlement_PartialCurrency(t *testing.T) {
	a := &domain.Asset{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Name:   "Loan to friend",
		Type:   domain.AssetReceivable,
		Value:  200_000,
	}
	out, err := ComputeSettlement(a, SettleInput{
		Mode: SettlePartial, Unit: UnitCurrency, Amount: 50_000,
	})
	require.NoError(t, err)
	assert.Equal(t, 50_000.0, out.PayAmount)
	assert.Equal(t, 150_000.0, out.NewValue)
}

func TestComputeSettlement_PartialCurrencyRecomputesQuantity(t *testing.T) {
	a := unitDebtAsset(2, 50_000_000)
	out, err := ComputeSettlement(a, SettleInput{
		Mode: SettlePartial, Unit: UnitCurrency, Amount: 25_000_000,
	})
	require.NoError(t, err)
	assert.Equal(t, 25_000_000.0, out.PayAmount)
	assert.Equal(t, 75_000_000.0, out.NewValue)
	assert.InDelta(t, 1.5, out.NewQuantity, 1e-9)
}

func TestComputeSettlement_PartialUnits(t *testing.T) {
	a := unitDebtAsset(2, 50_000_000)
	out, err := ComputeSettlement(a, SettleInput{
		Mode: SettlePartial, Unit: UnitUnits, Amount: 0.5,
	})
	require.NoError(t, err)
	assert.Equal(t, 25_000_000.0, out.PayAmount)
	assert.Equal(t, 75_000_000.0, out.NewValue)
	assert.InDelta(t, 1.5, out.NewQuantity, 1e-9)
}

// Paying currency X and paying X/price units must land on the same balance.
func TestComputeSettlement_UnitCurrencyConsistency(t *testing.T) {
	byCurrency, err := ComputeSettlement(unitDebtAsset(2, 50_000_000), SettleInput{
		Mode: SettlePartial, Unit: UnitCurrency, Amount: 25_000_000,
	})
	require.NoError(t, err)
	byUnits, err := ComputeSettlement(unitDebtAsset(2, 50_000_000), SettleInput{
		Mode: SettlePartial, Unit: UnitUnits, Amount: 0.5,
	})
	require.NoError(t, err)
	assert.InDelta(t, byCurrency.NewValue, byUnits.NewValue, 1e-6)
	assert.InDelta(t, byCurrency.NewQuantity, byUnits.NewQuantity, 1e-9)
}

func TestComputeSettlement_OverpaymentClampsAtZero(t *testing.T) {
	a := debtAsset(100_000)
	out, err := ComputeSettlement(a, SettleInput{
		Mode: SettlePartial, Unit: UnitCurrency, Amount: 150_000,
	})
	require.NoError(t, err)
	// Full input is recorded as paid, the balance just stops at zero.
	assert.Equal(t, 150_000.0, out.PayAmount)
	assert.Equal(t, 0.0, out.NewValue)
}

func TestComputeSettlement_OverpaymentUnitsClampsAtZero(t *testing.T) {
	a := unitDebtAsset(1, 10_000)
	out, err := ComputeSettlement(a, SettleInput{
		Mode: SettlePartial, Unit: UnitUnits, Amount: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 30_000.0, out.PayAmount)
	assert.Equal(t, 0.0, out.NewValue)
	assert.Equal(t, 0.0, out.NewQuantity)
}

func TestComputeSettlement_NotSettleable(t *testing.T) {
	a := &domain.Asset{Type: domain.AssetCash, Value: 500}
	_, err := ComputeSettlement(a, SettleInput{Mode: SettleFull})
	assert.Equal(t, ErrNotSettleable, err)
}

func TestComputeSettlement_UnitsWithoutPrice(t *testing.T) {
	a := debtAsset(100_000) // not unit-denominated
	_, err := ComputeSettlement(a, SettleInput{
		Mode: SettlePartial, Unit: UnitUnits, Amount: 1,
	})
	assert.Equal(t, ErrUnitPriceUnavailable, err)
}

func TestSettleInput_Validate(t *testing.T) {
	catID := uuid.New()

	assert.Equal(t, ErrInvalidSettleMode, SettleInput{Mode: "half"}.Validate())
	assert.Equal(t, ErrAmountRequired, SettleInput{Mode: SettlePartial, Unit: UnitCurrency}.Validate())
	assert.Equal(t, ErrAmountRequired, SettleInput{Mode: SettlePartial, Unit: UnitCurrency, Amount: -5}.Validate())
	assert.Equal(t, ErrCategoryRequired, SettleInput{Mode: SettleFull, RecordTransaction: true}.Validate())

	assert.NoError(t, SettleInput{Mode: SettleFull}.Validate())
	assert.NoError(t, SettleInput{Mode: SettleFull, RecordTransaction: true, CategoryID: &catID}.Validate())
	assert.NoError(t, SettleInput{Mode: SettlePartial, Unit: UnitCurrency, Amount: 10}.Validate())
}
