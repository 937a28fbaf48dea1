package assets

import (
	"testing"

	"duit-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCurrentValue(t *testing.T) {
	assert.Equal(t, 300_000_000.0, CurrentValue(0.5, 600_000_000))
	assert.Equal(t, 0.0, CurrentValue(0, 600_000_000))
	assert.Equal(t, 0.0, CurrentValue(0.5, 0))
	assert.Equal(t, 0.0, CurrentValue(-1, 100))
}

func TestCurrentValue_RoundsToWholeUnits(t *testing.T) {
	// 0.123456 * 999999.99 = 123456.9876... rounds to whole currency
	assert.Equal(t, 123457.0, CurrentValue(0.123456, 999_999.99))
}

func TestInitialValue(t *testing.T) {
	assert.Equal(t, 250_000_000.0, InitialValue(0.5, 500_000_000))
	assert.Equal(t, 0.0, InitialValue(0.5, 0))
}

func TestProfitLoss(t *testing.T) {
	// Bought 0.5 at 500M, now at 600M: +50M
	assert.Equal(t, 50_000_000.0, ProfitLoss(0.5, 500_000_000, 600_000_000))
	// Price dropped: negative
	assert.Equal(t, -50_000_000.0, ProfitLoss(0.5, 500_000_000, 400_000_000))
}

func TestUnitMode(t *testing.T) {
	assert.True(t, UnitMode(domain.AssetCrypto, false))
	assert.True(t, UnitMode(domain.AssetInvestment, false))
	assert.False(t, UnitMode(domain.AssetDebt, false))
	assert.True(t, UnitMode(domain.AssetDebt, true))
	assert.True(t, UnitMode(domain.AssetReceivable, true))
	assert.False(t, UnitMode(domain.AssetCash, true))
	assert.False(t, UnitMode(domain.AssetProperty, true))
}
