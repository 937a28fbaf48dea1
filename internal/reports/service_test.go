package reports

import (
	"context"
	"testing"
	"time"

	"duit-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupReportTest(t *testing.T) (*Service, *gorm.DB, uuid.UUID) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.Asset{}, &domain.Transaction{}, &domain.Category{},
	))
	return &Service{DB: db}, db, uuid.New()
}

func seedAsset(t *testing.T, db *gorm.DB, userID uuid.UUID, name, typ string, value float64) {
	require.NoError(t, db.Create(&domain.Asset{
		UserID: userID, Name: name, Type: typ, Value: value,
	}).Error)
}

func TestGetNetWorth_SubtractsDebt(t *testing.T) {
	s, db, userID := setupReportTest(t)
	seedAsset(t, db, userID, "Savings", domain.AssetCash, 10_000_000)
	seedAsset(t, db, userID, "BTC", domain.AssetCrypto, 5_000_000)
	seedAsset(t, db, userID, "Credit card", domain.AssetDebt, 2_000_000)

	r, err := s.GetNetWorth(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 13_000_000.0, r.NetWorth)
	assert.Equal(t, 15_000_000.0, r.TotalAssets)
	assert.Equal(t, 2_000_000.0, r.TotalDebt)
	// Subtotals are unsigned magnitudes, debt included
	assert.Equal(t, 2_000_000.0, r.ByType[domain.AssetDebt])
	assert.Equal(t, 10_000_000.0, r.ByType[domain.AssetCash])
}

func TestGetNetWorth_Empty(t *testing.T) {
	s, _, userID := setupReportTest(t)
	r, err := s.GetNetWorth(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.NetWorth)
	assert.Empty(t, r.ByType)
}

// Net worth must not depend on row insertion order.
func TestGetNetWorth_OrderIndependent(t *testing.T) {
	s1, db1, user1 := setupReportTest(t)
	seedAsset(t, db1, user1, "A", domain.AssetCash, 100)
	seedAsset(t, db1, user1, "B", domain.AssetDebt, 40)

	s2, db2, user2 := setupReportTest(t)
	seedAsset(t, db2, user2, "B", domain.AssetDebt, 40)
	seedAsset(t, db2, user2, "A", domain.AssetCash, 100)

	r1, err := s1.GetNetWorth(context.Background(), user1)
	require.NoError(t, err)
	r2, err := s2.GetNetWorth(context.Background(), user2)
	require.NoError(t, err)
	assert.Equal(t, r1.NetWorth, r2.NetWorth)
}

func seedTx(t *testing.T, db *gorm.DB, userID uuid.UUID, typ string, amount float64, date string, catID *uuid.UUID) {
	require.NoError(t, db.Create(&domain.Transaction{
		UserID: userID, Type: typ, Amount: amount, Date: date, CategoryID: catID,
	}).Error)
}

func TestGetSummary_MonthlySeriesZeroFilled(t *testing.T) {
	s, db, userID := setupReportTest(t)
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	seedTx(t, db, userID, domain.TxIncome, 1_000_000, "2026-08-01", nil)
	seedTx(t, db, userID, domain.TxExpense, 400_000, "2026-07-10", nil)
	// Outside the 3-month window
	seedTx(t, db, userID, domain.TxIncome, 9_999_999, "2026-01-01", nil)

	r, err := s.GetSummary(context.Background(), userID, 3, now)
	require.NoError(t, err)
	assert.Equal(t, 1_000_000.0, r.TotalIncome)
	assert.Equal(t, 400_000.0, r.TotalExpense)
	require.Len(t, r.Monthly, 3)
	assert.Equal(t, "2026-06", r.Monthly[0].Month)
	assert.Equal(t, 0.0, r.Monthly[0].Income)
	assert.Equal(t, "2026-07", r.Monthly[1].Month)
	assert.Equal(t, 400_000.0, r.Monthly[1].Expense)
	assert.Equal(t, "2026-08", r.Monthly[2].Month)
	assert.Equal(t, 1_000_000.0, r.Monthly[2].Income)
}

func TestGetSummary_CategoryBreakdown(t *testing.T) {
	s, db, userID := setupReportTest(t)
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	food := domain.Category{UserID: userID, Name: "Food", Type: domain.TxExpense}
	require.NoError(t, db.Create(&food).Error)

	seedTx(t, db, userID, domain.TxExpense, 300_000, "2026-08-01", &food.ID)
	seedTx(t, db, userID, domain.TxExpense, 100_000, "2026-08-02", nil)

	r, err := s.GetSummary(context.Background(), userID, 1, now)
	require.NoError(t, err)
	require.Len(t, r.ExpenseByCat, 2)
	// Largest bucket first
	assert.Equal(t, "Food", r.ExpenseByCat[0].CategoryName)
	assert.Equal(t, 300_000.0, r.ExpenseByCat[0].Total)
	assert.InDelta(t, 75.0, r.ExpenseByCat[0].Percentage, 1e-9)
	assert.Equal(t, "Uncategorized", r.ExpenseByCat[1].CategoryName)
	assert.Nil(t, r.ExpenseByCat[1].CategoryID)
}

func TestGetSummary_DefaultsWindow(t *testing.T) {
	s, _, userID := setupReportTest(t)
	r, err := s.GetSummary(context.Background(), userID, 0, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 6, r.WindowMonthCount)
	assert.Len(t, r.Monthly, 6)
}
