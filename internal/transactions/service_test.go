package transactions

import (
	"context"
	"testing"

	"duit-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTxTest(t *testing.T) (*Service, *gorm.DB, uuid.UUID) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.Transaction{}, &domain.Category{}, &domain.Asset{},
	))
	return &Service{DB: db}, db, uuid.New()
}

func seedRefs(t *testing.T, db *gorm.DB, userID uuid.UUID) (domain.Category, domain.Asset) {
	cat := domain.Category{UserID: userID, Name: "Food", Type: domain.TxExpense}
	require.NoError(t, db.Create(&cat).Error)
	acct := domain.Asset{UserID: userID, Name: "Wallet", Type: domain.AssetSpendingAccount, Value: 0}
	require.NoError(t, db.Create(&acct).Error)
	return cat, acct
}

func TestCreateTransaction_Validation(t *testing.T) {
	s, db, userID := setupTxTest(t)
	cat, acct := seedRefs(t, db, userID)
	ctx := context.Background()

	_, err := s.CreateTransaction(ctx, userID, CreateInput{Type: "transfer", Amount: 100, Date: "2026-08-01", CategoryID: &cat.ID, AssetID: &acct.ID})
	assert.Equal(t, ErrInvalidType, err)

	_, err = s.CreateTransaction(ctx, userID, CreateInput{Type: domain.TxExpense, Amount: 0, Date: "2026-08-01", CategoryID: &cat.ID, AssetID: &acct.ID})
	assert.Equal(t, ErrInvalidAmount, err)

	_, err = s.CreateTransaction(ctx, userID, CreateInput{Type: domain.TxExpense, Amount: 100, Date: "01/08/2026", CategoryID: &cat.ID, AssetID: &acct.ID})
	assert.Equal(t, ErrInvalidDate, err)

	_, err = s.CreateTransaction(ctx, userID, CreateInput{Type: domain.TxExpense, Amount: 100, Date: "2026-08-01", AssetID: &acct.ID})
	assert.Equal(t, ErrCategoryRequired, err)

	_, err = s.CreateTransaction(ctx, userID, CreateInput{Type: domain.TxExpense, Amount: 100, Date: "2026-08-01", CategoryID: &cat.ID})
	assert.Equal(t, ErrAssetRequired, err)

	tx, err := s.CreateTransaction(ctx, userID, CreateInput{Type: domain.TxExpense, Amount: 100, Date: "2026-08-01", CategoryID: &cat.ID, AssetID: &acct.ID})
	require.NoError(t, err)
	assert.Equal(t, 100.0, tx.Amount)
}

func TestListTransactions_JoinsNames(t *testing.T) {
	s, db, userID := setupTxTest(t)
	cat, acct := seedRefs(t, db, userID)
	ctx := context.Background()

	_, err := s.CreateTransaction(ctx, userID, CreateInput{
		Type: domain.TxExpense, Amount: 50_000, Date: "2026-08-01",
		CategoryID: &cat.ID, AssetID: &acct.ID,
	})
	require.NoError(t, err)

	list, err := s.ListTransactions(ctx, userID, ListFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].CategoryName)
	assert.Equal(t, "Food", *list[0].CategoryName)
	require.NotNil(t, list[0].AssetName)
	assert.Equal(t, "Wallet", *list[0].AssetName)
}

func TestListTransactions_Filters(t *testing.T) {
	s, db, userID := setupTxTest(t)
	cat, acct := seedRefs(t, db, userID)
	ctx := context.Background()

	for _, d := range []string{"2026-07-15", "2026-08-01", "2026-08-20"} {
		_, err := s.CreateTransaction(ctx, userID, CreateInput{
			Type: domain.TxExpense, Amount: 100, Date: d, CategoryID: &cat.ID, AssetID: &acct.ID,
		})
		require.NoError(t, err)
	}
	_, err := s.CreateTransaction(ctx, userID, CreateInput{
		Type: domain.TxIncome, Amount: 500, Date: "2026-08-10", CategoryID: &cat.ID, AssetID: &acct.ID,
	})
	require.NoError(t, err)

	byMonth, err := s.ListTransactions(ctx, userID, ListFilter{Month: "2026-08"})
	require.NoError(t, err)
	assert.Len(t, byMonth, 3)
	// Newest first
	assert.Equal(t, "2026-08-20", byMonth[0].Date)

	byType, err := s.ListTransactions(ctx, userID, ListFilter{Type: domain.TxIncome})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, 500.0, byType[0].Amount)
}

func TestListTransactions_NameLookupFailureSurfaces(t *testing.T) {
	// No categories table, so the name lookup query fails and the
	// error must reach the caller instead of yielding nameless rows.
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Transaction{}, &domain.Asset{}))
	s := &Service{DB: db}
	userID := uuid.New()
	catID := uuid.New()

	require.NoError(t, db.Create(&domain.Transaction{
		UserID: userID, Type: domain.TxExpense, Amount: 100,
		Date: "2026-08-01", CategoryID: &catID,
	}).Error)

	_, err = s.ListTransactions(context.Background(), userID, ListFilter{})
	require.Error(t, err)
}

func TestListTransactions_Empty(t *testing.T) {
	s, _, userID := setupTxTest(t)
	list, err := s.ListTransactions(context.Background(), userID, ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeleteTransaction(t *testing.T) {
	s, db, userID := setupTxTest(t)
	cat, acct := seedRefs(t, db, userID)
	ctx := context.Background()

	tx, err := s.CreateTransaction(ctx, userID, CreateInput{
		Type: domain.TxExpense, Amount: 100, Date: "2026-08-01", CategoryID: &cat.ID, AssetID: &acct.ID,
	})
	require.NoError(t, err)

	// Wrong owner cannot delete
	assert.Equal(t, ErrNotFound, s.DeleteTransaction(ctx, uuid.New(), tx.ID))
	require.NoError(t, s.DeleteTransaction(ctx, userID, tx.ID))
	assert.Equal(t, ErrNotFound, s.DeleteTransaction(ctx, userID, tx.ID))
}
