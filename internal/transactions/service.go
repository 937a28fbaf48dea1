package transactions

import (
	"context"
	"errors"

	"duit-backend/internal/domain"
	"duit-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("Transaction not found")
	ErrInvalidType      = errors.New("Type must be income or expense")
	ErrInvalidAmount    = errors.New("Amount must be positive")
	ErrInvalidDate      = errors.New("Date must be YYYY-MM-DD")
	ErrCategoryRequired = errors.New("Category is required")
	ErrAssetRequired    = errors.New("Asset is required")
)

type Service struct {
	DB *gorm.DB
}

// ListFilter narrows the transaction list.
type ListFilter struct {
	Month      string // YYYY-MM
	Type       string
	CategoryID *uuid.UUID
}

// FormattedTx is a ledger entry with category and asset names joined in.
type FormattedTx struct {
	ID           uuid.UUID  `json:"id"`
	Type         string     `json:"type"`
	Amount       float64    `json:"amount"`
	CategoryID   *uuid.UUID `json:"category_id"`
	CategoryName *string    `json:"category_name"`
	AssetID      *uuid.UUID `json:"asset_id"`
	AssetName    *string    `json:"asset_name"`
	Description  *string    `json:"description"`
	Date         string     `json:"date"`
}

// CreateInput is the new-transaction payload.
type CreateInput struct {
	Type        string     `json:"type"`
	Amount      float64    `json:"amount"`
	CategoryID  *uuid.UUID `json:"category_id"`
	AssetID     *uuid.UUID `json:"asset_id"`
	Description *string    `json:"description"`
	Date        string     `json:"date"`
}

// ListTransactions returns a user's ledger newest-first with names joined.
func (s *Service) ListTransactions(ctx context.Context, userID uuid.UUID, f ListFilter) ([]FormattedTx, error) {
	q := s.DB.WithContext(ctx).Where("user_id = ?", userID)
	if f.Month != "" {
		q = q.Where("date >= ? AND date <= ?", f.Month+"-01", f.Month+"-31")
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}

	var txs []domain.Transaction
	if err := q.Order("date DESC, created_at DESC").Find(&txs).Error; err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return []FormattedTx{}, nil
	}

	catIDs := map[uuid.UUID]bool{}
	assetIDs := map[uuid.UUID]bool{}
	for _, t := range txs {
		if t.CategoryID != nil {
			catIDs[*t.CategoryID] = true
		}
		if t.AssetID != nil {
			assetIDs[*t.AssetID] = true
		}
	}

	catNames := map[uuid.UUID]string{}
	if len(catIDs) > 0 {
		ids := make([]uuid.UUID, 0, len(catIDs))
		for id := range catIDs {
			ids = append(ids, id)
		}
		var cats []domain.Category
		if err := s.DB.WithContext(ctx).Where("id IN ?", ids).Select("id, name").Find(&cats).Error; err != nil {
			return nil, err
		}
		for _, cat := range cats {
			catNames[cat.ID] = cat.Name
		}
	}

	assetNames := map[uuid.UUID]string{}
	if len(assetIDs) > 0 {
		ids := make([]uuid.UUID, 0, len(assetIDs))
		for id := range assetIDs {
			ids = append(ids, id)
		}
		var as []domain.Asset
		if err := s.DB.WithContext(ctx).Where("id IN ?", ids).Select("id, name").Find(&as).Error; err != nil {
			return nil, err
		}
		for _, a := range as {
			assetNames[a.ID] = a.Name
		}
	}

	out := make([]FormattedTx, len(txs))
	for i, t := range txs {
		ft := FormattedTx{
			ID:          t.ID,
			Type:        t.Type,
			Amount:      t.Amount,
			CategoryID:  t.CategoryID,
			AssetID:     t.AssetID,
			Description: t.Description,
			Date:        t.Date,
		}
		if t.CategoryID != nil {
			if name, ok := catNames[*t.CategoryID]; ok {
				ft.CategoryName = &name
			}
		}
		if t.AssetID != nil {
			if name, ok := assetNames[*t.AssetID]; ok {
				ft.AssetName = &name
			}
		}
		out[i] = ft
	}
	return out, nil
}

// CreateTransaction inserts a new ledger entry. Entries are immutable once
// created; there is no update path.
func (s *Service) CreateTransaction(ctx context.Context, userID uuid.UUID, in CreateInput) (*domain.Transaction, error) {
	if in.Type != domain.TxIncome && in.Type != domain.TxExpense {
		return nil, ErrInvalidType
	}
	if !validation.IsValidAmount(in.Amount) {
		return nil, ErrInvalidAmount
	}
	if !validation.IsValidDate(in.Date) {
		return nil, ErrInvalidDate
	}
	if in.CategoryID == nil {
		return nil, ErrCategoryRequired
	}
	if in.AssetID == nil {
		return nil, ErrAssetRequired
	}

	t := domain.Transaction{
		UserID:      userID,
		Type:        in.Type,
		Amount:      in.Amount,
		CategoryID:  in.CategoryID,
		AssetID:     in.AssetID,
		Description: in.Description,
		Date:        in.Date,
	}
	if err := s.DB.WithContext(ctx).Create(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTransaction removes a ledger entry owned by the user.
func (s *Service) DeleteTransaction(ctx context.Context, userID, txID uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", txID, userID).
		Delete(&domain.Transaction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
