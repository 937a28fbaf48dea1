package dashboard

import (
	"context"
	"time"

	"duit-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

// Summary is the current-month dashboard. Balance is income minus expense
// for the month — monthly cash flow, not net worth (that lives in reports).
type Summary struct {
	TotalIncome  float64              `json:"total_income"`
	TotalExpense float64              `json:"total_expense"`
	Balance      float64              `json:"balance"`
	TotalAssets  float64              `json:"total_assets"`
	Recent       []domain.Transaction `json:"recent_transactions"`
}

// GetSummary computes the dashboard figures for now's month. Pure read,
// recomputed on every request.
func (s *Service) GetSummary(ctx context.Context, userID uuid.UUID, now time.Time) (*Summary, error) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, -1)

	var txs []domain.Transaction
	if err := s.DB.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?",
			userID, start.Format("2006-01-02"), end.Format("2006-01-02")).
		Find(&txs).Error; err != nil {
		return nil, err
	}

	var assets []domain.Asset
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).Find(&assets).Error; err != nil {
		return nil, err
	}

	var recent []domain.Transaction
	if err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(5).
		Find(&recent).Error; err != nil {
		return nil, err
	}

	income := lo.SumBy(txs, func(t domain.Transaction) float64 {
		if t.Type == domain.TxIncome {
			return t.Amount
		}
		return 0
	})
	expense := lo.SumBy(txs, func(t domain.Transaction) float64 {
		if t.Type == domain.TxExpense {
			return t.Amount
		}
		return 0
	})

	return &Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income - expense,
		TotalAssets:  lo.SumBy(assets, func(a domain.Asset) float64 { return a.Value }),
		Recent:       recent,
	}, nil
}
