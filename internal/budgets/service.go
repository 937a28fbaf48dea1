package budgets

import (
	"context"
	"errors"
	"time"

	"duit-backend/internal/domain"
	"duit-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("Budget not found")
	ErrNameRequired     = errors.New("Budget name is required")
	ErrInvalidAmount    = errors.New("Amount must be positive")
	ErrCategoryRequired = errors.New("Category is required")
)

type Service struct {
	DB *gorm.DB
}

// CreateInput is the new-budget payload.
type CreateInput struct {
	Name       string     `json:"name"`
	CategoryID *uuid.UUID `json:"category_id"`
	Amount     float64    `json:"amount"`
}

// BudgetWithSpent joins a budget with its category and the current month's
// spend in that category.
type BudgetWithSpent struct {
	domain.Budget
	CategoryName string  `json:"category_name"`
	Spent        float64 `json:"spent"`
	Remaining    float64 `json:"remaining"`
	Percentage   float64 `json:"percentage"`
}

// ListBudgets returns a user's budgets with spent amounts computed from the
// current month's expense transactions. Recomputed on every call.
func (s *Service) ListBudgets(ctx context.Context, userID uuid.UUID, now time.Time) ([]BudgetWithSpent, error) {
	var list []domain.Budget
	if err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}

	start, end := monthRange(now)
	var txs []domain.Transaction
	if err := s.DB.WithContext(ctx).
		Where("user_id = ? AND type = ? AND date >= ? AND date <= ?", userID, domain.TxExpense, start, end).
		Find(&txs).Error; err != nil {
		return nil, err
	}

	var cats []domain.Category
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).Find(&cats).Error; err != nil {
		return nil, err
	}
	catNames := lo.SliceToMap(cats, func(c domain.Category) (uuid.UUID, string) {
		return c.ID, c.Name
	})

	out := make([]BudgetWithSpent, len(list))
	for i, b := range list {
		spent := lo.SumBy(txs, func(t domain.Transaction) float64 {
			if t.CategoryID != nil && *t.CategoryID == b.CategoryID {
				return t.Amount
			}
			return 0
		})
		pct := 0.0
		if b.Amount > 0 {
			pct = spent / b.Amount * 100
		}
		out[i] = BudgetWithSpent{
			Budget:       b,
			CategoryName: catNames[b.CategoryID],
			Spent:        spent,
			Remaining:    b.Amount - spent,
			Percentage:   pct,
		}
	}
	return out, nil
}

// CreateBudget inserts a new monthly budget.
func (s *Service) CreateBudget(ctx context.Context, userID uuid.UUID, in CreateInput) (*domain.Budget, error) {
	if in.Name == "" {
		return nil, ErrNameRequired
	}
	if !validation.IsValidAmount(in.Amount) {
		return nil, ErrInvalidAmount
	}
	if in.CategoryID == nil {
		return nil, ErrCategoryRequired
	}

	b := domain.Budget{
		UserID:     userID,
		Name:       in.Name,
		CategoryID: *in.CategoryID,
		Amount:     in.Amount,
	}
	if err := s.DB.WithContext(ctx).Create(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// DeleteBudget removes a budget owned by the user.
func (s *Service) DeleteBudget(ctx context.Context, userID, budgetID uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", budgetID, userID).
		Delete(&domain.Budget{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// monthRange returns the first and last day of now's month as date strings.
func monthRange(now time.Time) (string, string) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, -1)
	return start.Format("2006-01-02"), end.Format("2006-01-02")
}
