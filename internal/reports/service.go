package reports

import (
	"context"
	"sort"
	"time"

	"duit-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

// NetWorthReport is the signed wealth position. Debt is subtracted in the
// signed total only; the per-type subtotal map keeps unsigned magnitudes so
// breakdown displays show how much sits in each bucket.
type NetWorthReport struct {
	NetWorth    float64            `json:"net_worth"`
	TotalAssets float64            `json:"total_assets"`
	TotalDebt   float64            `json:"total_debt"`
	ByType      map[string]float64 `json:"by_type"`
}

// MonthTotal is one point in the monthly income/expense series.
type MonthTotal struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// CategoryTotal is one slice of a per-category breakdown.
type CategoryTotal struct {
	CategoryID   *uuid.UUID `json:"category_id"`
	CategoryName string     `json:"category_name"`
	Total        float64    `json:"total"`
	Percentage   float64    `json:"percentage"`
}

// SummaryReport covers a trailing window of whole months.
type SummaryReport struct {
	TotalIncome      float64         `json:"total_income"`
	TotalExpense     float64         `json:"total_expense"`
	Monthly          []MonthTotal    `json:"monthly"`
	ExpenseByCat     []CategoryTotal `json:"expense_by_category"`
	IncomeByCat      []CategoryTotal `json:"income_by_category"`
	WindowStart      string          `json:"window_start"`
	WindowMonthCount int             `json:"window_month_count"`
}

// GetNetWorth reduces the holding set to the signed total:
// netWorth = Σ non-debt value − Σ debt value. Pure function of the rows at
// read time; order-independent, no caching.
func (s *Service) GetNetWorth(ctx context.Context, userID uuid.UUID) (*NetWorthReport, error) {
	var assets []domain.Asset
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).Find(&assets).Error; err != nil {
		return nil, err
	}

	totalDebt := lo.SumBy(assets, func(a domain.Asset) float64 {
		if a.Type == domain.AssetDebt {
			return a.Value
		}
		return 0
	})
	totalAssets := lo.SumBy(assets, func(a domain.Asset) float64 {
		if a.Type != domain.AssetDebt {
			return a.Value
		}
		return 0
	})

	byType := make(map[string]float64)
	for _, a := range assets {
		byType[a.Type] += a.Value
	}

	return &NetWorthReport{
		NetWorth:    totalAssets - totalDebt,
		TotalAssets: totalAssets,
		TotalDebt:   totalDebt,
		ByType:      byType,
	}, nil
}

// GetSummary aggregates the last `months` whole months of ledger entries
// into totals, a monthly series and per-category breakdowns.
func (s *Service) GetSummary(ctx context.Context, userID uuid.UUID, months int, now time.Time) (*SummaryReport, error) {
	if months <= 0 {
		months = 6
	}
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(months - 1), 0)

	var txs []domain.Transaction
	if err := s.DB.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, windowStart.Format("2006-01-02")).
		Order("date ASC").
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

	totalIncome := lo.SumBy(txs, func(t domain.Transaction) float64 {
		if t.Type == domain.TxIncome {
			return t.Amount
		}
		return 0
	})
	totalExpense := lo.SumBy(txs, func(t domain.Transaction) float64 {
		if t.Type == domain.TxExpense {
			return t.Amount
		}
		return 0
	})

	// Monthly series: one point per month in the window, zero-filled.
	byMonth := lo.GroupBy(txs, func(t domain.Transaction) string {
		if len(t.Date) >= 7 {
			return t.Date[:7]
		}
		return t.Date
	})
	monthly := make([]MonthTotal, 0, months)
	for i := 0; i < months; i++ {
		m := windowStart.AddDate(0, i, 0).Format("2006-01")
		point := MonthTotal{Month: m}
		for _, t := range byMonth[m] {
			if t.Type == domain.TxIncome {
				point.Income += t.Amount
			} else {
				point.Expense += t.Amount
			}
		}
		monthly = append(monthly, point)
	}

	expenseTxs := lo.Filter(txs, func(t domain.Transaction, _ int) bool {
		return t.Type == domain.TxExpense
	})
	incomeTxs := lo.Filter(txs, func(t domain.Transaction, _ int) bool {
		return t.Type == domain.TxIncome
	})

	return &SummaryReport{
		TotalIncome:      totalIncome,
		TotalExpense:     totalExpense,
		Monthly:          monthly,
		ExpenseByCat:     breakdown(expenseTxs, catNames, totalExpense),
		IncomeByCat:      breakdown(incomeTxs, catNames, totalIncome),
		WindowStart:      windowStart.Format("2006-01-02"),
		WindowMonthCount: months,
	}, nil
}

// breakdown sums amounts per category and attaches the share of the total.
// Uncategorized entries collapse into one "Uncategorized" slice.
func breakdown(txs []domain.Transaction, catNames map[uuid.UUID]string, total float64) []CategoryTotal {
	groups := lo.GroupBy(txs, func(t domain.Transaction) uuid.UUID {
		if t.CategoryID != nil {
			return *t.CategoryID
		}
		return uuid.Nil
	})

	out := make([]CategoryTotal, 0, len(groups))
	for catID, group := range groups {
		sum := lo.SumBy(group, func(t domain.Transaction) float64 { return t.Amount })
		ct := CategoryTotal{Total: sum}
		if catID == uuid.Nil {
			ct.CategoryName = "Uncategorized"
		} else {
			id := catID
			ct.CategoryID = &id
			ct.CategoryName = catNames[catID]
		}
		if total > 0 {
			ct.Percentage = sum / total * 100
		}
		out = append(out, ct)
	}

	// Largest first for display.
	sort.Slice(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}
