package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"duit-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PriceFetcher is the external price feed, keyed by coin id.
// Best-effort and non-authoritative: failures must never touch stored state.
type PriceFetcher interface {
	FetchPrice(ctx context.Context, coinID string) (float64, error)
}

// Service encapsulates asset operations.
type Service struct {
	DB     *gorm.DB
	Prices PriceFetcher
}

// AssetInput is the create/update payload.
type AssetInput struct {
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Value           float64  `json:"value"`
	Quantity        *float64 `json:"quantity"`
	BuyPrice        *float64 `json:"buy_price"`
	CurrentPrice    *float64 `json:"current_price"`
	CoinID          *string  `json:"coin_id"`
	UnitDenominated bool     `json:"unit_denominated"`
	Description     *string  `json:"description"`
}

// ListResult bundles the asset list with its aggregates for the assets page.
type ListResult struct {
	Assets []domain.Asset     `json:"assets"`
	Total  float64            `json:"total"`
	ByType map[string]float64 `json:"by_type"`
}

// ListAssets returns a user's assets ordered by value desc, plus the total and
// per-type subtotal map. Subtotals are unsigned magnitudes for every type
// including debt; sign is applied only in the net-worth report.
func (s *Service) ListAssets(ctx context.Context, userID uuid.UUID) (*ListResult, error) {
	var list []domain.Asset
	if err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("value DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}

	byType := make(map[string]float64)
	total := 0.0
	for _, a := range list {
		byType[a.Type] += a.Value
		total += a.Value
	}
	return &ListResult{Assets: list, Total: total, ByType: byType}, nil
}

// CreateAsset inserts a new asset, deriving value and cost basis for
// unit-denominated holdings.
func (s *Service) CreateAsset(ctx context.Context, userID uuid.UUID, in AssetInput) (*domain.Asset, error) {
	a := domain.Asset{UserID: userID}
	if err := applyInput(&a, in); err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Create(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateAsset replaces an asset's fields, re-deriving value. Switching to a
// non-unit type clears quantity and price fields.
func (s *Service) UpdateAsset(ctx context.Context, userID, assetID uuid.UUID, in AssetInput) (*domain.Asset, error) {
	var a domain.Asset
	if err := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", assetID, userID).First(&a).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}

	if err := applyInput(&a, in); err != nil {
		return nil, err
	}
	a.UpdatedAt = time.Now()

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&a).Error; err != nil {
			return err
		}
		eventData, _ := json.Marshal(map[string]interface{}{
			"type":  a.Type,
			"value": a.Value,
		})
		return tx.Create(&domain.AssetEvent{
			AssetID:   a.ID,
			EventType: domain.EventUpdated,
			EventData: datatypes.JSON(eventData),
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteAsset removes an asset owned by the user.
func (s *Service) DeleteAsset(ctx context.Context, userID, assetID uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", assetID, userID).
		Delete(&domain.Asset{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAssetNotFound
	}
	return nil
}

// RefreshPrice fetches the latest unit price from the external feed and
// re-derives the asset's value. On feed failure the stored row is untouched.
func (s *Service) RefreshPrice(ctx context.Context, userID, assetID uuid.UUID) (*domain.Asset, error) {
	var a domain.Asset
	if err := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", assetID, userID).First(&a).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}
	if a.CoinID == nil || *a.CoinID == "" {
		return nil, ErrNoPriceFeed
	}

	price, err := s.Prices.FetchPrice(ctx, *a.CoinID)
	if err != nil {
		log.Warn().Err(err).Str("coin_id", *a.CoinID).Msg("price feed fetch failed, asset left unchanged")
		return nil, fmt.Errorf("%w: %v", ErrPriceFeedFailed, err)
	}

	qty := 0.0
	if a.Quantity != nil {
		qty = *a.Quantity
	}
	newValue := CurrentValue(qty, price)

	a.CurrentPrice = &price
	a.Value = newValue
	a.UpdatedAt = time.Now()

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Asset{}).
			Where("id = ?", a.ID).
			Updates(map[string]interface{}{
				"current_price": price,
				"value":         newValue,
				"updated_at":    a.UpdatedAt,
			}).Error; err != nil {
			return err
		}
		eventData, _ := json.Marshal(map[string]interface{}{
			"coin_id":   *a.CoinID,
			"price":     price,
			"new_value": newValue,
		})
		return tx.Create(&domain.AssetEvent{
			AssetID:   a.ID,
			EventType: domain.EventPriceRefreshed,
			EventData: datatypes.JSON(eventData),
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Settle applies a payment against a debt or receivable: updates the balance,
// optionally records a ledger transaction, and writes an audit event. All
// writes happen in one database transaction; either all commit or none.
func (s *Service) Settle(ctx context.Context, userID, assetID uuid.UUID, in SettleInput) (map[string]interface{}, error) {
	// Input-only validation fails before any query is issued.
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var result map[string]interface{}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a domain.Asset
		if err := tx.Where("id = ? AND user_id = ?", assetID, userID).First(&a).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrAssetNotFound
			}
			return err
		}

		out, err := ComputeSettlement(&a, in)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"value":      out.NewValue,
			"updated_at": time.Now(),
		}
		if a.UnitDenominated {
			updates["quantity"] = out.NewQuantity
		} else {
			updates["quantity"] = nil
		}
		if err := tx.Model(&domain.Asset{}).Where("id = ?", a.ID).Updates(updates).Error; err != nil {
			return err
		}

		if in.RecordTransaction {
			direction := domain.TxIncome
			verb := "Receive"
			if a.Type == domain.AssetDebt {
				direction = domain.TxExpense
				verb = "Pay"
			}
			label := "Partial"
			if in.Mode == SettleFull {
				label = "Full"
			}
			desc := fmt.Sprintf("%s %s (%s)", verb, a.Name, label)
			ledger := domain.Transaction{
				UserID:      userID,
				Type:        direction,
				Amount:      out.PayAmount,
				CategoryID:  in.CategoryID,
				AssetID:     &a.ID,
				Description: &desc,
				Date:        time.Now().Format("2006-01-02"),
			}
			if err := tx.Create(&ledger).Error; err != nil {
				return err
			}
			result = map[string]interface{}{"transaction_id": ledger.ID}
		}

		eventType := domain.EventSettledPartial
		if in.Mode == SettleFull {
			eventType = domain.EventSettledFull
		}
		eventData, _ := json.Marshal(map[string]interface{}{
			"mode":         in.Mode,
			"pay_amount":   out.PayAmount,
			"new_value":    out.NewValue,
			"new_quantity": out.NewQuantity,
		})
		if err := tx.Create(&domain.AssetEvent{
			AssetID:   a.ID,
			EventType: eventType,
			EventData: datatypes.JSON(eventData),
		}).Error; err != nil {
			return err
		}

		if result == nil {
			result = map[string]interface{}{}
		}
		result["asset_id"] = a.ID
		result["pay_amount"] = out.PayAmount
		result["new_value"] = out.NewValue
		if a.UnitDenominated {
			result["new_quantity"] = out.NewQuantity
		}
		return nil
	})

	return result, err
}

// applyInput copies the payload onto the asset and derives value fields.
func applyInput(a *domain.Asset, in AssetInput) error {
	if in.Name == "" {
		return ErrNameRequired
	}
	if !domain.IsValidAssetType(in.Type) {
		return ErrInvalidAssetType
	}

	a.Name = in.Name
	a.Type = in.Type
	a.Description = in.Description

	if UnitMode(in.Type, in.UnitDenominated) {
		qty := 0.0
		if in.Quantity != nil {
			qty = *in.Quantity
		}
		buy := 0.0
		if in.BuyPrice != nil {
			buy = *in.BuyPrice
		}
		current := 0.0
		if in.CurrentPrice != nil {
			current = *in.CurrentPrice
		}
		a.Quantity = &qty
		a.BuyPrice = in.BuyPrice
		a.CurrentPrice = in.CurrentPrice
		initial := InitialValue(qty, buy)
		a.InitialValue = &initial
		a.Value = CurrentValue(qty, current)
		a.CoinID = in.CoinID
		a.UnitDenominated = true
	} else {
		a.Quantity = nil
		a.BuyPrice = nil
		a.CurrentPrice = nil
		a.InitialValue = nil
		a.CoinID = nil
		a.UnitDenominated = false
		a.Value = math.Abs(in.Value)
	}
	return nil
}
