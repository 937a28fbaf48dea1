package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Asset types. Debt is stored as a positive magnitude and only negated
// when computing the signed net worth.
const (
	AssetSpendingAccount = "spending_account"
	AssetCash            = "cash"
	AssetInvestment      = "investment"
	AssetCrypto          = "crypto"
	AssetProperty        = "property"
	AssetReceivable      = "receivable"
	AssetDebt            = "debt"
	AssetOther           = "other"
)

// AssetTypes lists every valid asset type.
var AssetTypes = []string{
	AssetSpendingAccount,
	AssetCash,
	AssetInvestment,
	AssetCrypto,
	AssetProperty,
	AssetReceivable,
	AssetDebt,
	AssetOther,
}

// Asset is a single holding: an owned asset or an outstanding liability.
// Unit-denominated assets (crypto, investment, DeFi-style debt/receivable)
// carry quantity and per-unit prices; for everything else those fields are null
// and Value is the user-entered magnitude.
type Asset struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Name            string    `gorm:"column:name;not null" json:"name"`
	Type            string    `gorm:"column:type;type:varchar(20);not null" json:"type"`
	Value           float64   `gorm:"column:value;type:decimal(18,2);not null;default:0" json:"value"`
	Quantity        *float64  `gorm:"column:quantity;type:decimal(28,10)" json:"quantity"`
	BuyPrice        *float64  `gorm:"column:buy_price;type:decimal(18,2)" json:"buy_price"`
	CurrentPrice    *float64  `gorm:"column:current_price;type:decimal(18,2)" json:"current_price"`
	InitialValue    *float64  `gorm:"column:initial_value;type:decimal(18,2)" json:"initial_value"`
	CoinID          *string   `gorm:"column:coin_id" json:"coin_id"`
	UnitDenominated bool      `gorm:"column:unit_denominated;not null;default:false" json:"unit_denominated"`
	Description     *string   `gorm:"column:description" json:"description"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Asset) TableName() string {
	return "assets"
}

// BeforeCreate: never insert zero UUID for primary key; generate random when not set.
func (a *Asset) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// AfterFind backfills the unit-denominated flag for legacy rows where the
// mode was only implied by coin_id presence.
func (a *Asset) AfterFind(tx *gorm.DB) error {
	if !a.UnitDenominated && a.CoinID != nil && *a.CoinID != "" {
		a.UnitDenominated = true
	}
	return nil
}

// IsValidAssetType reports whether t is one of the known asset types.
func IsValidAssetType(t string) bool {
	for _, v := range AssetTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Settleable reports whether the asset can receive a settlement payment.
func (a *Asset) Settleable() bool {
	return a.Type == AssetDebt || a.Type == AssetReceivable
}
