package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction directions.
const (
	TxIncome  = "income"
	TxExpense = "expense"
)

// Transaction is a single ledger entry. Entries are never updated after
// creation, only created and deleted.
type Transaction struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Type        string     `gorm:"column:type;type:varchar(10);not null" json:"type"`
	Amount      float64    `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	CategoryID  *uuid.UUID `gorm:"column:category_id;type:uuid" json:"category_id"`
	AssetID     *uuid.UUID `gorm:"column:asset_id;type:uuid" json:"asset_id"`
	Description *string    `gorm:"column:description" json:"description"`
	Date        string     `gorm:"column:date;type:date;not null" json:"date"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
