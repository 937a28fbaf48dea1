package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Budget is a monthly spending cap for one expense category.
type Budget struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Name       string    `gorm:"column:name;not null" json:"name"`
	CategoryID uuid.UUID `gorm:"column:category_id;type:uuid;not null" json:"category_id"`
	Amount     float64   `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Budget) TableName() string {
	return "budgets"
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
