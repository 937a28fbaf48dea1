package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category buckets transactions for budgets and breakdown reports.
// Type is income or expense, same values as Transaction.Type.
type Category struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Type      string    `gorm:"column:type;type:varchar(10);not null" json:"type"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
