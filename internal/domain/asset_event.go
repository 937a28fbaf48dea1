package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Asset event types.
const (
	EventSettledFull    = "SETTLED_FULL"
	EventSettledPartial = "SETTLED_PARTIAL"
	EventPriceRefreshed = "PRICE_REFRESHED"
	EventUpdated        = "UPDATED"
)

// AssetEvent is an append-only audit row recording what changed an asset
// (settlements, price refreshes, edits) with a JSON payload.
type AssetEvent struct {
	EventID   uuid.UUID      `gorm:"column:event_id;type:uuid;primaryKey" json:"event_id"`
	AssetID   uuid.UUID      `gorm:"column:asset_id;type:uuid;not null;index" json:"asset_id"`
	EventType string         `gorm:"column:event_type;type:varchar(20);not null" json:"event_type"`
	EventData datatypes.JSON `gorm:"column:event_data;type:json" json:"event_data"`
	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
}

func (AssetEvent) TableName() string {
	return "asset_events"
}

func (e *AssetEvent) BeforeCreate(tx *gorm.DB) error {
	if e.EventID == uuid.Nil {
		e.EventID = uuid.New()
	}
	return nil
}
