package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service is a catalog entry administrators manage and clients book onto
// events. BasePrice is the published price; the agreed per-event price lives
// on EventService.
type Service struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string          `gorm:"not null;column:name" json:"name"`
	Description string          `gorm:"type:text;column:description" json:"description"`
	BasePrice   decimal.Decimal `gorm:"type:decimal(10,2);not null;column:base_price" json:"base_price"`
	Category    string          `gorm:"column:category" json:"category"`
	Available   bool            `gorm:"not null;column:available" json:"available"`
	ImageURL    string          `gorm:"column:image_url" json:"image_url,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
}

func (Service) TableName() string { return "services" }
