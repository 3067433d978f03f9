package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventService attaches a catalog service to an event at a negotiated price.
// The (event, service) pair is unique; the agreed price is independent of
// the service's base price.
type EventService struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	EventID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_event_service;column:event_id" json:"event_id"`
	ServiceID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_event_service;column:service_id" json:"service_id"`
	Service     *Service        `gorm:"foreignKey:ServiceID;references:ID" json:"service,omitempty"`
	AgreedPrice decimal.Decimal `gorm:"type:decimal(10,2);not null;column:agreed_price" json:"agreed_price"`
	Notes       string          `gorm:"type:text;column:notes" json:"notes,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
}

func (EventService) TableName() string { return "event_services" }
