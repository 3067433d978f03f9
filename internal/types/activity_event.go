package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ActivityUserRegistered  = "user.registered"
	ActivityEventCreated    = "event.created"
	ActivityEventCancelled  = "event.cancelled"
	ActivityEventDeleted    = "event.deleted"
	ActivityServiceAttached = "event.service_attached"
	ActivityServiceDetached = "event.service_detached"
	ActivityAccountToggled  = "account.toggled"
)

// ActivityEvent is an append-only audit row written on key mutations and
// surfaced on the admin dashboard.
type ActivityEvent struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Type      string         `gorm:"not null;index;column:type" json:"type"`
	Data      datatypes.JSON `gorm:"column:data" json:"data,omitempty"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
}

func (ActivityEvent) TableName() string { return "activity_events" }
