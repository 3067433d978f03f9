package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// ValidStatus reports whether s is one of the four event states.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Event is the booking aggregate. It is owned by exactly one user and owns
// its service attachments: deleting the event (or its owner) deletes them.
type Event struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	User            *User            `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Title           string           `gorm:"not null;column:title" json:"title"`
	Description     string           `gorm:"type:text;column:description" json:"description"`
	EventDate       time.Time        `gorm:"not null;index;column:event_date" json:"event_date"`
	Location        string           `gorm:"not null;column:location" json:"location"`
	GuestCount      *int             `gorm:"column:guest_count" json:"guest_count,omitempty"`
	EstimatedBudget *decimal.Decimal `gorm:"type:decimal(10,2);column:estimated_budget" json:"estimated_budget,omitempty"`
	Status          string           `gorm:"not null;default:'pending';index;column:status" json:"status"`
	Services        []EventService   `gorm:"constraint:OnDelete:CASCADE;foreignKey:EventID;references:ID" json:"services,omitempty"`
	CreatedAt       time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"not null" json:"updated_at"`
}

func (Event) TableName() string { return "events" }
