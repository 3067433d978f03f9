package types

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Vendor is an external collaborator record. It has no relationship to
// events or catalog services and deletes unconditionally.
type Vendor struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string           `gorm:"not null;column:name" json:"name"`
	ServiceType string           `gorm:"column:service_type" json:"service_type,omitempty"`
	ContactName string           `gorm:"column:contact_name" json:"contact_name,omitempty"`
	Phone       string           `gorm:"column:phone" json:"phone,omitempty"`
	Email       string           `gorm:"column:email" json:"email,omitempty"`
	Rating      *decimal.Decimal `gorm:"type:decimal(3,2);column:rating" json:"rating,omitempty"`
	Notes       string           `gorm:"type:text;column:notes" json:"notes,omitempty"`
	Active      bool             `gorm:"not null;column:active" json:"active"`
}

func (Vendor) TableName() string { return "vendors" }
