package types

import "github.com/google/uuid"

// ClientRecord is the legacy clientes table. It has no relationship to the
// rest of the model and is kept read-only until its data is migrated into
// User accounts.
type ClientRecord struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string    `gorm:"not null;column:name" json:"name"`
	Email   string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Phone   string    `gorm:"column:phone" json:"phone,omitempty"`
	Address string    `gorm:"column:address" json:"address,omitempty"`
}

func (ClientRecord) TableName() string { return "clientes" }
