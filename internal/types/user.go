package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

// User is an account holder. Role is a closed set: clients own events,
// administrators additionally manage the catalog, vendors and accounts.
// Administrators are provisioned out of band; registration always creates
// a client.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null;column:username" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	PasswordHash string    `gorm:"not null;column:password_hash" json:"-"`
	Role         string    `gorm:"not null;default:'client';column:role" json:"role"`
	FullName     string    `gorm:"column:full_name" json:"full_name"`
	Phone        string    `gorm:"column:phone" json:"phone,omitempty"`
	Active       bool      `gorm:"not null;default:true;column:active" json:"active"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
