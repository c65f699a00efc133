package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles assignable to a user.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User represents an account that can sign in to the portal.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FullName     string    `json:"full_name" gorm:"size:255;not null"`
	Phone        string    `json:"phone,omitempty" gorm:"size:50"`
	Role         string    `json:"role" gorm:"size:50;not null;default:'employee';index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
