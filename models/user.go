package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserType represents what a user does on the marketplace
type UserType string

const (
	UserTypeSeller   UserType = "seller"
	UserTypeCustomer UserType = "customer"
	UserTypeBoth     UserType = "both"
)

// ValidUserType reports whether t is one of the allowed user types.
func ValidUserType(t UserType) bool {
	switch t {
	case UserTypeSeller, UserTypeCustomer, UserTypeBoth:
		return true
	}
	return false
}

// Role represents user privilege levels
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// User represents a student account in the system
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"` // stored lowercase
	Password  string    `json:"-" gorm:"not null"`                 // bcrypt hash, never exposed in JSON
	Phone     string    `json:"phone"`
	College   string    `json:"college"`
	UserType  UserType  `json:"userType" gorm:"type:varchar(10);default:'both'"`
	Role      Role      `json:"role" gorm:"type:varchar(10);default:'student'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
