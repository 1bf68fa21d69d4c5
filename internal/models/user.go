package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a customer account. Vendors live in their own table because their
// credential and profile surface is different.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Email     string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone     string         `gorm:"size:20" json:"phone"`
	Password  string         `gorm:"not null" json:"-"`
	Addresses []UserAddress  `gorm:"foreignKey:UserID" json:"addresses,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
