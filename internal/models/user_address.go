package models

import (
	"time"

	"github.com/google/uuid"
)

// UserAddress is a saved, geocoded pickup address owned by one user.
type UserAddress struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Line1     string    `gorm:"size:255;not null" json:"line1"`
	Line2     string    `gorm:"size:255" json:"line2,omitempty"`
	City      string    `gorm:"size:100" json:"city"`
	State     string    `gorm:"size:100" json:"state"`
	Pincode   string    `gorm:"size:10" json:"pincode"`
	Latitude  float64   `gorm:"type:decimal(10,8)" json:"latitude"`
	Longitude float64   `gorm:"type:decimal(11,8)" json:"longitude"`
	IsDefault bool      `gorm:"default:false" json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
