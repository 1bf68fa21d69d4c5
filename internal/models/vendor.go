package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vendor is a scrap-collection business account. Latitude/Longitude hold the
// current location; (0,0) means the vendor has not set a location yet.
type Vendor struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	BusinessName string         `gorm:"size:255;not null" json:"business_name"`
	OwnerName    string         `gorm:"size:255;not null" json:"owner_name"`
	Email        string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone        string         `gorm:"size:20" json:"phone"`
	Password     string         `gorm:"not null" json:"-"`
	IsVerified   bool           `gorm:"default:false" json:"is_verified"`
	IsAvailable  bool           `gorm:"default:true" json:"is_available"`
	Latitude     float64        `gorm:"type:decimal(10,8);default:0" json:"latitude"`
	Longitude    float64        `gorm:"type:decimal(11,8);default:0" json:"longitude"`
	City         string         `gorm:"size:100" json:"city"`
	State        string         `gorm:"size:100" json:"state"`
	Pincode      string         `gorm:"size:10" json:"pincode"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// HasLocation reports whether the vendor has moved off the default (0,0) point.
func (v *Vendor) HasLocation() bool {
	return v.Latitude != 0 || v.Longitude != 0
}
