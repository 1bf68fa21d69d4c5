package models

import (
	"time"

	"github.com/google/uuid"
)

// ServiceArea is a vendor's declared operating region and hours, 1:1 with the
// vendor. The center and city/state/pincode are denormalized copies of the
// vendor's current location and are refreshed whenever the vendor moves.
type ServiceArea struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	VendorID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"vendor_id"`
	CenterLat    float64   `gorm:"type:decimal(10,8);not null" json:"center_lat"`
	CenterLon    float64   `gorm:"type:decimal(11,8);not null" json:"center_lon"`
	RadiusMeters float64   `gorm:"not null" json:"radius_meters"`
	City         string    `gorm:"size:100;not null" json:"city"`
	State        string    `gorm:"size:100;not null" json:"state"`
	Pincode      string    `gorm:"size:10;not null" json:"pincode"`
	ServiceStart string    `gorm:"size:5;not null" json:"service_start"`
	ServiceEnd   string    `gorm:"size:5;not null" json:"service_end"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
