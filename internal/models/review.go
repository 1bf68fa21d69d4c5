package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer's rating of a completed pickup. One review per pickup.
type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PickupID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"pickup_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string    `gorm:"size:1000" json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
