package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Pickup status values. Completed and cancelled are terminal.
const (
	PickupStatusPending   = "pending"
	PickupStatusAccepted  = "accepted"
	PickupStatusCompleted = "completed"
	PickupStatusCancelled = "cancelled"
)

// Payment status values.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// PickupItem is one requested line in a pickup: a scrap category reference
// plus quantity in that category's unit.
type PickupItem struct {
	CategoryID uuid.UUID `json:"category_id"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`
	Note       string    `json:"note,omitempty"`
}

// Pickup is a scheduled collection event linking one customer, one vendor and
// one of the customer's addresses. Items are stored as a JSONB list.
type Pickup struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"customer_id"`
	VendorID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"vendor_id"`
	AddressID     uuid.UUID      `gorm:"type:uuid;not null" json:"address_id"`
	ScheduledAt   time.Time      `gorm:"not null" json:"scheduled_at"`
	CompletedAt   *time.Time     `json:"completed_at,omitempty"`
	Status        string         `gorm:"size:20;not null;default:'pending';index" json:"status"`
	Items         datatypes.JSON `gorm:"type:jsonb" json:"items"`
	Notes         string         `gorm:"size:1000" json:"notes,omitempty"`
	TotalAmount   float64        `json:"total_amount"`
	TotalWeight   float64        `json:"total_weight"`
	PaymentStatus string         `gorm:"size:20" json:"payment_status,omitempty"`
	PaymentMethod string         `gorm:"size:50" json:"payment_method,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`

	Customer *User        `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Vendor   *Vendor      `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	Address  *UserAddress `gorm:"foreignKey:AddressID" json:"address,omitempty"`
}

// IsTerminal reports whether the pickup has reached a final status.
func (p *Pickup) IsTerminal() bool {
	return p.Status == PickupStatusCompleted || p.Status == PickupStatusCancelled
}

// ValidPickupStatus reports whether s is one of the known status values.
func ValidPickupStatus(s string) bool {
	switch s {
	case PickupStatusPending, PickupStatusAccepted, PickupStatusCompleted, PickupStatusCancelled:
		return true
	}
	return false
}
