package models

import (
	"github.com/google/uuid"
)

// ScrapCategory is reference data describing a collectible material type and
// the unit its quantities are measured in.
type ScrapCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"size:500" json:"description,omitempty"`
	Unit        string    `gorm:"size:20;not null" json:"unit"`
	IconURL     string    `gorm:"size:500" json:"icon_url,omitempty"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
}
