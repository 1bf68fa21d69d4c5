package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken stores the SHA-256 hash of an issued refresh token. Role
// records which principal table PrincipalID refers to.
type RefreshToken struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PrincipalID uuid.UUID `gorm:"type:uuid;not null;index" json:"principal_id"`
	Role        string    `gorm:"size:20;not null" json:"-"`
	TokenHash   string    `gorm:"uniqueIndex;not null;size:64" json:"-"`
	ExpiresAt   time.Time `gorm:"not null" json:"expires_at"`
	Revoked     bool      `gorm:"default:false" json:"revoked"`
	CreatedAt   time.Time `json:"created_at"`
}
