package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/i-ankit-here/scrap-con-backend/internal/models"
)

type RequestPickupRequest struct {
	VendorID      uuid.UUID           `json:"vendor_id"`
	ScheduledDate time.Time           `json:"scheduled_date"`
	Items         []models.PickupItem `json:"items"`
	Notes         string              `json:"notes"`
}

type UpdatePickupStatusRequest struct {
	Status string `json:"status"`
}

type PickupResponse struct {
	Message string         `json:"message,omitempty"`
	Pickup  *models.Pickup `json:"pickup"`
}
