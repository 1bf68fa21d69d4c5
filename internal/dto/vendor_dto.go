package dto

import (
	"github.com/google/uuid"
)

type UpdateVendorProfileRequest struct {
	BusinessName *string `json:"business_name"`
	OwnerName    *string `json:"owner_name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Password     *string `json:"password"`
}

type UpdateServiceAreaRequest struct {
	RadiusMeters float64 `json:"radius_meters"`
	ServiceStart string  `json:"service_start"`
	ServiceEnd   string  `json:"service_end"`
}

type UpdateLocationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Pincode   *string  `json:"pincode"`
}

type UpdateAvailabilityRequest struct {
	IsAvailable bool `json:"is_available"`
}

type LocationResponse struct {
	Message   string  `json:"message"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Pincode   string  `json:"pincode"`
}

// NearbyVendor is one proximity-search hit, nearest first.
type NearbyVendor struct {
	ID             uuid.UUID `json:"id"`
	BusinessName   string    `json:"business_name"`
	Phone          string    `json:"phone"`
	IsVerified     bool      `json:"is_verified"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	DistanceMeters float64   `json:"distance_meters"`
	ServiceStart   string    `json:"service_start,omitempty"`
	ServiceEnd     string    `json:"service_end,omitempty"`
}
