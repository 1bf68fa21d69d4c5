package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/i-ankit-here/scrap-con-backend/internal/dto"
	"github.com/i-ankit-here/scrap-con-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrPickupNotFound    = errors.New("pickup not found")
	ErrNoCustomerAddress = errors.New("customer address not found")
	ErrNotPickupVendor   = errors.New("not authorized to update this pickup")
	ErrInvalidStatus     = errors.New("unknown pickup status")
	ErrTerminalPickup    = errors.New("pickup is already in a terminal status")
	ErrScheduleInPast    = errors.New("scheduled date must be in the future")
	ErrNoItems           = errors.New("at least one item is required")
)

type PickupService struct {
	db *gorm.DB
}

func NewPickupService(db *gorm.DB) *PickupService {
	return &PickupService{db: db}
}

// RequestPickup creates a pending pickup for the customer's saved address.
// The customer and vendor must exist and the customer must have at least one
// address on file.
func (s *PickupService) RequestPickup(customerID uuid.UUID, req *dto.RequestPickupRequest) (*models.Pickup, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}
	if !req.ScheduledDate.IsZero() && req.ScheduledDate.Before(time.Now()) {
		return nil, ErrScheduleInPast
	}

	var customer models.User
	if err := s.db.First(&customer, "id = ?", customerID).Error; err != nil {
		return nil, ErrCustomerNotFound
	}

	var vendor models.Vendor
	if err := s.db.First(&vendor, "id = ?", req.VendorID).Error; err != nil {
		return nil, ErrVendorNotFound
	}

	var address models.UserAddress
	err := s.db.Where("user_id = ?", customerID).Order("is_default DESC, created_at ASC").First(&address).Error
	if err != nil {
		return nil, ErrNoCustomerAddress
	}

	itemsJSON, err := json.Marshal(req.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode items: %w", err)
	}

	pickup := models.Pickup{
		ID:          uuid.New(),
		CustomerID:  customer.ID,
		VendorID:    vendor.ID,
		AddressID:   address.ID,
		ScheduledAt: req.ScheduledDate,
		Status:      models.PickupStatusPending,
		Items:       datatypes.JSON(itemsJSON),
		Notes:       req.Notes,
	}

	if err := s.db.Create(&pickup).Error; err != nil {
		return nil, fmt.Errorf("failed to create pickup: %w", err)
	}

	pickup.Address = &address
	return &pickup, nil
}

// ListVendorPickups returns the vendor's pickups newest first, with customer
// summary and address populated.
func (s *PickupService) ListVendorPickups(vendorID uuid.UUID) ([]models.Pickup, error) {
	var pickups []models.Pickup
	err := s.db.Where("vendor_id = ?", vendorID).
		Preload("Customer", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email", "phone")
		}).
		Preload("Address").
		Order("created_at DESC").
		Find(&pickups).Error
	if err != nil {
		return nil, err
	}
	return pickups, nil
}

// ListCustomerPickups returns the customer's pickups newest first, with
// vendor summary and address populated.
func (s *PickupService) ListCustomerPickups(customerID uuid.UUID) ([]models.Pickup, error) {
	var pickups []models.Pickup
	err := s.db.Where("customer_id = ?", customerID).
		Preload("Vendor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "business_name", "phone")
		}).
		Preload("Address").
		Order("created_at DESC").
		Find(&pickups).Error
	if err != nil {
		return nil, err
	}
	return pickups, nil
}

// UpdateStatus mutates a pickup's status on behalf of its assigned vendor.
// Terminal pickups (completed, cancelled) cannot be moved again. Transitions
// into completed stamp CompletedAt.
func (s *PickupService) UpdateStatus(pickupID, vendorID uuid.UUID, status string) (*models.Pickup, error) {
	if !models.ValidPickupStatus(status) {
		return nil, ErrInvalidStatus
	}

	var pickup models.Pickup
	if err := s.db.First(&pickup, "id = ?", pickupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPickupNotFound
		}
		return nil, err
	}

	if pickup.VendorID != vendorID {
		return nil, ErrNotPickupVendor
	}
	if pickup.IsTerminal() {
		return nil, ErrTerminalPickup
	}

	updates := map[string]interface{}{"status": status}
	if status == models.PickupStatusCompleted {
		now := time.Now()
		updates["completed_at"] = &now
		pickup.CompletedAt = &now
	}

	if err := s.db.Model(&pickup).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update pickup status: %w", err)
	}
	pickup.Status = status
	return &pickup, nil
}
