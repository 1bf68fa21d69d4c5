package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/i-ankit-here/scrap-con-backend/internal/dto"
	"github.com/i-ankit-here/scrap-con-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrAddressNotFound = errors.New("address not found")
	ErrAddressInput    = errors.New("address line and pincode are required")
)

type AddressService struct {
	db       *gorm.DB
	geocoder Geocoder
}

func NewAddressService(db *gorm.DB, geocoder Geocoder) *AddressService {
	return &AddressService{db: db, geocoder: geocoder}
}

// Create saves a new address for the user. When no coordinates are supplied
// the pincode is geocoded so every saved address carries a usable point.
func (s *AddressService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateAddressRequest) (*models.UserAddress, error) {
	if req.Line1 == "" || req.Pincode == "" {
		return nil, ErrAddressInput
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrCustomerNotFound
	}

	address := models.UserAddress{
		ID:        uuid.New(),
		UserID:    userID,
		Line1:     req.Line1,
		Line2:     req.Line2,
		City:      req.City,
		State:     req.State,
		Pincode:   req.Pincode,
		IsDefault: req.IsDefault,
	}

	if req.Latitude != nil && req.Longitude != nil {
		address.Latitude = *req.Latitude
		address.Longitude = *req.Longitude
	} else {
		loc, err := s.geocoder.ResolveByPincode(ctx, req.Pincode)
		if err != nil {
			return nil, err
		}
		address.Latitude = loc.Latitude
		address.Longitude = loc.Longitude
		if address.City == "" {
			address.City = loc.City
		}
		if address.State == "" {
			address.State = loc.State
		}
	}

	if req.IsDefault {
		if err := s.db.Model(&models.UserAddress{}).Where("user_id = ?", userID).
			Update("is_default", false).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.Create(&address).Error; err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}
	return &address, nil
}

func (s *AddressService) List(userID uuid.UUID) ([]models.UserAddress, error) {
	var addresses []models.UserAddress
	err := s.db.Where("user_id = ?", userID).Order("is_default DESC, created_at ASC").Find(&addresses).Error
	return addresses, err
}

// Delete removes one of the user's own addresses.
func (s *AddressService) Delete(userID, addressID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", addressID, userID).Delete(&models.UserAddress{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAddressNotFound
	}
	return nil
}
