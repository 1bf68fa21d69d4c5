package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/i-ankit-here/scrap-con-backend/internal/dto"
	"github.com/i-ankit-here/scrap-con-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrVendorNotFound      = errors.New("vendor not found")
	ErrServiceAreaNotFound = errors.New("service area not found")
	ErrLocationNotSet      = errors.New("vendor location not set, update your location first")
	ErrLocationInput       = errors.New("either coordinates (latitude and longitude) or pincode must be provided")
	ErrServiceAreaInput    = errors.New("radius, service start time, and service end time are required")
	ErrNoGeocodedAddress   = errors.New("customer has no geocoded address")
	ErrInvalidSearchRadius = errors.New("radius must be greater than zero")
)

const earthRadiusMeters = 6371000.0

type VendorService struct {
	db       *gorm.DB
	geocoder Geocoder
}

func NewVendorService(db *gorm.DB, geocoder Geocoder) *VendorService {
	return &VendorService{db: db, geocoder: geocoder}
}

func (s *VendorService) GetProfile(vendorID uuid.UUID) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := s.db.First(&vendor, "id = ?", vendorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}
	return &vendor, nil
}

func (s *VendorService) UpdateProfile(vendorID uuid.UUID, req *dto.UpdateVendorProfileRequest) (*models.Vendor, error) {
	vendor, err := s.GetProfile(vendorID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.BusinessName != nil {
		updates["business_name"] = *req.BusinessName
	}
	if req.OwnerName != nil {
		updates["owner_name"] = *req.OwnerName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		updates["password"] = string(hash)
	}

	if len(updates) > 0 {
		if err := s.db.Model(vendor).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update vendor: %w", err)
		}
	}
	return vendor, nil
}

func (s *VendorService) UpdateAvailability(vendorID uuid.UUID, isAvailable bool) error {
	result := s.db.Model(&models.Vendor{}).Where("id = ?", vendorID).Update("is_available", isAvailable)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVendorNotFound
	}
	return nil
}

// UpdateServiceArea creates or overwrites the vendor's 1:1 service area,
// copying the vendor's current location into the denormalized fields. A
// service area cannot exist before the vendor has set a location.
func (s *VendorService) UpdateServiceArea(vendorID uuid.UUID, req *dto.UpdateServiceAreaRequest) (*models.ServiceArea, error) {
	if req.RadiusMeters <= 0 || req.ServiceStart == "" || req.ServiceEnd == "" {
		return nil, ErrServiceAreaInput
	}

	vendor, err := s.GetProfile(vendorID)
	if err != nil {
		return nil, err
	}
	if !vendor.HasLocation() {
		return nil, ErrLocationNotSet
	}

	var area models.ServiceArea
	err = s.db.Where("vendor_id = ?", vendorID).First(&area).Error
	switch {
	case err == nil:
		area.RadiusMeters = req.RadiusMeters
		area.ServiceStart = req.ServiceStart
		area.ServiceEnd = req.ServiceEnd
	case errors.Is(err, gorm.ErrRecordNotFound):
		area = models.ServiceArea{
			ID:           uuid.New(),
			VendorID:     vendorID,
			CenterLat:    vendor.Latitude,
			CenterLon:    vendor.Longitude,
			RadiusMeters: req.RadiusMeters,
			City:         vendor.City,
			State:        vendor.State,
			Pincode:      vendor.Pincode,
			ServiceStart: req.ServiceStart,
			ServiceEnd:   req.ServiceEnd,
		}
	default:
		return nil, err
	}

	if err := s.db.Save(&area).Error; err != nil {
		return nil, fmt.Errorf("failed to save service area: %w", err)
	}
	return &area, nil
}

func (s *VendorService) GetServiceArea(vendorID uuid.UUID) (*models.ServiceArea, error) {
	var area models.ServiceArea
	if err := s.db.Where("vendor_id = ?", vendorID).First(&area).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceAreaNotFound
		}
		return nil, err
	}
	return &area, nil
}

// UpdateLocation resolves the supplied coordinates or pincode through the
// geocoding collaborator, moves the vendor there, and propagates the new
// center into an existing service area.
func (s *VendorService) UpdateLocation(ctx context.Context, vendorID uuid.UUID, req *dto.UpdateLocationRequest) (*Location, error) {
	hasCoords := req.Latitude != nil && req.Longitude != nil
	hasPincode := req.Pincode != nil && *req.Pincode != ""
	if hasCoords == hasPincode {
		return nil, ErrLocationInput
	}

	vendor, err := s.GetProfile(vendorID)
	if err != nil {
		return nil, err
	}

	var loc *Location
	if hasCoords {
		loc, err = s.geocoder.Resolve(ctx, *req.Latitude, *req.Longitude)
	} else {
		loc, err = s.geocoder.ResolveByPincode(ctx, *req.Pincode)
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"latitude":  loc.Latitude,
		"longitude": loc.Longitude,
		"city":      loc.City,
		"state":     loc.State,
		"pincode":   loc.Pincode,
	}
	if err := s.db.Model(vendor).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update vendor location: %w", err)
	}

	// Keep the service area's denormalized center in sync.
	var area models.ServiceArea
	if err := s.db.Where("vendor_id = ?", vendorID).First(&area).Error; err == nil {
		areaUpdates := map[string]interface{}{
			"center_lat": loc.Latitude,
			"center_lon": loc.Longitude,
			"city":       loc.City,
			"state":      loc.State,
			"pincode":    loc.Pincode,
		}
		if err := s.db.Model(&area).Updates(areaUpdates).Error; err != nil {
			return nil, fmt.Errorf("failed to propagate location to service area: %w", err)
		}
	}

	return loc, nil
}

// nearbyRow is the raw join of a vendor candidate and its operating hours.
type nearbyRow struct {
	ID           uuid.UUID `gorm:"column:id"`
	BusinessName string    `gorm:"column:business_name"`
	Phone        string    `gorm:"column:phone"`
	IsVerified   bool      `gorm:"column:is_verified"`
	Latitude     float64   `gorm:"column:latitude"`
	Longitude    float64   `gorm:"column:longitude"`
	ServiceStart *string   `gorm:"column:service_start"`
	ServiceEnd   *string   `gorm:"column:service_end"`
}

// FindNearby returns available vendors within radiusMeters of the given
// point, nearest first. The database prefilters with a bounding box and
// orders by squared planar distance; precise haversine distances are
// computed for the response.
func (s *VendorService) FindNearby(latitude, longitude, radiusMeters float64) ([]dto.NearbyVendor, error) {
	if radiusMeters <= 0 {
		return nil, ErrInvalidSearchRadius
	}

	latDelta := radiusMeters / 111320.0
	cosLat := math.Cos(latitude * math.Pi / 180)
	if cosLat < 0.01 {
		cosLat = 0.01
	}
	lonDelta := radiusMeters / (111320.0 * cosLat)

	var rows []nearbyRow
	err := s.db.Raw(`
		SELECT v.id, v.business_name, v.phone, v.is_verified, v.latitude, v.longitude,
		       sa.service_start, sa.service_end
		FROM vendors v
		LEFT JOIN service_areas sa ON sa.vendor_id = v.id
		WHERE v.deleted_at IS NULL
		  AND v.is_available = ?
		  AND NOT (v.latitude = 0 AND v.longitude = 0)
		  AND v.latitude BETWEEN ? AND ?
		  AND v.longitude BETWEEN ? AND ?
		ORDER BY (v.latitude - ?) * (v.latitude - ?) +
		         (v.longitude - ?) * (v.longitude - ?) * ?`,
		true,
		latitude-latDelta, latitude+latDelta,
		longitude-lonDelta, longitude+lonDelta,
		latitude, latitude,
		longitude, longitude, cosLat*cosLat,
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("nearby vendor query failed: %w", err)
	}

	results := make([]dto.NearbyVendor, 0, len(rows))
	for _, r := range rows {
		dist := haversineMeters(latitude, longitude, r.Latitude, r.Longitude)
		if dist > radiusMeters {
			continue
		}
		nv := dto.NearbyVendor{
			ID:             r.ID,
			BusinessName:   r.BusinessName,
			Phone:          r.Phone,
			IsVerified:     r.IsVerified,
			Latitude:       r.Latitude,
			Longitude:      r.Longitude,
			DistanceMeters: math.Round(dist*100) / 100,
		}
		if r.ServiceStart != nil {
			nv.ServiceStart = *r.ServiceStart
		}
		if r.ServiceEnd != nil {
			nv.ServiceEnd = *r.ServiceEnd
		}
		results = append(results, nv)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceMeters < results[j].DistanceMeters
	})
	return results, nil
}

// FindNearbyForUser runs the same search with the origin taken from the
// customer's saved geocoded address.
func (s *VendorService) FindNearbyForUser(userID uuid.UUID, radiusMeters float64) ([]dto.NearbyVendor, error) {
	var address models.UserAddress
	err := s.db.Where("user_id = ?", userID).Order("is_default DESC, created_at ASC").First(&address).Error
	if err != nil || (address.Latitude == 0 && address.Longitude == 0) {
		return nil, ErrNoGeocodedAddress
	}
	return s.FindNearby(address.Latitude, address.Longitude, radiusMeters)
}

func haversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
