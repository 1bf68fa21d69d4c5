package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/i-ankit-here/scrap-con-backend/internal/config"
	"github.com/i-ankit-here/scrap-con-backend/internal/database"
	"github.com/i-ankit-here/scrap-con-backend/internal/models"
	"github.com/i-ankit-here/scrap-con-backend/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a fresh in-memory SQLite database with the full schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  time.Hour,
		JWTRefreshExpiry: 24 * time.Hour,
	}
}

func createCustomer(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	hash, _ := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), bcrypt.MinCost)
	user := &models.User{
		ID:       uuid.New(),
		Name:     "Test Customer",
		Email:    email,
		Phone:    "5550001111",
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return user
}

func createVendor(t *testing.T, db *gorm.DB, email string, lat, lon float64) *models.Vendor {
	t.Helper()
	hash, _ := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), bcrypt.MinCost)
	vendor := &models.Vendor{
		ID:           uuid.New(),
		BusinessName: "Test Scrap Co",
		OwnerName:    "Test Owner",
		Email:        email,
		Phone:        "5550002222",
		Password:     string(hash),
		IsAvailable:  true,
		Latitude:     lat,
		Longitude:    lon,
		City:         "Pune",
		State:        "MH",
		Pincode:      "411001",
	}
	if err := db.Create(vendor).Error; err != nil {
		t.Fatalf("create vendor: %v", err)
	}
	return vendor
}

func createAddress(t *testing.T, db *gorm.DB, userID uuid.UUID, lat, lon float64) *models.UserAddress {
	t.Helper()
	address := &models.UserAddress{
		ID:        uuid.New(),
		UserID:    userID,
		Line1:     "12 MG Road",
		City:      "Pune",
		State:     "MH",
		Pincode:   "411001",
		Latitude:  lat,
		Longitude: lon,
		IsDefault: true,
	}
	if err := db.Create(address).Error; err != nil {
		t.Fatalf("create address: %v", err)
	}
	return address
}

// fakeGeocoder returns a canned location without any network call.
type fakeGeocoder struct {
	loc *services.Location
	err error
}

func (f *fakeGeocoder) Resolve(_ context.Context, _, _ float64) (*services.Location, error) {
	return f.loc, f.err
}

func (f *fakeGeocoder) ResolveByPincode(_ context.Context, _ string) (*services.Location, error) {
	return f.loc, f.err
}
