package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/i-ankit-here/scrap-con-backend/internal/auth"
	"github.com/i-ankit-here/scrap-con-backend/internal/config"
	"github.com/i-ankit-here/scrap-con-backend/internal/database"
	"github.com/i-ankit-here/scrap-con-backend/internal/dto"
	"github.com/i-ankit-here/scrap-con-backend/internal/handlers"
	"github.com/i-ankit-here/scrap-con-backend/internal/models"
	"github.com/i-ankit-here/scrap-con-backend/internal/routes"
	"github.com/i-ankit-here/scrap-con-backend/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  time.Hour,
		JWTRefreshExpiry: 24 * time.Hour,
	}
}

// newTestApp builds a fiber app with the full route table over an in-memory
// SQLite database.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
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

	cfg := testConfig()
	mediaService, err := services.NewMediaService(context.Background(), cfg)
	if err != nil {
		t.Fatalf("media service: %v", err)
	}

	app := fiber.New()
	routes.Setup(app, cfg,
		handlers.NewAuthHandler(services.NewAuthService(db, cfg)),
		handlers.NewHealthHandler(),
		handlers.NewPickupHandler(services.NewPickupService(db)),
		handlers.NewVendorHandler(services.NewVendorService(db, nil)),
		handlers.NewReviewHandler(services.NewReviewService(db)),
		handlers.NewAddressHandler(services.NewAddressService(db, nil)),
		handlers.NewCategoryHandler(services.NewCategoryService(db)),
		handlers.NewMediaHandler(mediaService, 900),
	)
	return app, db
}

func signToken(t *testing.T, principalID uuid.UUID, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  principalID.String(),
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func seedCustomerWithAddress(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	hash, _ := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), bcrypt.MinCost)
	user := &models.User{
		ID: uuid.New(), Name: "Asha", Email: "asha@example.com",
		Phone: "5550001111", Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	address := &models.UserAddress{
		ID: uuid.New(), UserID: user.ID, Line1: "12 MG Road",
		City: "Pune", State: "MH", Pincode: "411001",
		Latitude: 18.52, Longitude: 73.85, IsDefault: true,
	}
	if err := db.Create(address).Error; err != nil {
		t.Fatalf("create address: %v", err)
	}
	return user
}

func seedVendor(t *testing.T, db *gorm.DB, email string) *models.Vendor {
	t.Helper()
	hash, _ := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), bcrypt.MinCost)
	vendor := &models.Vendor{
		ID: uuid.New(), BusinessName: "Test Scrap Co", Email: email,
		Phone: "5550002222", Password: string(hash), IsAvailable: true,
		Latitude: 18.52, Longitude: 73.85,
	}
	if err := db.Create(vendor).Error; err != nil {
		t.Fatalf("create vendor: %v", err)
	}
	return vendor
}

func jsonRequest(t *testing.T, method, target, token string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
}

func TestPickupRoutesRequireAuth(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/pickups/request", "", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRequestPickupRejectsVendorToken(t *testing.T) {
	app, db := newTestApp(t)
	vendor := seedVendor(t, db, "vendor@example.com")

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/pickups/request",
		signToken(t, vendor.ID, auth.RoleVendor), nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}

func TestRequestPickupCreated(t *testing.T) {
	app, db := newTestApp(t)
	customer := seedCustomerWithAddress(t, db)
	vendor := seedVendor(t, db, "vendor@example.com")

	body := dto.RequestPickupRequest{
		VendorID:      vendor.ID,
		ScheduledDate: time.Now().Add(48 * time.Hour),
		Items: []models.PickupItem{
			{CategoryID: uuid.New(), Quantity: 3, Unit: "kg"},
		},
		Notes: "gate code 4411",
	}
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/pickups/request",
		signToken(t, customer.ID, auth.RoleCustomer), body))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want 201, body %s", resp.StatusCode, raw)
	}

	var pickup models.Pickup
	if err := db.Where("customer_id = ?", customer.ID).First(&pickup).Error; err != nil {
		t.Fatalf("pickup not stored: %v", err)
	}
	if pickup.Status != models.PickupStatusPending {
		t.Fatalf("status = %q, want pending", pickup.Status)
	}
	if pickup.VendorID != vendor.ID {
		t.Fatalf("vendor id = %s, want %s", pickup.VendorID, vendor.ID)
	}
}

func TestUpdatePickupStatusByWrongVendor(t *testing.T) {
	app, db := newTestApp(t)
	customer := seedCustomerWithAddress(t, db)
	owner := seedVendor(t, db, "owner@example.com")
	other := seedVendor(t, db, "other@example.com")

	var address models.UserAddress
	if err := db.Where("user_id = ?", customer.ID).First(&address).Error; err != nil {
		t.Fatalf("address: %v", err)
	}
	pickup := &models.Pickup{
		ID: uuid.New(), CustomerID: customer.ID, VendorID: owner.ID,
		AddressID: address.ID, ScheduledAt: time.Now().Add(24 * time.Hour),
		Status: models.PickupStatusPending,
	}
	if err := db.Create(pickup).Error; err != nil {
		t.Fatalf("create pickup: %v", err)
	}

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/pickups/"+pickup.ID.String()+"/status",
		signToken(t, other.ID, auth.RoleVendor),
		dto.UpdatePickupStatusRequest{Status: models.PickupStatusAccepted}))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}

	var reloaded models.Pickup
	if err := db.First(&reloaded, "id = ?", pickup.ID).Error; err != nil {
		t.Fatalf("reload pickup: %v", err)
	}
	if reloaded.Status != models.PickupStatusPending {
		t.Fatalf("status changed to %q", reloaded.Status)
	}
}

func TestLoginGenericMessage(t *testing.T) {
	app, db := newTestApp(t)
	seedCustomerWithAddress(t, db)

	badPass, err := app.Test(jsonRequest(t, http.MethodPost, "/users/login", "",
		dto.LoginRequest{Email: "asha@example.com", Password: "wrong"}))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	unknown, err := app.Test(jsonRequest(t, http.MethodPost, "/users/login", "",
		dto.LoginRequest{Email: "nobody@example.com", Password: "wrong"}))
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	if badPass.StatusCode != http.StatusUnauthorized || unknown.StatusCode != http.StatusUnauthorized {
		t.Fatalf("statuses = %d, %d, want 401, 401", badPass.StatusCode, unknown.StatusCode)
	}

	var a, b dto.ErrorResponse
	decodeBody(t, badPass, &a)
	decodeBody(t, unknown, &b)
	if a.Message != b.Message {
		t.Fatalf("messages differ: %q vs %q", a.Message, b.Message)
	}
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
