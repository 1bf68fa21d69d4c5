package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/i-ankit-here/scrap-con-backend/internal/dto"
	"github.com/i-ankit-here/scrap-con-backend/internal/models"
	"github.com/i-ankit-here/scrap-con-backend/internal/services"
	"gorm.io/gorm"
)

func seedPickup(t *testing.T, db *gorm.DB, customerID, vendorID uuid.UUID, status string) *models.Pickup {
	t.Helper()
	address := createAddress(t, db, customerID, 18.52, 73.85)
	pickup := &models.Pickup{
		ID:          uuid.New(),
		CustomerID:  customerID,
		VendorID:    vendorID,
		AddressID:   address.ID,
		ScheduledAt: time.Now().Add(24 * time.Hour),
		Status:      status,
	}
	if err := db.Create(pickup).Error; err != nil {
		t.Fatalf("seed pickup: %v", err)
	}
	return pickup
}

func TestCreateReviewRequiresCompletedPickup(t *testing.T) {
	db := testDB(t)
	svc := services.NewReviewService(db)
	customer := createCustomer(t, db, "cust@example.com")
	vendor := createVendor(t, db, "vendor@example.com", 18.52, 73.85)
	pickup := seedPickup(t, db, customer.ID, vendor.ID, models.PickupStatusPending)

	_, err := svc.Create(customer.ID, &dto.CreateReviewRequest{
		PickupID: pickup.ID, Rating: 4, Comment: "quick and tidy",
	})
	if !errors.Is(err, services.ErrPickupNotDone) {
		t.Fatalf("want ErrPickupNotDone, got %v", err)
	}
}

func TestCreateReviewByNonOwner(t *testing.T) {
	db := testDB(t)
	svc := services.NewReviewService(db)
	customer := createCustomer(t, db, "cust@example.com")
	stranger := createCustomer(t, db, "stranger@example.com")
	vendor := createVendor(t, db, "vendor@example.com", 18.52, 73.85)
	pickup := seedPickup(t, db, customer.ID, vendor.ID, models.PickupStatusCompleted)

	_, err := svc.Create(stranger.ID, &dto.CreateReviewRequest{
		PickupID: pickup.ID, Rating: 4, Comment: "nice",
	})
	if !errors.Is(err, services.ErrNotPickupOwner) {
		t.Fatalf("want ErrNotPickupOwner, got %v", err)
	}
}

func TestCreateReviewOncePerPickup(t *testing.T) {
	db := testDB(t)
	svc := services.NewReviewService(db)
	customer := createCustomer(t, db, "cust@example.com")
	vendor := createVendor(t, db, "vendor@example.com", 18.52, 73.85)
	pickup := seedPickup(t, db, customer.ID, vendor.ID, models.PickupStatusCompleted)

	if _, err := svc.Create(customer.ID, &dto.CreateReviewRequest{
		PickupID: pickup.ID, Rating: 5, Comment: "great",
	}); err != nil {
		t.Fatalf("first review: %v", err)
	}

	_, err := svc.Create(customer.ID, &dto.CreateReviewRequest{
		PickupID: pickup.ID, Rating: 3, Comment: "again",
	})
	if !errors.Is(err, services.ErrReviewExists) {
		t.Fatalf("want ErrReviewExists, got %v", err)
	}
}

func TestReviewRatingRange(t *testing.T) {
	db := testDB(t)
	svc := services.NewReviewService(db)
	customer := createCustomer(t, db, "cust@example.com")

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(customer.ID, &dto.CreateReviewRequest{
			PickupID: uuid.New(), Rating: rating,
		})
		if !errors.Is(err, services.ErrRatingOutOfRange) {
			t.Fatalf("rating %d: want ErrRatingOutOfRange, got %v", rating, err)
		}
	}
}

func TestUpdateAndDeleteReviewAuthorOnly(t *testing.T) {
	db := testDB(t)
	svc := services.NewReviewService(db)
	customer := createCustomer(t, db, "cust@example.com")
	stranger := createCustomer(t, db, "stranger@example.com")
	vendor := createVendor(t, db, "vendor@example.com", 18.52, 73.85)
	pickup := seedPickup(t, db, customer.ID, vendor.ID, models.PickupStatusCompleted)

	review, err := svc.Create(customer.ID, &dto.CreateReviewRequest{
		PickupID: pickup.ID, Rating: 4, Comment: "good",
	})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}

	_, err = svc.Update(stranger.ID, &dto.UpdateReviewRequest{
		ReviewID: review.ID, Rating: 1, Comment: "vandalism",
	})
	if !errors.Is(err, services.ErrNotReviewAuthor) {
		t.Fatalf("want ErrNotReviewAuthor on update, got %v", err)
	}

	if err := svc.Delete(stranger.ID, review.ID); !errors.Is(err, services.ErrNotReviewAuthor) {
		t.Fatalf("want ErrNotReviewAuthor on delete, got %v", err)
	}

	updated, err := svc.Update(customer.ID, &dto.UpdateReviewRequest{
		ReviewID: review.ID, Rating: 5, Comment: "even better",
	})
	if err != nil {
		t.Fatalf("author update: %v", err)
	}
	if updated.Rating != 5 || updated.Comment != "even better" {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := svc.Delete(customer.ID, review.ID); err != nil {
		t.Fatalf("author delete: %v", err)
	}
	if _, err := svc.GetByPickup(pickup.ID); !errors.Is(err, services.ErrReviewNotFound) {
		t.Fatalf("review still present after delete: %v", err)
	}
}
