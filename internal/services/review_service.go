package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/i-ankit-here/scrap-con-backend/internal/dto"
	"github.com/i-ankit-here/scrap-con-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrReviewNotFound   = errors.New("review not found")
	ErrReviewExists     = errors.New("pickup already has a review")
	ErrPickupNotDone    = errors.New("pickup is not completed yet")
	ErrNotReviewAuthor  = errors.New("not authorized to modify this review")
	ErrNotPickupOwner   = errors.New("only the pickup's customer can review it")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// Create attaches a rating and comment to a completed pickup. Only the
// pickup's customer may review it, and only once.
func (s *ReviewService) Create(userID uuid.UUID, req *dto.CreateReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrRatingOutOfRange
	}

	var pickup models.Pickup
	if err := s.db.First(&pickup, "id = ?", req.PickupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPickupNotFound
		}
		return nil, err
	}

	if pickup.CustomerID != userID {
		return nil, ErrNotPickupOwner
	}
	if pickup.Status != models.PickupStatusCompleted {
		return nil, ErrPickupNotDone
	}

	var existing models.Review
	if err := s.db.Where("pickup_id = ?", req.PickupID).First(&existing).Error; err == nil {
		return nil, ErrReviewExists
	}

	review := models.Review{
		ID:       uuid.New(),
		PickupID: req.PickupID,
		UserID:   userID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	if err := s.db.Create(&review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return &review, nil
}

// Update modifies an existing review. Author-only.
func (s *ReviewService) Update(userID uuid.UUID, req *dto.UpdateReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrRatingOutOfRange
	}

	var review models.Review
	if err := s.db.First(&review, "id = ?", req.ReviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	if review.UserID != userID {
		return nil, ErrNotReviewAuthor
	}

	review.Rating = req.Rating
	review.Comment = req.Comment
	if err := s.db.Save(&review).Error; err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	return &review, nil
}

// Delete removes a review. Author-only.
func (s *ReviewService) Delete(userID, reviewID uuid.UUID) error {
	var review models.Review
	if err := s.db.First(&review, "id = ?", reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	if review.UserID != userID {
		return ErrNotReviewAuthor
	}

	return s.db.Delete(&review).Error
}

func (s *ReviewService) ListByUser(userID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (s *ReviewService) GetByPickup(pickupID uuid.UUID) (*models.Review, error) {
	var review models.Review
	if err := s.db.Where("pickup_id = ?", pickupID).First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}
