package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/i-ankit-here/scrap-con-backend/internal/auth"
	"github.com/i-ankit-here/scrap-con-backend/internal/dto"
	"github.com/i-ankit-here/scrap-con-backend/internal/services"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	userID, err := auth.GetPrincipalID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	review, err := h.reviewService.Create(userID, &req)
	if err != nil {
		return h.mapReviewError(c, err, "Failed to create review")
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

func (h *ReviewHandler) UpdateReview(c *fiber.Ctx) error {
	userID, err := auth.GetPrincipalID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	var req dto.UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	review, err := h.reviewService.Update(userID, &req)
	if err != nil {
		return h.mapReviewError(c, err, "Failed to update review")
	}

	return c.JSON(review)
}

func (h *ReviewHandler) GetAllReviewsByUser(c *fiber.Ctx) error {
	userID, err := auth.GetPrincipalID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	reviews, err := h.reviewService.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch reviews"})
	}
	return c.JSON(reviews)
}

func (h *ReviewHandler) GetReviewByPickup(c *fiber.Ctx) error {
	pickupID, err := uuid.Parse(c.Params("pickupId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid pickup ID"})
	}

	review, err := h.reviewService.GetByPickup(pickupID)
	if err != nil {
		if errors.Is(err, services.ErrReviewNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch review"})
	}
	return c.JSON(review)
}

func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	userID, err := auth.GetPrincipalID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	reviewID, err := uuid.Parse(c.Params("reviewId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid review ID"})
	}

	if err := h.reviewService.Delete(userID, reviewID); err != nil {
		return h.mapReviewError(c, err, "Failed to delete review")
	}
	return c.JSON(fiber.Map{"message": "Review deleted successfully"})
}

func (h *ReviewHandler) mapReviewError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrReviewNotFound), errors.Is(err, services.ErrPickupNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
	case errors.Is(err, services.ErrNotReviewAuthor), errors.Is(err, services.ErrNotPickupOwner):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
	case errors.Is(err, services.ErrReviewExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
	case errors.Is(err, services.ErrPickupNotDone), errors.Is(err, services.ErrRatingOutOfRange):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: fallback})
}
