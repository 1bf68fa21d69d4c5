package dto

import "github.com/google/uuid"

type CreateReviewRequest struct {
	PickupID uuid.UUID `json:"pickup_id"`
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment"`
}

type UpdateReviewRequest struct {
	ReviewID uuid.UUID `json:"review_id"`
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment"`
}
