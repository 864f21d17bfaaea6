package request

import (
	"vouch-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	LocationID uuid.UUID `json:"location_id" binding:"required"`
	PopToken   string    `json:"pop_token" binding:"required"`
	Rating     int       `json:"rating" binding:"required,min=1,max=5"`
	Comment    string    `json:"comment" binding:"required,max=1000"`
}

func (r *CreateReviewRequest) ToInput() commands.CreateReviewInput {
	return commands.CreateReviewInput{
		LocationID: r.LocationID,
		PopToken:   r.PopToken,
		Rating:     r.Rating,
		Comment:    r.Comment,
	}
}
