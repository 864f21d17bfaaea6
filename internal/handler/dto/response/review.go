package response

import (
	"vouch-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateReviewResponse struct {
	ID string `json:"id"`
}

func FromReviewID(id uuid.UUID) *CreateReviewResponse {
	return &CreateReviewResponse{ID: id.String()}
}

type ReviewListItemResponse struct {
	ID        string `json:"id"`
	Rating    int32  `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt int64  `json:"created_at"`
}

func FromReviewList(items []queries.ReviewListItem) []*ReviewListItemResponse {
	res := make([]*ReviewListItemResponse, len(items))
	for i, it := range items {
		res[i] = &ReviewListItemResponse{
			ID:        it.ID.String(),
			Rating:    it.Rating,
			Comment:   it.Comment,
			CreatedAt: it.CreatedAt.Unix(),
		}
	}
	return res
}
