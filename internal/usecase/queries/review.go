package queries

import (
	"context"

	"vouch-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReviewListUnavailable = errs.New("failed to list reviews")

type ReviewReads interface {
	ListByLocation(ctx context.Context, locationID uuid.UUID) ([]ReviewListItem, error)
}

type ReviewQueries interface {
	LocationReviews(ctx context.Context, locationID uuid.UUID) ([]ReviewListItem, error)
}

type reviewQueriesImpl struct {
	reads ReviewReads
}

func NewReviewQueries(reads ReviewReads) ReviewQueries {
	return &reviewQueriesImpl{reads: reads}
}

func (q *reviewQueriesImpl) LocationReviews(ctx context.Context, locationID uuid.UUID) ([]ReviewListItem, error) {
	items, err := q.reads.ListByLocation(ctx, locationID)
	if err != nil {
		return nil, errs.Mark(err, ErrReviewListUnavailable)
	}
	return items, nil
}
