package queries

import (
	"context"

	"vouch-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRewardListUnavailable = errs.New("failed to list rewards")

type RewardReads interface {
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]RewardListItem, error)
}

type RewardQueries interface {
	MyRewards(ctx context.Context, customerID uuid.UUID) ([]RewardListItem, error)
}

type rewardQueriesImpl struct {
	reads RewardReads
}

func NewRewardQueries(reads RewardReads) RewardQueries {
	return &rewardQueriesImpl{reads: reads}
}

func (q *rewardQueriesImpl) MyRewards(ctx context.Context, customerID uuid.UUID) ([]RewardListItem, error) {
	items, err := q.reads.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, ErrRewardListUnavailable)
	}
	return items, nil
}
