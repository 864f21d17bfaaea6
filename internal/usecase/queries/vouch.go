package queries

//go:generate mockgen -source=vouch.go -destination=../../../tests/mock/queries/vouch_mock.go -package=queriesmock

import (
	"context"

	"vouch-backend/internal/domain/vouch"
	"vouch-backend/internal/infra"
	"vouch-backend/internal/pkg/clock"
	"vouch-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrVouchStatusUnavailable = errs.New("failed to read vouch status")

// VouchStatusReads is the read store consumed by the status fast path.
type VouchStatusReads interface {
	LatestEarn(ctx context.Context, customerID, locationID uuid.UUID) (*EarnView, error)
	PendingAttempt(ctx context.Context, customerID, locationID uuid.UUID) (*PendingAttemptView, error)
}

type VouchQueries interface {
	Status(ctx context.Context, customerID, locationID uuid.UUID) (*VouchStatusView, error)
}

type vouchQueriesImpl struct {
	reads VouchStatusReads
	clock clock.Clock
}

func NewVouchQueries(reads VouchStatusReads, clock clock.Clock) VouchQueries {
	return &vouchQueriesImpl{
		reads: reads,
		clock: clock,
	}
}

// Status checks the durable earn transaction first: once a vouch completed,
// polling keeps returning the same POP code and never re-evaluates timers.
func (q *vouchQueriesImpl) Status(ctx context.Context, customerID, locationID uuid.UUID) (*VouchStatusView, error) {
	earn, err := q.reads.LatestEarn(ctx, customerID, locationID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrVouchStatusUnavailable)
	}
	if earn != nil {
		return &VouchStatusView{
			Status:   VouchStateCompleted,
			PopToken: &earn.PopToken,
		}, nil
	}

	attempt, err := q.reads.PendingAttempt(ctx, customerID, locationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &VouchStatusView{Status: VouchStateIdle}, nil
		}
		return nil, errs.Mark(err, ErrVouchStatusUnavailable)
	}

	progress := vouch.NewProgress(attempt.StartTime, q.clock.Now(), vouch.RequiredDwell(attempt.DwellMinutes))
	remaining := progress.SecondsRemaining()
	total := progress.TotalSeconds()
	return &VouchStatusView{
		Status:           VouchStateCounting,
		SecondsRemaining: &remaining,
		DwellTimeTotal:   &total,
	}, nil
}
