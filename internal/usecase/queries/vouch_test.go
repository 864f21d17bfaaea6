//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"vouch-backend/internal/infra"
	"vouch-backend/internal/pkg/clock"
	"vouch-backend/internal/usecase/queries"
	queriesmock "vouch-backend/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func notFound() error {
	return infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
}

func floatPtr(v float64) *float64 { return &v }

func TestVouchStatus(t *testing.T) {
	customerID := uuid.New()
	locationID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("completed vouch is terminal and keeps its pop code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reads := queriesmock.NewMockVouchStatusReads(ctrl)

		reads.EXPECT().
			LatestEarn(gomock.Any(), customerID, locationID).
			Return(&queries.EarnView{ID: uuid.New(), PopToken: "A1B2C3D4", CreatedAt: now}, nil)

		q := queries.NewVouchQueries(reads, clock.NewMockClock(now))
		view, err := q.Status(context.Background(), customerID, locationID)
		require.NoError(t, err)

		assert.Equal(t, queries.VouchStateCompleted, view.Status)
		require.NotNil(t, view.PopToken)
		assert.Equal(t, "A1B2C3D4", *view.PopToken)
		assert.Nil(t, view.SecondsRemaining)
	})

	t.Run("pending attempt counts down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reads := queriesmock.NewMockVouchStatusReads(ctrl)

		dwell := int32(10)
		reads.EXPECT().
			LatestEarn(gomock.Any(), customerID, locationID).
			Return(nil, notFound())
		reads.EXPECT().
			PendingAttempt(gomock.Any(), customerID, locationID).
			Return(&queries.PendingAttemptView{
				StartTime:    now.Add(-4 * time.Minute),
				DwellMinutes: &dwell,
			}, nil)

		q := queries.NewVouchQueries(reads, clock.NewMockClock(now))
		view, err := q.Status(context.Background(), customerID, locationID)
		require.NoError(t, err)

		want := &queries.VouchStatusView{
			Status:           queries.VouchStateCounting,
			SecondsRemaining: floatPtr(360),
			DwellTimeTotal:   floatPtr(600),
		}
		if diff := cmp.Diff(want, view); diff != "" {
			t.Errorf("status view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("pending attempt uses default dwell when location has none", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reads := queriesmock.NewMockVouchStatusReads(ctrl)

		reads.EXPECT().
			LatestEarn(gomock.Any(), customerID, locationID).
			Return(nil, notFound())
		reads.EXPECT().
			PendingAttempt(gomock.Any(), customerID, locationID).
			Return(&queries.PendingAttemptView{StartTime: now.Add(-time.Minute)}, nil)

		q := queries.NewVouchQueries(reads, clock.NewMockClock(now))
		view, err := q.Status(context.Background(), customerID, locationID)
		require.NoError(t, err)

		assert.Equal(t, queries.VouchStateCounting, view.Status)
		require.NotNil(t, view.SecondsRemaining)
		assert.Equal(t, 240.0, *view.SecondsRemaining)
		assert.Equal(t, 300.0, *view.DwellTimeTotal)
	})

	t.Run("no earn and no attempt is idle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reads := queriesmock.NewMockVouchStatusReads(ctrl)

		reads.EXPECT().
			LatestEarn(gomock.Any(), customerID, locationID).
			Return(nil, notFound())
		reads.EXPECT().
			PendingAttempt(gomock.Any(), customerID, locationID).
			Return(nil, notFound())

		q := queries.NewVouchQueries(reads, clock.NewMockClock(now))
		view, err := q.Status(context.Background(), customerID, locationID)
		require.NoError(t, err)

		assert.Equal(t, queries.VouchStateIdle, view.Status)
	})

	t.Run("read failure surfaces as status error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reads := queriesmock.NewMockVouchStatusReads(ctrl)

		reads.EXPECT().
			LatestEarn(gomock.Any(), customerID, locationID).
			Return(nil, infra.WrapRepoErr("boom", nil))

		q := queries.NewVouchQueries(reads, clock.NewMockClock(now))
		_, err := q.Status(context.Background(), customerID, locationID)
		assert.ErrorIs(t, err, queries.ErrVouchStatusUnavailable)
	})
}
