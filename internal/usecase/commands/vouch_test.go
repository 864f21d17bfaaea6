//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"vouch-backend/internal/domain/reward"
	"vouch-backend/internal/infra"
	"vouch-backend/internal/infra/db"
	"vouch-backend/internal/infra/metrics"
	"vouch-backend/internal/pkg/clock"
	"vouch-backend/internal/pkg/popcode"
	"vouch-backend/internal/pkg/signing"
	"vouch-backend/internal/usecase/commands"
	commandsmock "vouch-backend/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubRunner runs the transactional closure directly; repositories are mocked
// so no real dbx is needed.
type stubRunner struct{}

func (stubRunner) InTx(_ context.Context, fn func(dbx db.DBTX) error) error {
	return fn(nil)
}

type vouchFixture struct {
	locationRepo *commandsmock.MockLocationRepository
	attemptRepo  *commandsmock.MockAttemptRepository
	loyaltyRepo  *commandsmock.MockLoyaltyRepository
	campaignRepo *commandsmock.MockCampaignRepository
	rewardRepo   *commandsmock.MockRewardRepository
	signer       *signing.Signer
	clock        *clock.MockClock
	metrics      *metrics.Metrics
	uc           commands.VouchCommands
}

func newVouchFixture(t *testing.T, now time.Time) *vouchFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	signer, err := signing.GenerateKey()
	require.NoError(t, err)

	f := &vouchFixture{
		locationRepo: commandsmock.NewMockLocationRepository(ctrl),
		attemptRepo:  commandsmock.NewMockAttemptRepository(ctrl),
		loyaltyRepo:  commandsmock.NewMockLoyaltyRepository(ctrl),
		campaignRepo: commandsmock.NewMockCampaignRepository(ctrl),
		rewardRepo:   commandsmock.NewMockRewardRepository(ctrl),
		signer:       signer,
		clock:        clock.NewMockClock(now),
		metrics:      metrics.New(),
	}
	f.uc = commands.NewVouchUseCase(
		f.locationRepo, f.attemptRepo, f.loyaltyRepo, f.campaignRepo, f.rewardRepo,
		stubRunner{}, f.signer, f.clock, f.metrics,
	)
	return f
}

func TestStart(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	customerID := uuid.New()
	locationID := uuid.New()

	t.Run("creates a pending attempt at an active location", func(t *testing.T) {
		f := newVouchFixture(t, now)

		f.locationRepo.EXPECT().
			FindActive(gomock.Any(), gomock.Any(), locationID).
			Return(&commands.LocationSnapshot{ID: locationID, BusinessID: uuid.New()}, nil)
		f.attemptRepo.EXPECT().
			UpsertPending(gomock.Any(), gomock.Any(), customerID, locationID, now).
			Return(true, nil)

		result, err := f.uc.Start(context.Background(), customerID, locationID)
		require.NoError(t, err)
		assert.False(t, result.AlreadyPending)
		assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.VouchStarts))
	})

	t.Run("second start collapses onto the existing attempt", func(t *testing.T) {
		f := newVouchFixture(t, now)

		f.locationRepo.EXPECT().
			FindActive(gomock.Any(), gomock.Any(), locationID).
			Return(&commands.LocationSnapshot{ID: locationID, BusinessID: uuid.New()}, nil)
		f.attemptRepo.EXPECT().
			UpsertPending(gomock.Any(), gomock.Any(), customerID, locationID, now).
			Return(false, nil)

		result, err := f.uc.Start(context.Background(), customerID, locationID)
		require.NoError(t, err)
		assert.True(t, result.AlreadyPending)
		assert.Equal(t, 0.0, testutil.ToFloat64(f.metrics.VouchStarts))
	})

	t.Run("unknown or inactive location", func(t *testing.T) {
		f := newVouchFixture(t, now)

		f.locationRepo.EXPECT().
			FindActive(gomock.Any(), gomock.Any(), locationID).
			Return(nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound))

		_, err := f.uc.Start(context.Background(), customerID, locationID)
		assert.ErrorIs(t, err, commands.ErrLocationNotFound)
	})
}

func TestStop(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	customerID := uuid.New()
	locationID := uuid.New()
	businessID := uuid.New()
	attemptID := uuid.New()
	dwell := int32(5)

	t.Run("no pending attempt", func(t *testing.T) {
		f := newVouchFixture(t, now)

		f.attemptRepo.EXPECT().
			FindPendingForUpdate(gomock.Any(), gomock.Any(), customerID, locationID).
			Return(nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound))

		_, err := f.uc.Stop(context.Background(), customerID, locationID)
		assert.ErrorIs(t, err, commands.ErrNoPendingVouch)
	})

	t.Run("unmet dwell discards the attempt", func(t *testing.T) {
		f := newVouchFixture(t, now)

		f.attemptRepo.EXPECT().
			FindPendingForUpdate(gomock.Any(), gomock.Any(), customerID, locationID).
			Return(&commands.PendingAttemptSnapshot{
				ID:           attemptID,
				StartTime:    now.Add(-5*time.Minute + time.Millisecond),
				DwellMinutes: &dwell,
				BusinessID:   businessID,
			}, nil)
		f.attemptRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any(), attemptID).
			Return(nil)

		result, err := f.uc.Stop(context.Background(), customerID, locationID)
		require.NoError(t, err)
		assert.Equal(t, commands.StopStatusFailedDuration, result.Status)
		assert.Nil(t, result.PopToken)
		assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.VouchOutcomes.WithLabelValues("failed_duration")))
	})

	t.Run("met dwell mints a pop code, no campaign running", func(t *testing.T) {
		f := newVouchFixture(t, now)

		f.attemptRepo.EXPECT().
			FindPendingForUpdate(gomock.Any(), gomock.Any(), customerID, locationID).
			Return(&commands.PendingAttemptSnapshot{
				ID:           attemptID,
				StartTime:    now.Add(-5 * time.Minute),
				DwellMinutes: &dwell,
				BusinessID:   businessID,
			}, nil)
		f.attemptRepo.EXPECT().
			MarkCompleted(gomock.Any(), gomock.Any(), attemptID).
			Return(nil)
		f.loyaltyRepo.EXPECT().
			InsertEarn(gomock.Any(), gomock.Any(), customerID, locationID, businessID, gomock.Any()).
			Return(uuid.New(), nil)
		f.campaignRepo.EXPECT().
			FindEligible(gomock.Any(), gomock.Any(), businessID, locationID, now).
			Return(nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound))

		result, err := f.uc.Stop(context.Background(), customerID, locationID)
		require.NoError(t, err)
		assert.Equal(t, commands.StopStatusCompleted, result.Status)
		require.NotNil(t, result.PopToken)
		assert.True(t, popcode.Valid(*result.PopToken))
		assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.VouchOutcomes.WithLabelValues("completed")))
		assert.Equal(t, 0.0, testutil.ToFloat64(f.metrics.VouchersIssued))
	})

	t.Run("running campaign issues a verifiable signed reward", func(t *testing.T) {
		f := newVouchFixture(t, now)
		campaignID := uuid.New()

		f.attemptRepo.EXPECT().
			FindPendingForUpdate(gomock.Any(), gomock.Any(), customerID, locationID).
			Return(&commands.PendingAttemptSnapshot{
				ID:           attemptID,
				StartTime:    now.Add(-10 * time.Minute),
				DwellMinutes: &dwell,
				BusinessID:   businessID,
			}, nil)
		f.attemptRepo.EXPECT().
			MarkCompleted(gomock.Any(), gomock.Any(), attemptID).
			Return(nil)
		f.loyaltyRepo.EXPECT().
			InsertEarn(gomock.Any(), gomock.Any(), customerID, locationID, businessID, gomock.Any()).
			Return(uuid.New(), nil)
		f.campaignRepo.EXPECT().
			FindEligible(gomock.Any(), gomock.Any(), businessID, locationID, now).
			Return(&commands.CampaignSnapshot{
				ID:                campaignID,
				OwnerID:           businessID,
				RewardDescription: "Free coffee",
				IsActive:          true,
				StartDate:         now.Add(-24 * time.Hour),
				EndDate:           now.Add(24 * time.Hour),
			}, nil)

		var issued *reward.Reward
		f.rewardRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, r *reward.Reward) (uuid.UUID, error) {
				issued = r
				return uuid.New(), nil
			})

		result, err := f.uc.Stop(context.Background(), customerID, locationID)
		require.NoError(t, err)
		assert.Equal(t, commands.StopStatusCompleted, result.Status)

		require.NotNil(t, issued)
		assert.Equal(t, customerID, issued.CustomerID())
		assert.Equal(t, campaignID, issued.CampaignID())
		assert.Equal(t, reward.StatusActive, issued.Status())

		// The stored token must re-verify against the persisted payload parts.
		payload := signing.NewPayload(issued.CustomerID(), issued.CampaignID(), issued.SignedAt(), issued.SignNonce())
		ok, err := f.signer.Verify(payload, issued.UniqueToken())
		require.NoError(t, err)
		assert.True(t, ok)

		assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.VouchersIssued))
	})

	t.Run("stale campaign outside its window is skipped", func(t *testing.T) {
		f := newVouchFixture(t, now)

		f.attemptRepo.EXPECT().
			FindPendingForUpdate(gomock.Any(), gomock.Any(), customerID, locationID).
			Return(&commands.PendingAttemptSnapshot{
				ID:           attemptID,
				StartTime:    now.Add(-10 * time.Minute),
				DwellMinutes: &dwell,
				BusinessID:   businessID,
			}, nil)
		f.attemptRepo.EXPECT().
			MarkCompleted(gomock.Any(), gomock.Any(), attemptID).
			Return(nil)
		f.loyaltyRepo.EXPECT().
			InsertEarn(gomock.Any(), gomock.Any(), customerID, locationID, businessID, gomock.Any()).
			Return(uuid.New(), nil)
		f.campaignRepo.EXPECT().
			FindEligible(gomock.Any(), gomock.Any(), businessID, locationID, now).
			Return(&commands.CampaignSnapshot{
				ID:                uuid.New(),
				OwnerID:           businessID,
				RewardDescription: "Free coffee",
				IsActive:          true,
				StartDate:         now.Add(-48 * time.Hour),
				EndDate:           now.Add(-24 * time.Hour),
			}, nil)

		result, err := f.uc.Stop(context.Background(), customerID, locationID)
		require.NoError(t, err)
		assert.Equal(t, commands.StopStatusCompleted, result.Status)
		assert.Equal(t, 0.0, testutil.ToFloat64(f.metrics.VouchersIssued))
	})

	t.Run("reward issuance failure does not fail the stop", func(t *testing.T) {
		f := newVouchFixture(t, now)

		f.attemptRepo.EXPECT().
			FindPendingForUpdate(gomock.Any(), gomock.Any(), customerID, locationID).
			Return(&commands.PendingAttemptSnapshot{
				ID:           attemptID,
				StartTime:    now.Add(-10 * time.Minute),
				DwellMinutes: &dwell,
				BusinessID:   businessID,
			}, nil)
		f.attemptRepo.EXPECT().
			MarkCompleted(gomock.Any(), gomock.Any(), attemptID).
			Return(nil)
		f.loyaltyRepo.EXPECT().
			InsertEarn(gomock.Any(), gomock.Any(), customerID, locationID, businessID, gomock.Any()).
			Return(uuid.New(), nil)
		f.campaignRepo.EXPECT().
			FindEligible(gomock.Any(), gomock.Any(), businessID, locationID, now).
			Return(nil, infra.WrapRepoErr("boom", nil))

		result, err := f.uc.Stop(context.Background(), customerID, locationID)
		require.NoError(t, err)
		assert.Equal(t, commands.StopStatusCompleted, result.Status)
		require.NotNil(t, result.PopToken)
	})
}
