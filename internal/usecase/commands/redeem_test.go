//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"vouch-backend/internal/infra"
	"vouch-backend/internal/infra/metrics"
	"vouch-backend/internal/pkg/clock"
	"vouch-backend/internal/pkg/signing"
	"vouch-backend/internal/usecase/commands"
	commandsmock "vouch-backend/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type redeemFixture struct {
	rewardRepo *commandsmock.MockRewardRepository
	signer     *signing.Signer
	clock      *clock.MockClock
	metrics    *metrics.Metrics
	uc         commands.RedeemCommands
}

func newRedeemFixture(t *testing.T, now time.Time) *redeemFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	signer, err := signing.GenerateKey()
	require.NoError(t, err)

	f := &redeemFixture{
		rewardRepo: commandsmock.NewMockRewardRepository(ctrl),
		signer:     signer,
		clock:      clock.NewMockClock(now),
		metrics:    metrics.New(),
	}
	f.uc = commands.NewRedeemUseCase(f.rewardRepo, stubRunner{}, f.signer, f.clock, f.metrics)
	return f
}

// signedSnapshot builds a reward row whose token genuinely verifies against
// the fixture's key.
func signedSnapshot(t *testing.T, f *redeemFixture, businessID uuid.UUID, status string) *commands.RewardSnapshot {
	t.Helper()

	customerID := uuid.New()
	campaignID := uuid.New()
	signedAt := time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)

	nonce, err := signing.NewNonce()
	require.NoError(t, err)
	token, err := f.signer.Sign(signing.NewPayload(customerID, campaignID, signedAt, nonce))
	require.NoError(t, err)

	return &commands.RewardSnapshot{
		ID:                uuid.New(),
		CustomerID:        customerID,
		CampaignID:        campaignID,
		BusinessID:        businessID,
		LocationID:        uuid.New(),
		RewardDescription: "Free coffee",
		UniqueToken:       token,
		SignNonce:         nonce,
		SignedAt:          signedAt,
		Status:            status,
		CreatedAt:         signedAt,
	}
}

func TestRedeem(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	businessID := uuid.New()

	t.Run("active reward redeems once", func(t *testing.T) {
		f := newRedeemFixture(t, now)
		snap := signedSnapshot(t, f, businessID, "active")

		redeemed := *snap
		redeemed.Status = "redeemed"
		redeemed.RedeemedAt = &now

		f.rewardRepo.EXPECT().
			FindByToken(gomock.Any(), gomock.Any(), snap.UniqueToken).
			Return(snap, nil)
		f.rewardRepo.EXPECT().
			RedeemIfActive(gomock.Any(), gomock.Any(), snap.ID, now).
			Return(&redeemed, nil)

		result, err := f.uc.Redeem(context.Background(), snap.UniqueToken, businessID)
		require.NoError(t, err)
		assert.Equal(t, "Free coffee", result.RewardDescription)
		assert.Equal(t, snap.CustomerID, result.CustomerID)
		require.NotNil(t, result.RedeemedAt)
		assert.Equal(t, now, *result.RedeemedAt)
		assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Redemptions.WithLabelValues("success")))
	})

	t.Run("unknown token", func(t *testing.T) {
		f := newRedeemFixture(t, now)

		f.rewardRepo.EXPECT().
			FindByToken(gomock.Any(), gomock.Any(), "nosuch").
			Return(nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound))

		_, err := f.uc.Redeem(context.Background(), "nosuch", businessID)
		assert.ErrorIs(t, err, commands.ErrRewardNotFound)
		assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Redemptions.WithLabelValues("not_found")))
	})

	t.Run("reward of another business", func(t *testing.T) {
		f := newRedeemFixture(t, now)
		snap := signedSnapshot(t, f, uuid.New(), "active")

		f.rewardRepo.EXPECT().
			FindByToken(gomock.Any(), gomock.Any(), snap.UniqueToken).
			Return(snap, nil)

		_, err := f.uc.Redeem(context.Background(), snap.UniqueToken, businessID)
		assert.ErrorIs(t, err, commands.ErrWrongBusiness)
	})

	t.Run("already redeemed carries the prior redemption", func(t *testing.T) {
		f := newRedeemFixture(t, now)
		snap := signedSnapshot(t, f, businessID, "redeemed")
		redeemedAt := now.Add(-time.Hour)
		snap.RedeemedAt = &redeemedAt

		f.rewardRepo.EXPECT().
			FindByToken(gomock.Any(), gomock.Any(), snap.UniqueToken).
			Return(snap, nil)

		result, err := f.uc.Redeem(context.Background(), snap.UniqueToken, businessID)
		assert.ErrorIs(t, err, commands.ErrAlreadyRedeemed)
		require.NotNil(t, result)
		require.NotNil(t, result.RedeemedAt)
		assert.Equal(t, redeemedAt, *result.RedeemedAt)
		assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Redemptions.WithLabelValues("already_redeemed")))
	})

	t.Run("tampered token fails signature re-verification", func(t *testing.T) {
		f := newRedeemFixture(t, now)
		snap := signedSnapshot(t, f, businessID, "active")
		snap.SignNonce = "ffffffff" // persisted nonce no longer matches the token

		f.rewardRepo.EXPECT().
			FindByToken(gomock.Any(), gomock.Any(), snap.UniqueToken).
			Return(snap, nil)

		_, err := f.uc.Redeem(context.Background(), snap.UniqueToken, businessID)
		assert.ErrorIs(t, err, commands.ErrInvalidSignature)
		assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Redemptions.WithLabelValues("invalid_signature")))
	})

	t.Run("losing the update race reports already redeemed", func(t *testing.T) {
		f := newRedeemFixture(t, now)
		snap := signedSnapshot(t, f, businessID, "active")

		winner := *snap
		winner.Status = "redeemed"
		winnerAt := now.Add(-time.Second)
		winner.RedeemedAt = &winnerAt

		f.rewardRepo.EXPECT().
			FindByToken(gomock.Any(), gomock.Any(), snap.UniqueToken).
			Return(snap, nil)
		f.rewardRepo.EXPECT().
			RedeemIfActive(gomock.Any(), gomock.Any(), snap.ID, now).
			Return(nil, infra.WrapRepoErr("not active", nil, infra.KindConflict))
		f.rewardRepo.EXPECT().
			FindByToken(gomock.Any(), gomock.Any(), snap.UniqueToken).
			Return(&winner, nil)

		result, err := f.uc.Redeem(context.Background(), snap.UniqueToken, businessID)
		assert.ErrorIs(t, err, commands.ErrAlreadyRedeemed)
		require.NotNil(t, result)
		require.NotNil(t, result.RedeemedAt)
		assert.Equal(t, winnerAt, *result.RedeemedAt)
	})
}
