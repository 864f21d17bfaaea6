package commands

import (
	"context"
	"errors"
	"time"

	"vouch-backend/internal/domain/reward"
	"vouch-backend/internal/infra"
	"vouch-backend/internal/infra/db"
	"vouch-backend/internal/infra/metrics"
	"vouch-backend/internal/pkg/clock"
	"vouch-backend/internal/pkg/errs"
	"vouch-backend/internal/pkg/signing"
	"vouch-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRewardNotFound   = errs.New("reward not found")
	ErrWrongBusiness    = errs.New("reward belongs to another business")
	ErrAlreadyRedeemed  = errs.New("reward already redeemed")
	ErrRewardNotActive  = errs.New("reward is not active")
	ErrInvalidSignature = errs.New("reward signature verification failed")
	ErrRedeemFailed     = errs.New("failed to redeem reward")
)

// RedeemResult describes the voucher after a redemption attempt. When the
// error is ErrAlreadyRedeemed the result is still populated with the original
// redemption's metadata so the operator can see when it was used.
type RedeemResult struct {
	RewardDescription string
	CustomerID        uuid.UUID
	RedeemedAt        *time.Time
}

type RedeemCommands interface {
	Redeem(ctx context.Context, token string, businessID uuid.UUID) (*RedeemResult, error)
}

type redeemUseCaseImpl struct {
	rewardRepo RewardRepository
	runner     shared.TxRunner
	signer     *signing.Signer
	clock      clock.Clock
	metrics    *metrics.Metrics
}

func NewRedeemUseCase(
	rewardRepo RewardRepository,
	runner shared.TxRunner,
	signer *signing.Signer,
	clk clock.Clock,
	m *metrics.Metrics,
) RedeemCommands {
	return &redeemUseCaseImpl{
		rewardRepo: rewardRepo,
		runner:     runner,
		signer:     signer,
		clock:      clk,
		metrics:    m,
	}
}

// Redeem marks a voucher used, exactly once. Ownership, state and the ECDSA
// signature are all checked before the conditional update; two concurrent
// requests for the same token race on that update and exactly one wins.
func (u *redeemUseCaseImpl) Redeem(ctx context.Context, token string, businessID uuid.UUID) (*RedeemResult, error) {
	var (
		result  *RedeemResult
		outcome = "error"
	)
	defer func() {
		u.metrics.Redemptions.WithLabelValues(outcome).Inc()
	}()

	err := u.runner.InTx(ctx, func(dbx db.DBTX) error {
		snap, err := u.rewardRepo.FindByToken(ctx, dbx, token)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRewardNotFound)
			}
			return errs.Mark(err, ErrRedeemFailed)
		}

		if snap.BusinessID != businessID {
			return ErrWrongBusiness
		}
		if snap.Status == string(reward.StatusRedeemed) {
			result = resultFrom(snap)
			return ErrAlreadyRedeemed
		}
		if snap.Status != string(reward.StatusActive) {
			return ErrRewardNotActive
		}

		payload := signing.NewPayload(snap.CustomerID, snap.CampaignID, snap.SignedAt, snap.SignNonce)
		ok, err := u.signer.Verify(payload, snap.UniqueToken)
		if err != nil || !ok {
			return ErrInvalidSignature
		}

		updated, err := u.rewardRepo.RedeemIfActive(ctx, dbx, snap.ID, u.clock.Now())
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				// Lost the race; re-read for the winning redemption's metadata.
				current, readErr := u.rewardRepo.FindByToken(ctx, dbx, token)
				if readErr == nil {
					result = resultFrom(current)
				}
				return errs.Mark(err, ErrAlreadyRedeemed)
			}
			return errs.Mark(err, ErrRedeemFailed)
		}

		result = resultFrom(updated)
		return nil
	})

	switch {
	case err == nil:
		outcome = "success"
	case errors.Is(err, ErrRewardNotFound):
		outcome = "not_found"
	case errors.Is(err, ErrWrongBusiness):
		outcome = "wrong_business"
	case errors.Is(err, ErrAlreadyRedeemed):
		outcome = "already_redeemed"
	case errors.Is(err, ErrRewardNotActive):
		outcome = "not_active"
	case errors.Is(err, ErrInvalidSignature):
		outcome = "invalid_signature"
	}

	if err != nil {
		return result, err
	}
	return result, nil
}

func resultFrom(snap *RewardSnapshot) *RedeemResult {
	return &RedeemResult{
		RewardDescription: snap.RewardDescription,
		CustomerID:        snap.CustomerID,
		RedeemedAt:        snap.RedeemedAt,
	}
}
