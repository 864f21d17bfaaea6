package commands

import (
	"context"
	"log/slog"

	"vouch-backend/internal/domain/campaign"
	"vouch-backend/internal/domain/reward"
	"vouch-backend/internal/domain/vouch"
	"vouch-backend/internal/infra"
	"vouch-backend/internal/infra/db"
	"vouch-backend/internal/infra/metrics"
	"vouch-backend/internal/pkg/clock"
	"vouch-backend/internal/pkg/errs"
	"vouch-backend/internal/pkg/popcode"
	"vouch-backend/internal/pkg/signing"
	"vouch-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrLocationNotFound = errs.New("location not found")
	ErrNoPendingVouch   = errs.New("no pending vouch attempt")
	ErrVouchStartFailed = errs.New("failed to start vouch attempt")
	ErrVouchStopFailed  = errs.New("failed to stop vouch attempt")
)

type StartResult struct {
	AlreadyPending bool
}

// StopResult reports the outcome of ending a dwell session. PopToken is set
// only when the dwell requirement was met.
type StopResult struct {
	Status   string
	PopToken *string
}

const (
	StopStatusCompleted      = "completed"
	StopStatusFailedDuration = "failed_duration"
)

type VouchCommands interface {
	Start(ctx context.Context, customerID, locationID uuid.UUID) (*StartResult, error)
	Stop(ctx context.Context, customerID, locationID uuid.UUID) (*StopResult, error)
}

type vouchUseCaseImpl struct {
	locationRepo LocationRepository
	attemptRepo  AttemptRepository
	loyaltyRepo  LoyaltyRepository
	campaignRepo CampaignRepository
	rewardRepo   RewardRepository
	runner       shared.TxRunner
	signer       *signing.Signer
	clock        clock.Clock
	metrics      *metrics.Metrics
}

func NewVouchUseCase(
	locationRepo LocationRepository,
	attemptRepo AttemptRepository,
	loyaltyRepo LoyaltyRepository,
	campaignRepo CampaignRepository,
	rewardRepo RewardRepository,
	runner shared.TxRunner,
	signer *signing.Signer,
	clk clock.Clock,
	m *metrics.Metrics,
) VouchCommands {
	return &vouchUseCaseImpl{
		locationRepo: locationRepo,
		attemptRepo:  attemptRepo,
		loyaltyRepo:  loyaltyRepo,
		campaignRepo: campaignRepo,
		rewardRepo:   rewardRepo,
		runner:       runner,
		signer:       signer,
		clock:        clk,
		metrics:      m,
	}
}

// Start opens a dwell session at an active location. At most one pending
// attempt exists per (customer, location); concurrent starts collapse onto the
// same row and the losing request reports AlreadyPending.
func (u *vouchUseCaseImpl) Start(ctx context.Context, customerID, locationID uuid.UUID) (*StartResult, error) {
	var result StartResult

	err := u.runner.InTx(ctx, func(dbx db.DBTX) error {
		if _, err := u.locationRepo.FindActive(ctx, dbx, locationID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrLocationNotFound)
			}
			return errs.Mark(err, ErrVouchStartFailed)
		}

		created, err := u.attemptRepo.UpsertPending(ctx, dbx, customerID, locationID, u.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrVouchStartFailed)
		}
		result.AlreadyPending = !created
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.AlreadyPending {
		u.metrics.VouchStarts.Inc()
	}
	return &result, nil
}

// Stop closes the customer's pending session and evaluates the dwell
// requirement lazily against the clock. A met requirement completes the
// attempt and mints a POP code inside the same transaction; an unmet one
// discards the attempt so the customer can start over immediately.
func (u *vouchUseCaseImpl) Stop(ctx context.Context, customerID, locationID uuid.UUID) (*StopResult, error) {
	now := u.clock.Now()

	var (
		result     StopResult
		businessID uuid.UUID
	)

	err := u.runner.InTx(ctx, func(dbx db.DBTX) error {
		attempt, err := u.attemptRepo.FindPendingForUpdate(ctx, dbx, customerID, locationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrNoPendingVouch)
			}
			return errs.Mark(err, ErrVouchStopFailed)
		}
		businessID = attempt.BusinessID

		att, err := vouch.NewAttempt(attempt.ID, customerID, locationID, vouch.StatusPending, attempt.StartTime)
		if err != nil {
			return errs.Mark(err, ErrVouchStopFailed)
		}

		progress := att.Progress(now, vouch.RequiredDwell(attempt.DwellMinutes))
		if !progress.Met() {
			if err := u.attemptRepo.Delete(ctx, dbx, attempt.ID); err != nil {
				return errs.Mark(err, ErrVouchStopFailed)
			}
			result = StopResult{Status: StopStatusFailedDuration}
			return nil
		}

		if err := u.attemptRepo.MarkCompleted(ctx, dbx, attempt.ID); err != nil {
			return errs.Mark(err, ErrVouchStopFailed)
		}

		code, err := popcode.New()
		if err != nil {
			return errs.Mark(err, ErrVouchStopFailed)
		}
		if _, err := u.loyaltyRepo.InsertEarn(ctx, dbx, customerID, locationID, attempt.BusinessID, code); err != nil {
			return errs.Mark(err, ErrVouchStopFailed)
		}

		result = StopResult{Status: StopStatusCompleted, PopToken: &code}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.metrics.VouchOutcomes.WithLabelValues(result.Status).Inc()

	if result.Status == StopStatusCompleted {
		// Reward issuance is best-effort: the customer already has their POP
		// code, so a campaign failure here must not fail the stop.
		u.issueReward(ctx, customerID, businessID, locationID)
	}
	return &result, nil
}

func (u *vouchUseCaseImpl) issueReward(ctx context.Context, customerID, businessID, locationID uuid.UUID) {
	now := u.clock.Now()

	err := u.runner.InTx(ctx, func(dbx db.DBTX) error {
		snap, err := u.campaignRepo.FindEligible(ctx, dbx, businessID, locationID, now)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				slog.DebugContext(ctx, "no eligible campaign for vouch",
					"business_id", businessID,
					"location_id", locationID)
				return nil
			}
			return errs.Wrap(err, "failed to look up eligible campaign")
		}

		c, err := campaign.NewCampaign(snap.ID, snap.OwnerID, snap.RewardDescription,
			snap.IsActive, snap.LocationID, snap.StartDate, snap.EndDate)
		if err != nil {
			return errs.Wrap(err, "invalid campaign row")
		}
		if err := c.ValidateEligibility(now, locationID); err != nil {
			// Stale read between query and validation; skip quietly.
			return nil
		}

		nonce, err := signing.NewNonce()
		if err != nil {
			return err
		}
		token, err := u.signer.Sign(signing.NewPayload(customerID, c.ID(), now, nonce))
		if err != nil {
			return err
		}

		r, err := reward.NewIssued(customerID, c.ID(), businessID, locationID,
			c.RewardDescription(), token, nonce, now)
		if err != nil {
			return errs.Wrap(err, "failed to build reward")
		}
		if _, err := u.rewardRepo.Insert(ctx, dbx, r); err != nil {
			return errs.Wrap(err, "failed to insert reward")
		}

		u.metrics.VouchersIssued.Inc()
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "reward issuance failed",
			"customer_id", customerID,
			"location_id", locationID,
			"error", err)
	}
}
