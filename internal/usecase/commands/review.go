package commands

import (
	"context"

	"vouch-backend/internal/domain/review"
	"vouch-backend/internal/infra"
	"vouch-backend/internal/infra/db"
	"vouch-backend/internal/pkg/clock"
	"vouch-backend/internal/pkg/errs"
	"vouch-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReviewNotAllowed = errs.New("no completed vouch for this location and code")
	ErrDuplicateReview  = errs.New("review already exists for this vouch")
	ErrReviewValidation = errs.New("invalid review")
	ErrReviewFailed     = errs.New("failed to create review")
)

type CreateReviewInput struct {
	LocationID uuid.UUID
	PopToken   string
	Rating     int
	Comment    string
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, customerID uuid.UUID, in CreateReviewInput) (uuid.UUID, error)
}

type reviewUseCaseImpl struct {
	loyaltyRepo LoyaltyRepository
	reviewRepo  ReviewRepository
	runner      shared.TxRunner
	clock       clock.Clock
}

func NewReviewUseCase(
	loyaltyRepo LoyaltyRepository,
	reviewRepo ReviewRepository,
	runner shared.TxRunner,
	clk clock.Clock,
) ReviewCommands {
	return &reviewUseCaseImpl{
		loyaltyRepo: loyaltyRepo,
		reviewRepo:  reviewRepo,
		runner:      runner,
		clock:       clk,
	}
}

// CreateReview records feedback gated on proof of presence: the caller must
// hold the POP code of their own earn transaction at the location, and each
// earn transaction supports at most one review.
func (u *reviewUseCaseImpl) CreateReview(ctx context.Context, customerID uuid.UUID, in CreateReviewInput) (uuid.UUID, error) {
	var reviewID uuid.UUID

	err := u.runner.InTx(ctx, func(dbx db.DBTX) error {
		earn, err := u.loyaltyRepo.FindEarnByPopToken(ctx, dbx, customerID, in.LocationID, in.PopToken)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrReviewNotAllowed)
			}
			return errs.Mark(err, ErrReviewFailed)
		}

		rev, err := review.NewReview(uuid.Nil, customerID, in.LocationID, earn.BusinessID,
			earn.ID, in.Rating, in.Comment, u.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrReviewValidation)
		}

		id, err := u.reviewRepo.Insert(ctx, dbx, rev)
		if err != nil {
			switch {
			case infra.IsKind(err, infra.KindDuplicateKey):
				return errs.Mark(err, ErrDuplicateReview)
			case infra.IsKind(err, infra.KindForeignKeyViolated):
				return errs.Mark(err, ErrReviewNotAllowed)
			default:
				return errs.Mark(err, ErrReviewFailed)
			}
		}
		reviewID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return reviewID, nil
}
