package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

import (
	"context"
	"time"

	"vouch-backend/internal/domain/review"
	"vouch-backend/internal/domain/reward"
	"vouch-backend/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side snapshots keep the command layer off the read-side view types.

type LocationSnapshot struct {
	ID           uuid.UUID
	BusinessID   uuid.UUID
	DwellMinutes *int32
}

type PendingAttemptSnapshot struct {
	ID           uuid.UUID
	StartTime    time.Time
	DwellMinutes *int32
	BusinessID   uuid.UUID
}

type CampaignSnapshot struct {
	ID                uuid.UUID
	OwnerID           uuid.UUID
	RewardDescription string
	IsActive          bool
	LocationID        *uuid.UUID
	StartDate         time.Time
	EndDate           time.Time
}

type RewardSnapshot struct {
	ID                uuid.UUID
	CustomerID        uuid.UUID
	CampaignID        uuid.UUID
	BusinessID        uuid.UUID
	LocationID        uuid.UUID
	RewardDescription string
	UniqueToken       string
	SignNonce         string
	SignedAt          time.Time
	Status            string
	CreatedAt         time.Time
	RedeemedAt        *time.Time
}

type EarnSnapshot struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	PopToken   string
	CreatedAt  time.Time
}

type LocationRepository interface {
	FindActive(ctx context.Context, dbx db.DBTX, id uuid.UUID) (*LocationSnapshot, error)
}

type AttemptRepository interface {
	// UpsertPending atomically ensures one pending attempt for the pair and
	// reports whether a new row was created.
	UpsertPending(ctx context.Context, dbx db.DBTX, customerID, locationID uuid.UUID, startTime time.Time) (bool, error)
	// FindPendingForUpdate locks the pending attempt row (joined with its
	// location's dwell requirement) for the duration of the transaction.
	FindPendingForUpdate(ctx context.Context, dbx db.DBTX, customerID, locationID uuid.UUID) (*PendingAttemptSnapshot, error)
	MarkCompleted(ctx context.Context, dbx db.DBTX, id uuid.UUID) error
	Delete(ctx context.Context, dbx db.DBTX, id uuid.UUID) error
}

type LoyaltyRepository interface {
	InsertEarn(ctx context.Context, dbx db.DBTX, customerID, locationID, businessID uuid.UUID, popToken string) (uuid.UUID, error)
	FindEarnByPopToken(ctx context.Context, dbx db.DBTX, customerID, locationID uuid.UUID, popToken string) (*EarnSnapshot, error)
}

type CampaignRepository interface {
	// FindEligible returns the single campaign applicable to the vouch event
	// under a fixed total order, or KindNotFound when none matches.
	FindEligible(ctx context.Context, dbx db.DBTX, businessID, locationID uuid.UUID, now time.Time) (*CampaignSnapshot, error)
}

type RewardRepository interface {
	Insert(ctx context.Context, dbx db.DBTX, r *reward.Reward) (uuid.UUID, error)
	FindByToken(ctx context.Context, dbx db.DBTX, token string) (*RewardSnapshot, error)
	// RedeemIfActive flips active→redeemed with a conditional update and
	// returns the updated snapshot; KindConflict when the row was not active.
	RedeemIfActive(ctx context.Context, dbx db.DBTX, id uuid.UUID, redeemedAt time.Time) (*RewardSnapshot, error)
}

type ReviewRepository interface {
	Insert(ctx context.Context, dbx db.DBTX, rev *review.Review) (uuid.UUID, error)
}
