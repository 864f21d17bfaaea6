package repository

import (
	"context"
	"time"

	"vouch-backend/internal/domain/reward"
	"vouch-backend/internal/infra"
	"vouch-backend/internal/infra/db"
	"vouch-backend/internal/pkg/pgconv"
	"vouch-backend/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RewardRepository struct{}

func NewRewardRepository() *RewardRepository {
	return &RewardRepository{}
}

func (r *RewardRepository) Insert(ctx context.Context, dbx db.DBTX, rw *reward.Reward) (uuid.UUID, error) {
	const query = `
		INSERT INTO customer_rewards
			(customer_id, campaign_id, business_id, location_id,
			 reward_description, unique_token, sign_nonce, signed_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id uuid.UUID
	err := dbx.QueryRow(ctx, query,
		rw.CustomerID(), rw.CampaignID(), rw.BusinessID(), rw.LocationID(),
		rw.RewardDescription(), rw.UniqueToken(), rw.SignNonce(), rw.SignedAt(), string(rw.Status()),
	).Scan(&id)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("voucher token already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert reward", err)
	}
	return id, nil
}

func (r *RewardRepository) FindByToken(ctx context.Context, dbx db.DBTX, token string) (*commands.RewardSnapshot, error) {
	const query = `
		SELECT id, customer_id, campaign_id, business_id, location_id,
			reward_description, unique_token, sign_nonce, signed_at,
			status, created_at, redeemed_at
		FROM customer_rewards
		WHERE unique_token = $1`

	snap, err := scanRewardSnapshot(dbx.QueryRow(ctx, query, token))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reward not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reward by token", err)
	}
	return snap, nil
}

// RedeemIfActive is the compare-and-swap at the heart of at-most-once
// redemption: only a row still in 'active' transitions, and a concurrent
// redeemer that loses the race matches zero rows and gets KindConflict.
func (r *RewardRepository) RedeemIfActive(ctx context.Context, dbx db.DBTX, id uuid.UUID, redeemedAt time.Time) (*commands.RewardSnapshot, error) {
	const query = `
		UPDATE customer_rewards
		SET status = $3, redeemed_at = $2
		WHERE id = $1 AND status = $4
		RETURNING id, customer_id, campaign_id, business_id, location_id,
			reward_description, unique_token, sign_nonce, signed_at,
			status, created_at, redeemed_at`

	snap, err := scanRewardSnapshot(dbx.QueryRow(ctx, query, id, redeemedAt,
		string(reward.StatusRedeemed), string(reward.StatusActive)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reward is no longer active", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to redeem reward", err)
	}
	return snap, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRewardSnapshot(row rowScanner) (*commands.RewardSnapshot, error) {
	var (
		snap       commands.RewardSnapshot
		signedAt   pgtype.Timestamptz
		createdAt  pgtype.Timestamptz
		redeemedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&snap.ID, &snap.CustomerID, &snap.CampaignID, &snap.BusinessID, &snap.LocationID,
		&snap.RewardDescription, &snap.UniqueToken, &snap.SignNonce, &signedAt,
		&snap.Status, &createdAt, &redeemedAt,
	)
	if err != nil {
		return nil, err
	}

	snap.SignedAt = pgconv.TimeFromPgtype(signedAt)
	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snap.RedeemedAt = pgconv.TimePtrFromPgtype(redeemedAt)
	return &snap, nil
}
