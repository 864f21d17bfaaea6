package repository

import (
	"context"

	"vouch-backend/internal/infra"
	"vouch-backend/internal/infra/db"
	"vouch-backend/internal/pkg/pgconv"
	"vouch-backend/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// EarnTransactionType marks a loyalty transaction minted by a completed vouch.
const EarnTransactionType = "earn_vouch"

type LoyaltyRepository struct{}

func NewLoyaltyRepository() *LoyaltyRepository {
	return &LoyaltyRepository{}
}

func (r *LoyaltyRepository) InsertEarn(ctx context.Context, dbx db.DBTX, customerID, locationID, businessID uuid.UUID, popToken string) (uuid.UUID, error) {
	const query = `
		INSERT INTO loyalty_transactions
			(customer_id, location_id, business_id, transaction_type, points_change, pop_token)
		VALUES ($1, $2, $3, $4, 1, $5)
		RETURNING id`

	var id uuid.UUID
	err := dbx.QueryRow(ctx, query, customerID, locationID, businessID, EarnTransactionType, popToken).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert earn transaction", err)
	}
	return id, nil
}

func (r *LoyaltyRepository) FindEarnByPopToken(ctx context.Context, dbx db.DBTX, customerID, locationID uuid.UUID, popToken string) (*commands.EarnSnapshot, error) {
	const query = `
		SELECT id, business_id, pop_token, created_at
		FROM loyalty_transactions
		WHERE customer_id = $1 AND location_id = $2 AND pop_token = $3
			AND transaction_type = $4
		ORDER BY created_at DESC
		LIMIT 1`

	var (
		snap      commands.EarnSnapshot
		createdAt pgtype.Timestamptz
	)
	err := dbx.QueryRow(ctx, query, customerID, locationID, popToken, EarnTransactionType).
		Scan(&snap.ID, &snap.BusinessID, &snap.PopToken, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("earn transaction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find earn transaction", err)
	}

	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &snap, nil
}
