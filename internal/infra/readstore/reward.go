package readstore

import (
	"context"

	"vouch-backend/internal/infra"
	"vouch-backend/internal/infra/db"
	"vouch-backend/internal/pkg/pgconv"
	"vouch-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RewardReadStore struct {
	db db.DBTX
}

func NewRewardReadStore(dbx db.DBTX) *RewardReadStore {
	return &RewardReadStore{db: dbx}
}

func (r *RewardReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]queries.RewardListItem, error) {
	const query = `
		SELECT cr.id, cr.reward_description, l.name, cr.unique_token, cr.status, cr.created_at, cr.redeemed_at
		FROM customer_rewards cr
		LEFT JOIN locations l ON l.id = cr.location_id
		WHERE cr.customer_id = $1
		ORDER BY cr.created_at DESC`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rewards", err)
	}
	defer rows.Close()

	items := make([]queries.RewardListItem, 0)
	for rows.Next() {
		var (
			item         queries.RewardListItem
			locationName pgtype.Text
			createdAt    pgtype.Timestamptz
			redeemedAt   pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.RewardDescription, &locationName, &item.UniqueToken,
			&item.Status, &createdAt, &redeemedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reward row", err)
		}
		item.LocationName = pgconv.StringPtrFromPgtype(locationName)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		item.RedeemedAt = pgconv.TimePtrFromPgtype(redeemedAt)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reward rows", err)
	}
	return items, nil
}
