package readstore

import (
	"context"

	"vouch-backend/internal/infra"
	"vouch-backend/internal/infra/db"
	"vouch-backend/internal/infra/repository"
	"vouch-backend/internal/pkg/pgconv"
	"vouch-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type VouchReadStore struct {
	db db.DBTX
}

func NewVouchReadStore(dbx db.DBTX) *VouchReadStore {
	return &VouchReadStore{db: dbx}
}

func (r *VouchReadStore) LatestEarn(ctx context.Context, customerID, locationID uuid.UUID) (*queries.EarnView, error) {
	const query = `
		SELECT id, pop_token, created_at
		FROM loyalty_transactions
		WHERE customer_id = $1 AND location_id = $2 AND transaction_type = $3
		ORDER BY created_at DESC
		LIMIT 1`

	var (
		view      queries.EarnView
		createdAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, customerID, locationID, repository.EarnTransactionType).
		Scan(&view.ID, &view.PopToken, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no earn transaction", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read earn transaction", err)
	}

	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}

func (r *VouchReadStore) PendingAttempt(ctx context.Context, customerID, locationID uuid.UUID) (*queries.PendingAttemptView, error) {
	const query = `
		SELECT va.start_time, l.dwell_time_minutes
		FROM vouch_attempts va
		JOIN locations l ON l.id = va.location_id
		WHERE va.customer_id = $1 AND va.location_id = $2 AND va.status = 'pending'
		ORDER BY va.start_time DESC
		LIMIT 1`

	var (
		view      queries.PendingAttemptView
		startTime pgtype.Timestamptz
		dwell     pgtype.Int4
	)
	err := r.db.QueryRow(ctx, query, customerID, locationID).Scan(&startTime, &dwell)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no pending attempt", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read pending attempt", err)
	}

	view.StartTime = pgconv.TimeFromPgtype(startTime)
	view.DwellMinutes = pgconv.Int32PtrFromPgtype(dwell)
	return &view, nil
}
