package repository

import (
	"context"
	"time"

	"vouch-backend/internal/domain/vouch"
	"vouch-backend/internal/infra"
	"vouch-backend/internal/infra/db"
	"vouch-backend/internal/pkg/pgconv"
	"vouch-backend/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AttemptRepository struct{}

func NewAttemptRepository() *AttemptRepository {
	return &AttemptRepository{}
}

// UpsertPending relies on the partial unique index over
// (customer_id, location_id) WHERE status = 'pending': concurrent starts for
// the same pair collapse into a single row, and the no-op path is still a
// success for the caller.
func (r *AttemptRepository) UpsertPending(ctx context.Context, dbx db.DBTX, customerID, locationID uuid.UUID, startTime time.Time) (bool, error) {
	const query = `
		INSERT INTO vouch_attempts (customer_id, location_id, status, start_time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (customer_id, location_id) WHERE status = 'pending'
		DO NOTHING`

	tag, err := dbx.Exec(ctx, query, customerID, locationID, string(vouch.StatusPending), startTime)
	if err != nil {
		return false, infra.WrapRepoErr("failed to upsert pending attempt", err)
	}

	return tag.RowsAffected() > 0, nil
}

// FindPendingForUpdate locks the attempt row so concurrent stops serialize:
// the loser of the race re-reads after commit and sees no pending attempt.
// The location's dwell requirement and owner ride along to avoid a second
// round trip inside the transaction.
func (r *AttemptRepository) FindPendingForUpdate(ctx context.Context, dbx db.DBTX, customerID, locationID uuid.UUID) (*commands.PendingAttemptSnapshot, error) {
	const query = `
		SELECT va.id, va.start_time, l.dwell_time_minutes, l.owner_id
		FROM vouch_attempts va
		JOIN locations l ON l.id = va.location_id
		WHERE va.customer_id = $1 AND va.location_id = $2 AND va.status = 'pending'
		ORDER BY va.start_time DESC
		LIMIT 1
		FOR UPDATE OF va`

	var (
		snap      commands.PendingAttemptSnapshot
		startTime pgtype.Timestamptz
		dwell     pgtype.Int4
	)
	err := dbx.QueryRow(ctx, query, customerID, locationID).Scan(&snap.ID, &startTime, &dwell, &snap.BusinessID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no pending attempt", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pending attempt", err)
	}

	snap.StartTime = pgconv.TimeFromPgtype(startTime)
	snap.DwellMinutes = pgconv.Int32PtrFromPgtype(dwell)
	return &snap, nil
}

func (r *AttemptRepository) MarkCompleted(ctx context.Context, dbx db.DBTX, id uuid.UUID) error {
	const query = `UPDATE vouch_attempts SET status = $2 WHERE id = $1`

	tag, err := dbx.Exec(ctx, query, id, string(vouch.StatusCompleted))
	if err != nil {
		return infra.WrapRepoErr("failed to complete attempt", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("attempt vanished before completion", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AttemptRepository) Delete(ctx context.Context, dbx db.DBTX, id uuid.UUID) error {
	const query = `DELETE FROM vouch_attempts WHERE id = $1`

	if _, err := dbx.Exec(ctx, query, id); err != nil {
		return infra.WrapRepoErr("failed to delete attempt", err)
	}
	return nil
}
