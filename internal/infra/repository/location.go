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

type LocationRepository struct{}

func NewLocationRepository() *LocationRepository {
	return &LocationRepository{}
}

func (r *LocationRepository) FindActive(ctx context.Context, dbx db.DBTX, id uuid.UUID) (*commands.LocationSnapshot, error) {
	const query = `
		SELECT id, owner_id, dwell_time_minutes
		FROM locations
		WHERE id = $1 AND is_active = true`

	var (
		snap  commands.LocationSnapshot
		dwell pgtype.Int4
	)
	err := dbx.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.BusinessID, &dwell)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("location not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find location", err)
	}

	snap.DwellMinutes = pgconv.Int32PtrFromPgtype(dwell)
	return &snap, nil
}
