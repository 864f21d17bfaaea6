package repository

import (
	"context"
	"time"

	"vouch-backend/internal/infra"
	"vouch-backend/internal/infra/db"
	"vouch-backend/internal/pkg/pgconv"
	"vouch-backend/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CampaignRepository struct{}

func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{}
}

// FindEligible picks at most one campaign per vouch event. The ORDER BY gives
// "first match wins" a stable total order; there is no explicit priority field.
func (r *CampaignRepository) FindEligible(ctx context.Context, dbx db.DBTX, businessID, locationID uuid.UUID, now time.Time) (*commands.CampaignSnapshot, error) {
	const query = `
		SELECT id, owner_id, reward_description, is_active, location_id, start_date, end_date
		FROM campaigns
		WHERE owner_id = $1
			AND is_active = true
			AND (location_id = $2 OR location_id IS NULL)
			AND start_date <= $3 AND end_date >= $3
		ORDER BY created_at, id
		LIMIT 1`

	var (
		snap               commands.CampaignSnapshot
		campaignLocation   pgtype.UUID
		startDate, endDate pgtype.Timestamptz
	)
	err := dbx.QueryRow(ctx, query, businessID, locationID, now).
		Scan(&snap.ID, &snap.OwnerID, &snap.RewardDescription, &snap.IsActive, &campaignLocation, &startDate, &endDate)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no eligible campaign", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find eligible campaign", err)
	}

	snap.LocationID = pgconv.UUIDPtrFromPgtype(campaignLocation)
	snap.StartDate = pgconv.TimeFromPgtype(startDate)
	snap.EndDate = pgconv.TimeFromPgtype(endDate)
	return &snap, nil
}
