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

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbx}
}

func (r *ReviewReadStore) ListByLocation(ctx context.Context, locationID uuid.UUID) ([]queries.ReviewListItem, error) {
	const query = `
		SELECT id, rating, comment, created_at
		FROM reviews
		WHERE location_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, locationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	items := make([]queries.ReviewListItem, 0)
	for rows.Next() {
		var (
			item      queries.ReviewListItem
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.Rating, &item.Comment, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}
	return items, nil
}
