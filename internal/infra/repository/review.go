package repository

import (
	"context"

	"vouch-backend/internal/domain/review"
	"vouch-backend/internal/infra"
	"vouch-backend/internal/infra/db"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Insert(ctx context.Context, dbx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	const query = `
		INSERT INTO reviews
			(id, loyalty_transaction_id, customer_id, location_id, business_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := dbx.QueryRow(ctx, query,
		rev.ID(), rev.LoyaltyTxnID(), rev.CustomerID(), rev.LocationID(), rev.BusinessID(),
		rev.Rating().Value(), rev.Comment().String(), rev.CreatedAt(),
	).Scan(&id)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("review already exists for this vouch", err, infra.KindDuplicateKey)
		}
		if infra.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("review references unknown records", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert review", err)
	}
	return id, nil
}
