package review

import (
	"time"

	"vouch-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating  = errs.New("rating must be between 1 and 5")
	ErrEmptyComment   = errs.New("comment cannot be empty")
	ErrCommentTooLong = errs.New("comment exceeds maximum length")
)

// Review is feedback gated on a completed vouch: it can only be created by a
// customer holding the POP code of an earn transaction at that location.
type Review struct {
	id           uuid.UUID
	customerID   uuid.UUID
	locationID   uuid.UUID
	businessID   uuid.UUID
	loyaltyTxnID uuid.UUID
	rating       Rating
	comment      Comment
	createdAt    time.Time
}

func NewReview(id, customerID, locationID, businessID, loyaltyTxnID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:           id,
		customerID:   customerID,
		locationID:   locationID,
		businessID:   businessID,
		loyaltyTxnID: loyaltyTxnID,
		rating:       rating,
		comment:      comment,
		createdAt:    now,
	}, nil
}

func (r *Review) ID() uuid.UUID           { return r.id }
func (r *Review) CustomerID() uuid.UUID   { return r.customerID }
func (r *Review) LocationID() uuid.UUID   { return r.locationID }
func (r *Review) BusinessID() uuid.UUID   { return r.businessID }
func (r *Review) LoyaltyTxnID() uuid.UUID { return r.loyaltyTxnID }
func (r *Review) Rating() Rating          { return r.rating }
func (r *Review) Comment() Comment        { return r.comment }
func (r *Review) CreatedAt() time.Time    { return r.createdAt }
