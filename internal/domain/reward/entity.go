package reward

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingCustomer = errors.New("reward requires a customer")
	ErrMissingCampaign = errors.New("reward requires a campaign")
	ErrMissingBusiness = errors.New("reward requires a business")
	ErrEmptyToken      = errors.New("reward requires a signed token")
	ErrEmptyNonce      = errors.New("reward requires the signing nonce")
)

// Status of a voucher. active→redeemed is the only legal transition and it
// happens exactly once, enforced by a conditional update in the store.
type Status string

const (
	StatusActive   Status = "active"
	StatusRedeemed Status = "redeemed"
)

// Reward is a signed, single-use voucher. The uniqueToken is the hex ECDSA
// signature over the issuance payload; signNonce and signedAt are persisted so
// the payload can be reconstructed and the signature re-verified at redemption.
type Reward struct {
	customerID        uuid.UUID
	campaignID        uuid.UUID
	businessID        uuid.UUID
	locationID        uuid.UUID
	rewardDescription string
	uniqueToken       string
	signNonce         string
	signedAt          time.Time
	status            Status
}

// NewIssued builds a freshly signed voucher in active state.
func NewIssued(
	customerID, campaignID, businessID, locationID uuid.UUID,
	rewardDescription, uniqueToken, signNonce string,
	signedAt time.Time,
) (*Reward, error) {
	if customerID == uuid.Nil {
		return nil, ErrMissingCustomer
	}
	if campaignID == uuid.Nil {
		return nil, ErrMissingCampaign
	}
	if businessID == uuid.Nil {
		return nil, ErrMissingBusiness
	}
	if uniqueToken == "" {
		return nil, ErrEmptyToken
	}
	if signNonce == "" {
		return nil, ErrEmptyNonce
	}

	return &Reward{
		customerID:        customerID,
		campaignID:        campaignID,
		businessID:        businessID,
		locationID:        locationID,
		rewardDescription: rewardDescription,
		uniqueToken:       uniqueToken,
		signNonce:         signNonce,
		signedAt:          signedAt,
		status:            StatusActive,
	}, nil
}

func (r *Reward) CustomerID() uuid.UUID     { return r.customerID }
func (r *Reward) CampaignID() uuid.UUID     { return r.campaignID }
func (r *Reward) BusinessID() uuid.UUID     { return r.businessID }
func (r *Reward) LocationID() uuid.UUID     { return r.locationID }
func (r *Reward) RewardDescription() string { return r.rewardDescription }
func (r *Reward) UniqueToken() string       { return r.uniqueToken }
func (r *Reward) SignNonce() string         { return r.signNonce }
func (r *Reward) SignedAt() time.Time       { return r.signedAt }
func (r *Reward) Status() Status            { return r.status }
