//go:build unit

package reward_test

import (
	"testing"
	"time"

	"vouch-backend/internal/domain/reward"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIssued(t *testing.T) {
	customerID := uuid.New()
	campaignID := uuid.New()
	businessID := uuid.New()
	locationID := uuid.New()
	signedAt := time.Now()

	t.Run("issued reward starts active", func(t *testing.T) {
		r, err := reward.NewIssued(customerID, campaignID, businessID, locationID,
			"Free coffee", "deadbeef", "a1b2c3d4", signedAt)
		require.NoError(t, err)

		assert.Equal(t, reward.StatusActive, r.Status())
		assert.Equal(t, customerID, r.CustomerID())
		assert.Equal(t, "deadbeef", r.UniqueToken())
		assert.Equal(t, "a1b2c3d4", r.SignNonce())
		assert.Equal(t, signedAt, r.SignedAt())
	})

	tests := []struct {
		name                         string
		customer, campaign, business uuid.UUID
		token, nonce                 string
		errIs                        error
	}{
		{name: "missing customer", customer: uuid.Nil, campaign: campaignID, business: businessID, token: "t", nonce: "n", errIs: reward.ErrMissingCustomer},
		{name: "missing campaign", customer: customerID, campaign: uuid.Nil, business: businessID, token: "t", nonce: "n", errIs: reward.ErrMissingCampaign},
		{name: "missing business", customer: customerID, campaign: campaignID, business: uuid.Nil, token: "t", nonce: "n", errIs: reward.ErrMissingBusiness},
		{name: "empty token", customer: customerID, campaign: campaignID, business: businessID, token: "", nonce: "n", errIs: reward.ErrEmptyToken},
		{name: "empty nonce", customer: customerID, campaign: campaignID, business: businessID, token: "t", nonce: "", errIs: reward.ErrEmptyNonce},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reward.NewIssued(tt.customer, tt.campaign, tt.business, locationID,
				"Free coffee", tt.token, tt.nonce, signedAt)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}
