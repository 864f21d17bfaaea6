//go:build e2e

package reward_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"vouch-backend/internal/domain/identity"
	"vouch-backend/internal/handler/dto/request"
	"vouch-backend/internal/handler/dto/response"
	"vouch-backend/tests/common/authtest"
	"vouch-backend/tests/common/dbtest"
	"vouch-backend/tests/common/httptest"
	"vouch-backend/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	stopURL      = "/api/vouch/stop"
	redeemURL    = "/api/rewards/redeem"
	myRewardsURL = "/api/my-rewards"
)

type RewardSuite struct {
	e2e.SharedSuite
}

func (s *RewardSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestRewardSuite(t *testing.T) {
	suite.Run(t, new(RewardSuite))
}

// earnReward drives a customer through a completed vouch at a location with an
// active campaign, producing a signed reward, and returns its unique token.
func (s *RewardSuite) earnReward(t *testing.T, customerToken string, customerID, locationID uuid.UUID) string {
	t.Helper()

	dbtest.CreatePendingAttempt(t, s.DB, customerID, locationID, time.Now().Add(-10*time.Minute))

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, stopURL,
		request.StopVouchRequest{LocationID: locationID}, customerToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stopped response.StopVouchResponse
	httptest.DecodeResponseBody(t, w.Body, &stopped)
	require.Equal(t, "completed", stopped.Status)

	var token string
	err := s.DB.QueryRow(t.Context(),
		`SELECT unique_token FROM customer_rewards WHERE customer_id = $1 ORDER BY created_at DESC LIMIT 1`,
		customerID).Scan(&token)
	require.NoError(t, err, "expected the completed vouch to have issued a reward")
	return token
}

func (s *RewardSuite) TestRewardIssuanceAndRedemption() {
	jwtHelper := authtest.NewJWTHelper(s.Config.JWT)

	s.Run("campaign issues a redeemable reward", func() {
		t := s.T()
		customerID := uuid.New()
		businessID := uuid.New()
		customerToken := jwtHelper.GenerateToken(t, customerID, identity.RoleCustomer)
		businessToken := jwtHelper.GenerateToken(t, businessID, identity.RoleBusiness)
		locationID := dbtest.CreateTestLocation(t, s.DB, businessID, "Reward Cafe", nil)
		dbtest.CreateTestCampaign(t, s.DB, businessID, &locationID, "Free coffee")

		uniqueToken := s.earnReward(t, customerToken, customerID, locationID)

		// The customer sees the active reward in their list.
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, myRewardsURL, nil, customerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var listBody struct {
			Rewards []response.RewardItemResponse `json:"rewards"`
		}
		httptest.DecodeResponseBody(t, w.Body, &listBody)
		require.Len(t, listBody.Rewards, 1)
		require.Equal(t, "Free coffee", listBody.Rewards[0].RewardDescription)
		require.Equal(t, uniqueToken, listBody.Rewards[0].UniqueToken)
		require.Equal(t, "active", listBody.Rewards[0].Status)
		require.Nil(t, listBody.Rewards[0].RedeemedAt)

		// The owning business redeems it.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			request.RedeemRewardRequest{UniqueToken: uniqueToken}, businessToken)

		var redeemed response.RedeemRewardResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &redeemed)
		require.Equal(t, "Free coffee", redeemed.RewardDescription)
		require.Equal(t, customerID.String(), redeemed.CustomerID)
		require.NotNil(t, redeemed.RedeemedAt)

		// A second redemption is rejected as already used.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			request.RedeemRewardRequest{UniqueToken: uniqueToken}, businessToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// And the customer's list now shows it as redeemed.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, myRewardsURL, nil, customerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		httptest.DecodeResponseBody(t, w.Body, &listBody)
		require.Len(t, listBody.Rewards, 1)
		require.Equal(t, "redeemed", listBody.Rewards[0].Status)
		require.NotNil(t, listBody.Rewards[0].RedeemedAt)
	})

	s.Run("no reward without an active campaign", func() {
		t := s.T()
		customerID := uuid.New()
		customerToken := jwtHelper.GenerateToken(t, customerID, identity.RoleCustomer)
		locationID := dbtest.CreateTestLocation(t, s.DB, uuid.New(), "Plain Cafe", nil)

		dbtest.CreatePendingAttempt(t, s.DB, customerID, locationID, time.Now().Add(-10*time.Minute))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, stopURL,
			request.StopVouchRequest{LocationID: locationID}, customerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var stopped response.StopVouchResponse
		httptest.DecodeResponseBody(t, w.Body, &stopped)
		require.Equal(t, "completed", stopped.Status)

		var count int
		err := s.DB.QueryRow(t.Context(),
			`SELECT count(*) FROM customer_rewards WHERE customer_id = $1`, customerID).Scan(&count)
		require.NoError(t, err)
		require.Zero(t, count)
	})

	s.Run("only the owning business can redeem", func() {
		t := s.T()
		customerID := uuid.New()
		businessID := uuid.New()
		customerToken := jwtHelper.GenerateToken(t, customerID, identity.RoleCustomer)
		otherBusinessToken := jwtHelper.GenerateToken(t, uuid.New(), identity.RoleBusiness)
		locationID := dbtest.CreateTestLocation(t, s.DB, businessID, "Reward Cafe", nil)
		dbtest.CreateTestCampaign(t, s.DB, businessID, nil, "Free dessert")

		uniqueToken := s.earnReward(t, customerToken, customerID, locationID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			request.RedeemRewardRequest{UniqueToken: uniqueToken}, otherBusinessToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		// Still active for the rightful owner.
		var status string
		err := s.DB.QueryRow(t.Context(),
			`SELECT status FROM customer_rewards WHERE unique_token = $1`, uniqueToken).Scan(&status)
		require.NoError(t, err)
		require.Equal(t, "active", status)
	})

	s.Run("unknown token", func() {
		t := s.T()
		businessToken := jwtHelper.GenerateToken(t, uuid.New(), identity.RoleBusiness)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			request.RedeemRewardRequest{UniqueToken: "deadbeef"}, businessToken)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("tampered signature is rejected", func() {
		t := s.T()
		customerID := uuid.New()
		businessID := uuid.New()
		customerToken := jwtHelper.GenerateToken(t, customerID, identity.RoleCustomer)
		businessToken := jwtHelper.GenerateToken(t, businessID, identity.RoleBusiness)
		locationID := dbtest.CreateTestLocation(t, s.DB, businessID, "Reward Cafe", nil)
		dbtest.CreateTestCampaign(t, s.DB, businessID, nil, "Free refill")

		uniqueToken := s.earnReward(t, customerToken, customerID, locationID)

		// Corrupt the stored nonce so the persisted signature no longer verifies.
		_, err := s.DB.Exec(t.Context(),
			`UPDATE customer_rewards SET sign_nonce = 'ffffffffffffffff' WHERE unique_token = $1`, uniqueToken)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			request.RedeemRewardRequest{UniqueToken: uniqueToken}, businessToken)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("customers cannot redeem", func() {
		t := s.T()
		customerToken := jwtHelper.GenerateToken(t, uuid.New(), identity.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			request.RedeemRewardRequest{UniqueToken: "deadbeef"}, customerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("concurrent redemption honors exactly one", func() {
		t := s.T()
		customerID := uuid.New()
		businessID := uuid.New()
		customerToken := jwtHelper.GenerateToken(t, customerID, identity.RoleCustomer)
		businessToken := jwtHelper.GenerateToken(t, businessID, identity.RoleBusiness)
		locationID := dbtest.CreateTestLocation(t, s.DB, businessID, "Reward Cafe", nil)
		dbtest.CreateTestCampaign(t, s.DB, businessID, nil, "Free lunch")

		uniqueToken := s.earnReward(t, customerToken, customerID, locationID)

		const attempts = 4
		codes := make([]int, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
					request.RedeemRewardRequest{UniqueToken: uniqueToken}, businessToken)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		successes, conflicts := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusOK:
				successes++
			case http.StatusConflict:
				conflicts++
			}
		}
		require.Equal(t, 1, successes, "exactly one redemption must win: %v", codes)
		require.Equal(t, attempts-1, conflicts, "losers must see conflict: %v", codes)
	})
}
