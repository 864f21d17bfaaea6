package response

import (
	"vouch-backend/internal/usecase/commands"
	"vouch-backend/internal/usecase/queries"
)

type RewardItemResponse struct {
	ID                string  `json:"id"`
	RewardDescription string  `json:"reward_description"`
	LocationName      *string `json:"location_name,omitempty"`
	UniqueToken       string  `json:"unique_token"`
	Status            string  `json:"status"`
	CreatedAt         int64   `json:"created_at"`
	RedeemedAt        *int64  `json:"redeemed_at,omitempty"`
}

func FromRewardList(items []queries.RewardListItem) []*RewardItemResponse {
	res := make([]*RewardItemResponse, len(items))
	for i, it := range items {
		item := &RewardItemResponse{
			ID:                it.ID.String(),
			RewardDescription: it.RewardDescription,
			LocationName:      it.LocationName,
			UniqueToken:       it.UniqueToken,
			Status:            it.Status,
			CreatedAt:         it.CreatedAt.Unix(),
		}
		if it.RedeemedAt != nil {
			ts := it.RedeemedAt.Unix()
			item.RedeemedAt = &ts
		}
		res[i] = item
	}
	return res
}

type RedeemRewardResponse struct {
	Message           string `json:"message"`
	RewardDescription string `json:"reward_description"`
	CustomerID        string `json:"customer_id"`
	RedeemedAt        *int64 `json:"redeemed_at,omitempty"`
}

func FromRedeemResult(r *commands.RedeemResult) *RedeemRewardResponse {
	resp := &RedeemRewardResponse{
		Message:           "Reward redeemed",
		RewardDescription: r.RewardDescription,
		CustomerID:        r.CustomerID.String(),
	}
	if r.RedeemedAt != nil {
		ts := r.RedeemedAt.Unix()
		resp.RedeemedAt = &ts
	}
	return resp
}
