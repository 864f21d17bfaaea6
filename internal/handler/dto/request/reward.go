package request

type RedeemRewardRequest struct {
	UniqueToken string `json:"unique_token" binding:"required"`
}
