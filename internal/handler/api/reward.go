package api

import (
	"errors"
	"net/http"

	reqdto "vouch-backend/internal/handler/dto/request"
	resdto "vouch-backend/internal/handler/dto/response"
	"vouch-backend/internal/handler/httperr"
	"vouch-backend/internal/handler/middleware"
	"vouch-backend/internal/usecase/commands"
	"vouch-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RewardHandler struct {
	cmds commands.RedeemCommands
	q    queries.RewardQueries
}

func NewRewardHandler(cmds commands.RedeemCommands, q queries.RewardQueries) *RewardHandler {
	return &RewardHandler{cmds: cmds, q: q}
}

// @Summary Redeem reward
// @Description Redeem a signed voucher token, at most once
// @Tags rewards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemRewardRequest true "Redeem request"
// @Success 200 {object} resdto.RedeemRewardResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rewards/redeem [post]
func (h *RewardHandler) Redeem(c *gin.Context) {
	businessID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.RedeemRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Redeem(c.Request.Context(), req.UniqueToken, businessID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRewardNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reward not found", nil)
		case errors.Is(err, commands.ErrWrongBusiness):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Reward belongs to another business", nil)
		case errors.Is(err, commands.ErrAlreadyRedeemed):
			var detail any
			if result != nil && result.RedeemedAt != nil {
				detail = gin.H{"redeemed_at": result.RedeemedAt.Unix()}
			}
			httperr.AbortWithError(c, http.StatusConflict, err, "Reward already redeemed", detail)
		case errors.Is(err, commands.ErrRewardNotActive):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Reward is not redeemable", nil)
		case errors.Is(err, commands.ErrInvalidSignature):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Reward signature invalid", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to redeem reward", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromRedeemResult(result))
}

// @Summary My rewards
// @Description List the authenticated customer's vouchers
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RewardItemResponse
// @Failure 401 {object} map[string]string
// @Router /my-rewards [get]
func (h *RewardHandler) MyRewards(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	items, err := h.q.MyRewards(c.Request.Context(), customerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list rewards", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rewards": resdto.FromRewardList(items)})
}
