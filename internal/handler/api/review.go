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
	"github.com/google/uuid"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Create a review gated on a completed vouch at the location
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.CreateReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.CreateReview(c.Request.Context(), customerID, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReviewNotAllowed):
			httperr.AbortWithError(c, http.StatusForbidden, err, "No completed vouch for this location", nil)
		case errors.Is(err, commands.ErrDuplicateReview):
			httperr.AbortWithError(c, http.StatusConflict, err, "Review already exists", nil)
		case errors.Is(err, commands.ErrReviewValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid review", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create review", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReviewID(id))
}

// @Summary List location reviews
// @Description List public reviews for a location
// @Tags reviews
// @Produce json
// @Param location_id path string true "Location ID"
// @Success 200 {array} resdto.ReviewListItemResponse
// @Failure 400 {object} map[string]string
// @Router /public/reviews/{location_id} [get]
func (h *ReviewHandler) ListByLocation(c *gin.Context) {
	locationID, err := uuid.Parse(c.Param("location_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid location id", nil)
		return
	}
	items, err := h.q.LocationReviews(c.Request.Context(), locationID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reviews", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": resdto.FromReviewList(items)})
}
