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

type VouchHandler struct {
	cmds commands.VouchCommands
	q    queries.VouchQueries
}

func NewVouchHandler(cmds commands.VouchCommands, q queries.VouchQueries) *VouchHandler {
	return &VouchHandler{cmds: cmds, q: q}
}

// @Summary Start vouch
// @Description Start a dwell session at a location
// @Tags vouch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StartVouchRequest true "Start vouch request"
// @Success 201 {object} resdto.StartVouchResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vouch/start [post]
func (h *VouchHandler) Start(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.StartVouchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Start(c.Request.Context(), customerID, req.LocationID)
	if err != nil {
		if errors.Is(err, commands.ErrLocationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Location not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to start vouch", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromStartResult(result))
}

// @Summary Stop vouch
// @Description Stop the pending dwell session and evaluate the dwell requirement
// @Tags vouch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StopVouchRequest true "Stop vouch request"
// @Success 200 {object} resdto.StopVouchResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vouch/stop [post]
func (h *VouchHandler) Stop(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.StopVouchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Stop(c.Request.Context(), customerID, req.LocationID)
	if err != nil {
		if errors.Is(err, commands.ErrNoPendingVouch) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "No pending vouch attempt", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to stop vouch", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStopResult(result))
}

// @Summary Vouch status
// @Description Poll the state of the dwell session at a location
// @Tags vouch
// @Produce json
// @Security BearerAuth
// @Param location_id path string true "Location ID"
// @Success 200 {object} resdto.VouchStatusResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /vouch/status/{location_id} [get]
func (h *VouchHandler) Status(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	locationID, err := uuid.Parse(c.Param("location_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid location id", nil)
		return
	}
	view, err := h.q.Status(c.Request.Context(), customerID, locationID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to read vouch status", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVouchStatusView(view))
}
