package api

import (
	"net/http"

	resdto "driveshare/internal/handler/dto/response"
	"driveshare/internal/handler/httperr"
	"driveshare/internal/handler/middleware"
	"driveshare/internal/usecase/commands"
	"driveshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PresenceHandler struct {
	cmds commands.PresenceCommands
	q    queries.PresenceQueries
}

func NewPresenceHandler(cmds commands.PresenceCommands, q queries.PresenceQueries) *PresenceHandler {
	return &PresenceHandler{cmds: cmds, q: q}
}

// @Summary Presence heartbeat
// @Description Mark the current user as viewing a vehicle listing; expires after the presence TTL
// @Tags presence
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Router /vehicles/{id}/presence [post]
func (h *PresenceHandler) Heartbeat(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle ID format", nil)
		return
	}

	if err := h.cmds.Heartbeat(c.Request.Context(), id, userID); err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Presence unavailable", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Leave presence
// @Tags presence
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 204
// @Router /vehicles/{id}/presence [delete]
func (h *PresenceHandler) Leave(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle ID format", nil)
		return
	}

	if err := h.cmds.Leave(c.Request.Context(), id, userID); err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Presence unavailable", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Current viewers
// @Description Count of users currently viewing a vehicle listing
// @Tags presence
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} resdto.PresenceResponse
// @Failure 400 {object} httperr.Response
// @Router /vehicles/{id}/presence [get]
func (h *PresenceHandler) Viewers(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle ID format", nil)
		return
	}

	view, err := h.q.Viewers(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Presence unavailable", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPresenceView(view))
}
