package api

import (
	"errors"
	"net/http"

	reqdto "driveshare/internal/handler/dto/request"
	resdto "driveshare/internal/handler/dto/response"
	"driveshare/internal/handler/httperr"
	"driveshare/internal/handler/middleware"
	"driveshare/internal/usecase/commands"
	"driveshare/internal/usecase/queries"

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
// @Description Review a vehicle after a completed reservation
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	renterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateReview(c.Request.Context(), req.ToCommand(), renterID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errors.Is(err, commands.ErrReservationNotEligible):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Reservation not eligible for review", nil)
		case errors.Is(err, commands.ErrDuplicateReview):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation already reviewed", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Create review failed", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": result.ReviewID.String()})
}

// @Summary List vehicle reviews
// @Tags reviews
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Router /vehicles/{id}/reviews [get]
func (h *ReviewHandler) ListByVehicle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle ID format", nil)
		return
	}

	views, err := h.q.ListByVehicle(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.ReviewResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromReviewView(view)
	}
	c.JSON(http.StatusOK, response)
}
