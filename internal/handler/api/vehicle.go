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

type VehicleHandler struct {
	cmds         commands.VehicleCommands
	q            queries.VehicleQueries
	availability queries.AvailabilityQueries
	calendar     queries.CalendarQueries
	reservations queries.ReservationQueries
}

func NewVehicleHandler(
	cmds commands.VehicleCommands,
	q queries.VehicleQueries,
	availability queries.AvailabilityQueries,
	calendar queries.CalendarQueries,
	reservations queries.ReservationQueries,
) *VehicleHandler {
	return &VehicleHandler{
		cmds:         cmds,
		q:            q,
		availability: availability,
		calendar:     calendar,
		reservations: reservations,
	}
}

// @Summary Create vehicle
// @Description List a new vehicle (owner only)
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateVehicleRequest true "Vehicle request"
// @Success 201 {object} resdto.VehicleResponse
// @Failure 400 {object} httperr.Response
// @Router /vehicles [post]
func (h *VehicleHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	vehicleID, err := h.cmds.CreateVehicle(c.Request.Context(), req.ToCommand(), ownerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Create vehicle failed", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), vehicleID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load vehicle", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromVehicleView(view))
}

// @Summary List vehicles
// @Description List active vehicles
// @Tags vehicles
// @Produce json
// @Success 200 {array} resdto.VehicleResponse
// @Router /vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	views, err := h.q.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.VehicleResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromVehicleView(view)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get vehicle
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} resdto.VehicleResponse
// @Failure 404 {object} httperr.Response
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrVehicleNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromVehicleView(view))
}

// @Summary Update vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Param request body reqdto.UpdateVehicleRequest true "Vehicle request"
// @Success 200 {object} resdto.VehicleResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /vehicles/{id} [put]
func (h *VehicleHandler) Update(c *gin.Context) {
	actorID, role, ok := actorFromContext(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle ID format", nil)
		return
	}

	var req reqdto.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.UpdateVehicle(c.Request.Context(), id, req.ToCommand(), actorID, role); err != nil {
		h.abortVehicleError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load vehicle", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVehicleView(view))
}

// @Summary Archive vehicle
// @Description Hide the vehicle from new bookings; existing reservations are untouched
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) Archive(c *gin.Context) {
	actorID, role, ok := actorFromContext(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle ID format", nil)
		return
	}

	if err := h.cmds.ArchiveVehicle(c.Request.Context(), id, actorID, role); err != nil {
		h.abortVehicleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *VehicleHandler) abortVehicleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrVehicleNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found", nil)
	case errors.Is(err, commands.ErrNotVehicleOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not the vehicle owner", nil)
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Vehicle update failed", nil)
	}
}

// @Summary Check availability
// @Description Report whether the vehicle is free for every day in the range
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /vehicles/{id}/availability [get]
func (h *VehicleHandler) Availability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle ID format", nil)
		return
	}

	view, err := h.availability.Check(c.Request.Context(), id, c.Query("start"), c.Query("end"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidDates):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		case errors.Is(err, queries.ErrVehicleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Vehicle calendar
// @Description Per-day reservation counts for a calendar month
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /vehicles/{id}/calendar [get]
func (h *VehicleHandler) Calendar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle ID format", nil)
		return
	}

	view, err := h.calendar.GetMonth(c.Request.Context(), id, c.Query("month"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidMonth):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid month", nil)
		case errors.Is(err, queries.ErrVehicleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCalendarView(view))
}

// @Summary List vehicle reservations
// @Description List reservations for a vehicle (owner only)
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /vehicles/{id}/reservations [get]
func (h *VehicleHandler) Reservations(c *gin.Context) {
	actorID, role, ok := actorFromContext(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAuthContext, "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle ID format", nil)
		return
	}

	items, err := h.reservations.ListByVehicle(c.Request.Context(), actorID, role, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrVehicleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found", nil)
		case errors.Is(err, queries.ErrReservationAccess):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response := make([]*resdto.ReservationListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromReservationListItem(item)
	}
	c.JSON(http.StatusOK, response)
}
