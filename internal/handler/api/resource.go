package api

import (
	"net/http"
	"time"

	reqdto "facility-booking/internal/handler/dto/request"
	resdto "facility-booking/internal/handler/dto/response"
	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/usecase/queries"
	"facility-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ResourceHandler serves the read side of one resource's booking calendar.
type ResourceHandler struct {
	q        queries.BookingQueries
	location *time.Location
}

func NewResourceHandler(q queries.BookingQueries, policy shared.BookingPolicy) *ResourceHandler {
	loc := policy.Location
	if loc == nil {
		loc = time.UTC
	}
	return &ResourceHandler{q: q, location: loc}
}

func resourceID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid resource ID format")
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Check availability
// @Description Reports whether a unit is free for an interval and which reservations block it
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param unit_id query string false "Unit ID; omit for the whole resource"
// @Param start query string true "Start (RFC3339)"
// @Param end query string true "End (RFC3339)"
// @Param exclude_reservation_id query string false "Reservation to ignore"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /resources/{id}/availability [get]
func (h *ResourceHandler) Availability(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err, "Invalid query parameters")
		return
	}

	result, err := h.q.CheckAvailability(c.Request.Context(), q.ToInput(id))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConflictResult(result))
}

// @Summary Quote a price
// @Description Prices an interval for the caller's roles without booking it
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param start query string true "Start (RFC3339)"
// @Param end query string true "End (RFC3339)"
// @Success 200 {object} resdto.PriceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/quote [get]
func (h *ResourceHandler) Quote(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	id, ok := resourceID(c)
	if !ok {
		return
	}
	var q reqdto.QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err, "Invalid query parameters")
		return
	}

	view, err := h.q.Quote(c.Request.Context(), actor, q.ToInput(id))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary List recurring series
// @Description Lists the recurring series with occurrences in [from, to), earliest first
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param from query string true "Window start (RFC3339)"
// @Param to query string true "Window end (RFC3339)"
// @Success 200 {array} resdto.GroupResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/groups [get]
func (h *ResourceHandler) Groups(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}
	var q reqdto.GroupsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err, "Invalid query parameters")
		return
	}

	groups, err := h.q.ListGroups(c.Request.Context(), id, q.From, q.To)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	resp, err := resdto.FromGroupViews(groups)
	if err != nil {
		abortEncodeFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Day layout
// @Description Column placement of one day's reservations for calendar rendering
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param day query string true "Day (YYYY-MM-DD) in the booking time zone"
// @Param unit_id query string false "Only reservations related to this unit"
// @Success 200 {object} resdto.DayLayoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/layout [get]
func (h *ResourceHandler) Layout(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}
	var q reqdto.LayoutQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err, "Invalid query parameters")
		return
	}
	day, err := q.ParseDay(h.location)
	if err != nil {
		abortBadRequest(c, err, "Invalid day")
		return
	}

	view, err := h.q.DayLayout(c.Request.Context(), id, day, q.Unit())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	resp, err := resdto.FromDayLayout(view)
	if err != nil {
		abortEncodeFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
