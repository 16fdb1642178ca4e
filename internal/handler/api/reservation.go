package api

import (
	"net/http"
	"time"

	"facility-booking/internal/domain/reservation"
	reqdto "facility-booking/internal/handler/dto/request"
	resdto "facility-booking/internal/handler/dto/response"
	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"
	"facility-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds     commands.ReservationCommands
	q        queries.ReservationQueries
	location *time.Location
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries, policy shared.BookingPolicy) *ReservationHandler {
	loc := policy.Location
	if loc == nil {
		loc = time.UTC
	}
	return &ReservationHandler{cmds: cmds, q: q, location: loc}
}

// @Summary Create reservation
// @Description Book a unit (or the whole resource) once, or as a recurring series
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.CreateReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}
	in, err := req.ToInput(h.location)
	if err != nil {
		abortBadRequest(c, err, "Invalid recurrence end date")
		return
	}

	result, err := h.cmds.CreateReservation(c.Request.Context(), actor, in)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	resp, err := resdto.FromCreateResult(result)
	if err != nil {
		abortEncodeFailure(c, err)
		return
	}
	if len(resp.Reservations) > 0 {
		c.Header("Location", "/api/reservations/"+resp.Reservations[0].ID.String())
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Get reservation
// @Description Get a reservation by ID. Only the owner or an administrator may read it.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid reservation ID format")
		return
	}

	rm, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	resp, err := resdto.FromReservationRM(rm)
	if err != nil {
		abortEncodeFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List my reservations
// @Description Lists the caller's reservations by start time, one page at a time
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Page size (1-100)"
// @Success 200 {object} resdto.ReservationPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err, "Invalid query parameters")
		return
	}

	page, err := h.q.ListByUser(c.Request.Context(), userID, q.Cursor, q.Limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	resp, err := resdto.FromReservationPage(page)
	if err != nil {
		abortEncodeFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Approve reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.StatusActionRequest false "Optional note"
// @Success 200 {object} resdto.StatusChangeResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/approve [post]
func (h *ReservationHandler) Approve(c *gin.Context) {
	h.changeStatus(c, reservation.ActionApprove)
}

// @Summary Reject reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.StatusActionRequest false "Optional note"
// @Success 200 {object} resdto.StatusChangeResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/reject [post]
func (h *ReservationHandler) Reject(c *gin.Context) {
	h.changeStatus(c, reservation.ActionReject)
}

// @Summary Cancel reservation
// @Description Owners may cancel their own reservations; administrators may cancel any
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.StatusActionRequest false "Optional note"
// @Success 200 {object} resdto.StatusChangeResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	h.changeStatus(c, reservation.ActionCancel)
}

func (h *ReservationHandler) changeStatus(c *gin.Context, action reservation.Action) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid reservation ID format")
		return
	}
	req, err := bindOptionalNote(c)
	if err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.cmds.ChangeStatus(c.Request.Context(), actor, id, action, req.Note)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	resp, err := resdto.FromStatusChange(result)
	if err != nil {
		abortEncodeFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// bindOptionalNote accepts an empty body as "no note".
func bindOptionalNote(c *gin.Context) (reqdto.StatusActionRequest, error) {
	var req reqdto.StatusActionRequest
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	err := c.ShouldBindJSON(&req)
	return req, err
}
