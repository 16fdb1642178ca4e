package api

import (
	"errors"
	"net/http"

	"facility-booking/internal/domain/recurrence"
	resdto "facility-booking/internal/handler/dto/response"
	"facility-booking/internal/handler/httperr"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errs.New("no authenticated actor in context")

type errorMapping struct {
	err    error
	status int
	msg    string
}

// checked in order; the first match wins
var errorMappings = []errorMapping{
	{errs.ErrInvalidInterval, http.StatusBadRequest, "Invalid time interval"},
	{recurrence.ErrInvalidPattern, http.StatusBadRequest, "Invalid recurrence pattern"},
	{recurrence.ErrUntilBeforeAnchor, http.StatusBadRequest, "Recurrence ends before the first occurrence"},
	{recurrence.ErrTooManyOccurrences, http.StatusBadRequest, "Recurrence has too many occurrences"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{errs.ErrForbidden, http.StatusForbidden, "Insufficient permissions"},
	{errs.ErrResourceNotFound, http.StatusNotFound, "Resource not found"},
	{errs.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{errs.ErrGroupNotFound, http.StatusNotFound, "Reservation group not found"},
	{errs.ErrReservationConflict, http.StatusConflict, "Requested time slot is not available"},
	{errs.ErrUnknownUnit, http.StatusUnprocessableEntity, "Unknown unit"},
	{errs.ErrWholeUnitBookingForbidden, http.StatusUnprocessableEntity, "Unit cannot be booked as a whole"},
	{errs.ErrInvalidTransition, http.StatusUnprocessableEntity, "Status change not allowed"},
	{errs.ErrAmbiguousDefaultRule, http.StatusUnprocessableEntity, "Pricing is misconfigured for this resource"},
}

func abortWithUseCaseError(c *gin.Context, err error) {
	var conflict *commands.ConflictError
	if errors.As(err, &conflict) {
		httperr.AbortWithError(c, http.StatusConflict, err, "Requested time slot is not available", gin.H{
			"blockers": resdto.FromBlockers(conflict.Blockers),
		})
		return
	}
	for _, m := range errorMappings {
		if errs.Is(err, m.err) {
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func abortUnauthenticated(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}

func abortEncodeFailure(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusInternalServerError, errs.Wrap(err, "encode response"), "Internal server error", nil)
}
