package api

import (
	"net/http"

	"facility-booking/internal/domain/reservation"
	resdto "facility-booking/internal/handler/dto/response"
	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GroupHandler struct {
	cmds commands.GroupCommands
}

func NewGroupHandler(cmds commands.GroupCommands) *GroupHandler {
	return &GroupHandler{cmds: cmds}
}

// @Summary Approve a recurring series
// @Description Approves every pending occurrence; nothing changes if any occurrence is blocked
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Param request body reqdto.StatusActionRequest false "Optional note"
// @Success 200 {object} resdto.GroupActionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /groups/{id}/approve [post]
func (h *GroupHandler) Approve(c *gin.Context) {
	h.apply(c, reservation.ActionApprove)
}

// @Summary Reject a recurring series
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Param request body reqdto.StatusActionRequest false "Optional note"
// @Success 200 {object} resdto.GroupActionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /groups/{id}/reject [post]
func (h *GroupHandler) Reject(c *gin.Context) {
	h.apply(c, reservation.ActionReject)
}

// @Summary Cancel a recurring series
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Param request body reqdto.StatusActionRequest false "Optional note"
// @Success 200 {object} resdto.GroupActionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /groups/{id}/cancel [post]
func (h *GroupHandler) Cancel(c *gin.Context) {
	h.apply(c, reservation.ActionCancel)
}

func (h *GroupHandler) apply(c *gin.Context, action reservation.Action) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid group ID format")
		return
	}
	req, err := bindOptionalNote(c)
	if err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.cmds.ApplyGroupAction(c.Request.Context(), actor, groupID, action, req.Note)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGroupActionResult(result))
}
