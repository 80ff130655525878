package api

import (
	"net/http"

	reqdto "egress/internal/handler/dto/request"
	resdto "egress/internal/handler/dto/response"
	"egress/internal/handler/httperr"
	"egress/internal/pkg/errs"
	"egress/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReminderHandler struct {
	cmds commands.ReminderCommands
}

func NewReminderHandler(cmds commands.ReminderCommands) *ReminderHandler {
	return &ReminderHandler{cmds: cmds}
}

// @Summary Arm a reminder
// @Description Schedule a cancellation reminder 48 hours before a trial ends and send a confirmation email
// @Tags reminders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReminderRequest true "Create reminder request"
// @Success 201 {object} resdto.CreateReminderResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/reminders [post]
func (h *ReminderHandler) Create(c *gin.Context) {
	var req reqdto.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Arm(c.Request.Context(), req.ToCommand())
	if err != nil {
		if errs.Is(err, errs.ErrValidation) {
			httperr.AbortWithValidation(c, err)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create reminder", nil)
		return
	}

	resp, err := resdto.FromArmResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create reminder", nil)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
