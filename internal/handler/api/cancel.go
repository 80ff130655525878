package api

import (
	"net/http"

	"egress/internal/handler/pages"
	"egress/internal/pkg/magichash"
	"egress/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const actionDelete = "delete"

// CancelHandler serves the one-click link from reminder emails. Possession of
// the token is the only credential. Every outcome renders an HTML page.
type CancelHandler struct {
	cmds commands.ReminderCommands
}

func NewCancelHandler(cmds commands.ReminderCommands) *CancelHandler {
	return &CancelHandler{cmds: cmds}
}

// @Summary Cancel a reminder
// @Description Cancel (or delete) a reminder using the token from its email
// @Tags reminders
// @Produce html
// @Param hash path string true "Magic hash"
// @Param action query string false "cancel (default) or delete"
// @Success 200 {string} string "HTML page"
// @Failure 500 {string} string "HTML page"
// @Router /api/cancel/{hash} [get]
func (h *CancelHandler) Cancel(c *gin.Context) {
	hash := c.Param("hash")
	if !magichash.Valid(hash) {
		c.HTML(http.StatusOK, pages.MessagePage, pages.NotFound)
		return
	}

	res, err := h.cmds.CancelByToken(c.Request.Context(), hash)
	if err != nil {
		_ = c.Error(err)
		c.HTML(http.StatusInternalServerError, pages.MessagePage, pages.CancelFailed)
		return
	}

	switch res.Outcome {
	case commands.OutcomeCancelled:
		deleted := c.Query("action") == actionDelete
		c.HTML(http.StatusOK, pages.CancelledPage, pages.NewCancelled(res.Reminder.ServiceName().String(), deleted))
	case commands.OutcomeAlreadyCancelled:
		c.HTML(http.StatusOK, pages.MessagePage, pages.AlreadyCancelled)
	default:
		c.HTML(http.StatusOK, pages.MessagePage, pages.NotFound)
	}
}
