package api

import (
	"net/http"
	"strconv"

	resdto "egress/internal/handler/dto/response"
	"egress/internal/handler/httperr"
	"egress/internal/pkg/clock"
	"egress/internal/usecase/commands"
	"egress/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DispatchHandler struct {
	cmds commands.DispatchCommands
}

func NewDispatchHandler(cmds commands.DispatchCommands) *DispatchHandler {
	return &DispatchHandler{cmds: cmds}
}

// @Summary Run a dispatch pass
// @Description Send trigger alerts for every due reminder. Called by an external scheduler.
// @Tags dispatch
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DispatchResponse
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/cron [get]
func (h *DispatchHandler) Run(c *gin.Context) {
	result, err := h.cmds.RunPass(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to process reminders", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDispatchResult(result))
}

type DebugHandler struct {
	q     queries.ReminderQueries
	cmds  commands.DispatchCommands
	clock clock.Clock
}

func NewDebugHandler(q queries.ReminderQueries, cmds commands.DispatchCommands, clk clock.Clock) *DebugHandler {
	return &DebugHandler{q: q, cmds: cmds, clock: clk}
}

// @Summary Recent reminders
// @Description List the most recent reminders with their trigger readiness
// @Tags debug
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 10, max 100)"
// @Success 200 {object} resdto.DebugResponse
// @Failure 500 {object} httperr.Response
// @Router /api/debug [get]
func (h *DebugHandler) List(c *gin.Context) {
	limit := queries.DefaultRecentLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = iv
		}
	}

	views, err := h.q.ListRecent(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reminders", nil)
		return
	}
	resp, err := resdto.FromReminderViews(h.clock.Now(), views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reminders", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Trigger a dispatch pass
// @Description Run one dispatch pass in-process and return its counts
// @Tags debug
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DebugDispatchResponse
// @Failure 500 {object} httperr.Response
// @Router /api/debug/dispatch [post]
func (h *DebugHandler) Dispatch(c *gin.Context) {
	result, err := h.cmds.RunPass(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to trigger dispatch", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.DebugDispatchResponse{
		Success:      true,
		CronResponse: resdto.FromDispatchResult(result),
	})
}
