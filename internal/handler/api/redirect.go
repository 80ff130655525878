package api

import (
	"net/http"
	"strings"

	"egress/internal/handler/pages"
	"egress/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type RedirectHandler struct {
	resolver shared.ServiceURLResolver
}

func NewRedirectHandler(resolver shared.ServiceURLResolver) *RedirectHandler {
	return &RedirectHandler{resolver: resolver}
}

// @Summary Redirect to a service's cancellation page
// @Description Known services redirect to their cancellation page; unknown ones get search instructions
// @Tags redirect
// @Produce html
// @Param service query string true "Service name"
// @Success 200 {string} string "HTML help page"
// @Success 302 "Redirect to the cancellation page"
// @Failure 400 {string} string "HTML page"
// @Router /api/redirect [get]
func (h *RedirectHandler) Redirect(c *gin.Context) {
	service := strings.TrimSpace(c.Query("service"))
	if service == "" {
		c.HTML(http.StatusBadRequest, pages.MessagePage, pages.MissingService)
		return
	}

	if target, ok := h.resolver.Resolve(service); ok {
		c.Redirect(http.StatusFound, target)
		return
	}
	c.HTML(http.StatusOK, pages.RedirectHelpPage, pages.NewRedirectHelp(service))
}
