package handler

import (
	"net/http"

	"egress/internal/handler/api"
	"egress/internal/handler/middleware"
	"egress/internal/handler/pages"
	"egress/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Reminder *api.ReminderHandler
	Cancel   *api.CancelHandler
	Redirect *api.RedirectHandler
	Dispatch *api.DispatchHandler
	Debug    *api.DebugHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, guard *middleware.DispatchGuard) error {
	tmpl, err := pages.Templates()
	if err != nil {
		return err
	}
	engine.SetHTMLTemplate(tmpl)

	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, guard)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger.GetSlogLogger()))
	engine.Use(middleware.NewCORSMiddleware(cfg, logger.GetSlogLogger()))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, guard *middleware.DispatchGuard) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/reminders", Handler: h.Reminder.Create},
			{Method: http.MethodPost, Path: "/arm-egress", Handler: h.Reminder.Create},
			{Method: http.MethodGet, Path: "/cancel/:hash", Handler: h.Cancel.Cancel},
			{Method: http.MethodGet, Path: "/redirect", Handler: h.Redirect.Redirect},
		})

		requireDispatch := guard.RequireDispatchAuth()
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/cron", Handler: h.Dispatch.Run, Mw: []gin.HandlerFunc{requireDispatch}},
			{Method: http.MethodPost, Path: "/cron", Handler: h.Dispatch.Run, Mw: []gin.HandlerFunc{requireDispatch}},
		})

		debug := apiGroup.Group("/debug")
		debug.Use(requireDispatch)
		{
			addRoutes(debug, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Debug.List},
				{Method: http.MethodPost, Path: "/dispatch", Handler: h.Debug.Dispatch},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
