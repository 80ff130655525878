package middleware

import (
	"log/slog"

	"egress/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware lets the browser form on APP_URL call the creation
// endpoint. Link-driven endpoints are plain navigations and unaffected.
// With no origins configured only APP_URL is allowed.
func NewCORSMiddleware(cfg config.Config, logger *slog.Logger) gin.HandlerFunc {
	origins := cfg.CORS.AllowOrigins
	if len(origins) == 0 {
		origins = []string{cfg.Server.AppURL}
	}

	corsCfg := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     cfg.CORS.AllowMethods,
		AllowHeaders:     cfg.CORS.AllowHeaders,
		ExposeHeaders:    cfg.CORS.ExposeHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}
	logger.Info("CORS middleware initialized", "allow_origins", origins)
	return cors.New(corsCfg)
}
