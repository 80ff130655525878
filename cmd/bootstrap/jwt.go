package bootstrap

import (
	"egress/internal/handler/middleware"
	"egress/internal/pkg/config"
	"egress/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		func(s *jwt.Service) middleware.DispatchTokenValidator {
			return s
		},
	),
)

// NewJWTService signs dispatch tokens with CRON_SECRET. Without a secret the
// service rejects every token and the guard falls back to its other checks.
func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.Dispatch.CronSecret, cfg.Dispatch.TokenTTL)
}
