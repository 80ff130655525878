//go:build unit

package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"egress/internal/handler/middleware"
	"egress/internal/pkg/config"
	"egress/internal/pkg/jwt"
	"egress/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardRouter(t *testing.T, env string) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	cfg.Server.Env = env
	tokens := jwt.NewService(cfg.Dispatch.CronSecret, time.Minute)
	guard := middleware.NewDispatchGuard(cfg, tokens, slog.New(slog.NewTextHandler(io.Discard, nil)))

	r := gin.New()
	r.GET("/api/cron", guard.RequireDispatchAuth(), func(c *gin.Context) {
		caller, _ := middleware.GetDispatchCaller(c)
		c.JSON(http.StatusOK, gin.H{"caller": caller})
	})
	return r, tokens
}

func TestDispatchGuard_Production(t *testing.T) {
	router, tokens := newGuardRouter(t, config.EnvProduction)

	signed, err := tokens.GenerateDispatchToken("k8s-cronjob")
	require.NoError(t, err)
	foreign, err := jwt.NewService("another-secret", time.Minute).GenerateDispatchToken("attacker")
	require.NoError(t, err)

	cases := []struct {
		name       string
		headers    map[string]string
		wantStatus int
		wantCaller string
	}{
		{"trusted header", map[string]string{"X-Vercel-Cron": "1"}, http.StatusOK, middleware.CallerTrustedHeader},
		{"trusted user agent", map[string]string{"User-Agent": "curl via GitHub Actions runner"}, http.StatusOK, middleware.CallerTrustedUserAgent},
		{"shared secret", map[string]string{"Authorization": "Bearer test-cron-secret"}, http.StatusOK, middleware.CallerSharedSecret},
		{"signed token", map[string]string{"Authorization": "Bearer " + signed}, http.StatusOK, middleware.CallerToken},
		{"wrong secret", map[string]string{"Authorization": "Bearer nope"}, http.StatusUnauthorized, ""},
		{"token signed with another key", map[string]string{"Authorization": "Bearer " + foreign}, http.StatusUnauthorized, ""},
		{"basic auth scheme", map[string]string{"Authorization": "Basic test-cron-secret"}, http.StatusUnauthorized, ""},
		{"no credentials", map[string]string{}, http.StatusUnauthorized, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/api/cron", nil, tc.headers)
			if tc.wantStatus != http.StatusOK {
				httptest.AssertErrorResponse(t, rec, tc.wantStatus, "Unauthorized")
				return
			}
			var body map[string]string
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
			assert.Equal(t, tc.wantCaller, body["caller"])
		})
	}
}

func TestDispatchGuard_DevelopmentLetsUnauthorizedThrough(t *testing.T) {
	router, _ := newGuardRouter(t, config.EnvDevelopment)

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/cron", nil, "")
	var body map[string]string
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
	assert.Equal(t, middleware.CallerUnverified, body["caller"])
}

func TestDispatchGuard_EmptySecretNeverMatches(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	cfg.Server.Env = config.EnvProduction
	cfg.Dispatch.CronSecret = ""
	guard := middleware.NewDispatchGuard(cfg, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	r := gin.New()
	r.GET("/api/cron", guard.RequireDispatchAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/api/cron", nil, map[string]string{"Authorization": "Bearer "})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
