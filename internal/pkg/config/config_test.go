//go:build unit

package config_test

import (
	"testing"
	"time"

	"egress/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "sqlite")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "egress.db", cfg.DB.SQLitePath)
		assert.Equal(t, "X-Vercel-Cron", cfg.Dispatch.TrustedHeader)
		assert.Equal(t, "GitHub Actions", cfg.Dispatch.TrustedUserAgent)
		assert.Equal(t, 1, cfg.Dispatch.Concurrency)
		assert.Equal(t, 15*time.Minute, cfg.Dispatch.TokenTTL)
		assert.Equal(t, "*/10 * * * *", cfg.Scheduler.Spec)
		assert.Equal(t, []string{"GET", "POST", "OPTIONS"}, cfg.CORS.AllowMethods)
		assert.Equal(t, config.NewTestConfig().CORS, cfg.CORS)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "postgres")
		t.Setenv("DB_USER", "egress")
		t.Setenv("DB_NAME", "egress")
		t.Setenv("APP_ENV", "production")
		t.Setenv("DISPATCH_CONCURRENCY", "4")
		t.Setenv("MAIL_SEND_TIMEOUT", "3s")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.True(t, cfg.Server.IsProduction())
		assert.Equal(t, 4, cfg.Dispatch.Concurrency)
		assert.Equal(t, 3*time.Second, cfg.Mail.SendTimeout)
		assert.Contains(t, cfg.DB.BuildDSN(), "/egress?sslmode=")
	})

	t.Run("postgres requires credentials", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "postgres")
		t.Setenv("DB_USER", "")
		t.Setenv("DB_NAME", "")

		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "DB_USER and DB_NAME are required")
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mysql")

		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "unsupported DB_DRIVER")
	})
}

func TestDBConfigValidate(t *testing.T) {
	cfg := config.NewTestConfig()
	require.NoError(t, cfg.DB.Validate())

	cfg.DB = config.DBConfig{Driver: config.DriverSQLite}
	assert.Error(t, cfg.DB.Validate())
}
