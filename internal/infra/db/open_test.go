//go:build unit

package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"egress/internal/infra/db"
	"egress/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("sqlite is migrated on open", func(t *testing.T) {
		cfg := config.DBConfig{Driver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "egress.db")}

		h, cleanup, err := db.Open(ctx, cfg)
		require.NoError(t, err)
		defer cleanup()

		assert.Nil(t, h.Pool)
		require.NotNil(t, h.SQLite)

		var n int
		require.NoError(t, h.SQLite.QueryRowContext(ctx, `SELECT COUNT(*) FROM reminders`).Scan(&n))
		assert.Zero(t, n)
	})

	t.Run("reopening an existing file is a no-op migration", func(t *testing.T) {
		cfg := config.DBConfig{Driver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "egress.db")}

		_, cleanup, err := db.Open(ctx, cfg)
		require.NoError(t, err)
		cleanup()

		_, cleanup, err = db.Open(ctx, cfg)
		require.NoError(t, err)
		cleanup()
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, _, err := db.Open(ctx, config.DBConfig{Driver: "mysql"})
		assert.ErrorContains(t, err, "unsupported DB_DRIVER")
	})
}
