package db

import (
	"context"
	"database/sql"
	"fmt"

	"egress/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Handle is the open database for the configured driver. Exactly one of Pool
// and SQLite is set.
type Handle struct {
	Driver string
	Pool   *pgxpool.Pool
	SQLite *sql.DB
}

// Open connects with cfg.Driver. The SQLite schema is brought up to date on
// open; PostgreSQL migrations run separately (egress migrate or serve --migrate).
func Open(ctx context.Context, cfg config.DBConfig) (*Handle, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, cleanup, err := Connect(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return &Handle{Driver: cfg.Driver, Pool: pool}, cleanup, nil
	case config.DriverSQLite:
		conn, cleanup, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := MigrateSQLite(conn); err != nil {
			cleanup()
			return nil, nil, err
		}
		return &Handle{Driver: cfg.Driver, SQLite: conn}, cleanup, nil
	default:
		return nil, nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}
