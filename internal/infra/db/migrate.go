package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"egress/internal/pkg/config"
	"egress/migrations"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver for database/sql
)

// RunMigrations applies the embedded migrations for cfg.Driver. It is a no-op
// when the schema is already current.
func RunMigrations(ctx context.Context, cfg config.DBConfig) error {
	switch cfg.Driver {
	case config.DriverPostgres:
		conn, err := sql.Open("pgx", cfg.BuildDSN())
		if err != nil {
			return fmt.Errorf("cannot connect to db: %w", err)
		}
		defer conn.Close()
		return MigratePostgres(ctx, conn)
	case config.DriverSQLite:
		conn, cleanup, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return err
		}
		defer cleanup()
		return MigrateSQLite(conn)
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}

func MigratePostgres(ctx context.Context, conn *sql.DB) error {
	if err := conn.PingContext(ctx); err != nil {
		return fmt.Errorf("cannot connect to db: %w", err)
	}
	driver, err := migratepgx.WithInstance(conn, &migratepgx.Config{})
	if err != nil {
		return fmt.Errorf("cannot create driver: %w", err)
	}
	return up(migrations.Postgres, "postgres", "pgx5", driver)
}

func MigrateSQLite(conn *sql.DB) error {
	driver, err := migratesqlite.WithInstance(conn, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("cannot create driver: %w", err)
	}
	return up(migrations.SQLite, "sqlite", "sqlite", driver)
}

func up(fsys fs.FS, dir, driverName string, driver database.Driver) error {
	src, err := iofs.New(fsys, dir)
	if err != nil {
		return fmt.Errorf("cannot open migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driverName, driver)
	if err != nil {
		return fmt.Errorf("cannot create migrate: %w", err)
	}
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return fmt.Errorf("cannot migrate up: %w", err)
	}

	slog.Info("migrations applied", "driver", driverName)
	return nil
}
