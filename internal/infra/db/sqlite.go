package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const sqliteBusyTimeoutMs = 2000

// OpenSQLite opens path in WAL mode. Writers take the lock up front
// (_txlock=immediate) and a single connection serializes statements.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, func(), error) {
	qs := url.Values{
		"_txlock": []string{"immediate"},
		"_pragma": []string{
			"journal_mode(WAL)",
			fmt.Sprintf("busy_timeout(%d)", sqliteBusyTimeoutMs),
			"foreign_keys(1)",
		},
	}

	conn, err := sql.Open("sqlite", "file:"+path+"?"+qs.Encode())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	cleanup := func() {
		_ = conn.Close()
	}
	return conn, cleanup, nil
}
