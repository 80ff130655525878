package components

import (
	"fmt"

	"egress/internal/infra/db"
	"egress/internal/infra/repository"
	sqlc "egress/internal/infra/sqlc/generated"
	"egress/internal/infra/sqlitestore"
	"egress/internal/pkg/clock"
	"egress/internal/pkg/config"
	"egress/internal/usecase/queries"
	"egress/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewReminderStore,
		NewReminderReadStore,
	),
)

// NewReminderStore picks the backend for the open database handle. Both
// backends honour the same ReminderStore contract.
func NewReminderStore(h *db.Handle, clk clock.Clock) (shared.ReminderStore, error) {
	switch h.Driver {
	case config.DriverPostgres:
		return repository.NewReminderRepository(NewSQLQueries(h.Pool), NewDBTX(h.Pool)), nil
	case config.DriverSQLite:
		return sqlitestore.NewReminderStore(h.SQLite, clk), nil
	default:
		return nil, fmt.Errorf("no reminder store for driver %q", h.Driver)
	}
}

func NewReminderReadStore(store shared.ReminderStore) queries.ReminderReadStore {
	return store
}

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
