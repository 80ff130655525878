//go:build e2e

package e2e

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"egress/cmd/bootstrap"
	"egress/internal/infra/db"
	"egress/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgPort     = "5432/tcp"
	pgUser     = "egress"
	pgPassword = "egress"
	pgDatabase = "egress_e2e"
)

var (
	postgresOnce      sync.Once
	postgresContainer testcontainers.Container
	postgresErr       error
)

// postgresDBConfig starts one PostgreSQL container per test binary and
// returns a config pointing at it. Ryuk removes the container afterwards.
func postgresDBConfig(t *testing.T) config.DBConfig {
	t.Helper()

	postgresOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		postgresContainer, postgresErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{pgPort},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       pgDatabase,
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
				Cmd:   []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off"},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					cfg := config.DBConfig{Host: host, Port: port.Port(), User: pgUser, Password: pgPassword, DBName: pgDatabase, SSLMode: "disable", TimeZone: "UTC"}
					return cfg.BuildDSN()
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "egress-e2e-tests"},
			},
			Started: true,
		})
	})
	require.NoError(t, postgresErr, "failed to start postgres container")

	ctx := context.Background()
	host, err := postgresContainer.Host(ctx)
	require.NoError(t, err)
	port, err := postgresContainer.MappedPort(ctx, pgPort)
	require.NoError(t, err)

	return config.DBConfig{
		Driver:   config.DriverPostgres,
		Host:     host,
		Port:     port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   pgDatabase,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 8,
	}
}

// startApp wires the application the way `egress serve` does, minus the
// listener, against dbCfg.
func startApp(t *testing.T, dbCfg config.DBConfig) (*gin.Engine, config.Config) {
	t.Helper()

	cfg := config.NewTestConfig()
	cfg.Server.Env = config.EnvProduction
	cfg.DB = dbCfg

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg),
		bootstrap.CoreModule,
		bootstrap.ServerModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		fx.Invoke(bootstrap.MigrateOnStart),
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("failed to stop fx application", "error", err)
		}
	})
	return router, cfg
}

// SharedSuite gives each e2e suite a running application and a direct pool
// for arranging and inspecting rows.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	dbCfg := postgresDBConfig(t)
	s.Router, s.Config = startApp(t, dbCfg)

	pool, cleanup, err := db.Connect(context.Background(), dbCfg)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(cleanup)
	s.DB = pool
}

func (s *SharedSuite) SetupTest() {
	_, err := s.DB.Exec(s.T().Context(), "TRUNCATE reminders")
	require.NoError(s.T(), err, "failed to reset reminders")
}
