package postgres_test

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/acadcopilot/copilot/internal/auth/store"
	"github.com/acadcopilot/copilot/internal/auth/store/drivers/postgres"
	"github.com/acadcopilot/copilot/internal/auth/store/storetest"
	"github.com/acadcopilot/copilot/pkg/idx"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// baseDSN is set by TestMain when a postgres container is running.
var baseDSN string

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() || os.Getenv("SKIP_POSTGRES_TESTS") != "" {
		os.Exit(m.Run())
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "copilot",
			"POSTGRES_PASSWORD": "copilot",
			"POSTGRES_DB":       "copilot",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		// No docker available, the postgres tests skip themselves.
		fmt.Fprintf(os.Stderr, "postgres container unavailable: %v\n", err)
		os.Exit(m.Run())
	}

	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	baseDSN = fmt.Sprintf("postgres://copilot:copilot@%s:%s/copilot?sslmode=disable", host, port.Port())

	code := m.Run()

	_ = container.Terminate(ctx)
	os.Exit(code)
}

// newStore gives each caller its own schema so suites never see each
// other's rows.
func newStore(t *testing.T) store.Store {
	t.Helper()
	if baseDSN == "" {
		t.Skip("postgres container not available")
	}
	ctx := context.Background()

	schema := "test_" + strings.ToLower(idx.New().String())

	conn, err := pgx.Connect(ctx, baseDSN)
	require.NoError(t, err)
	_, err = conn.Exec(ctx, "CREATE SCHEMA "+schema)
	require.NoError(t, err)
	require.NoError(t, conn.Close(ctx))

	cfg, err := pgxpool.ParseConfig(baseDSN)
	require.NoError(t, err)
	cfg.ConnConfig.RuntimeParams["search_path"] = schema

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	require.NoError(t, err)

	s := postgres.NewStoreFromPool(pool)
	t.Cleanup(func() {
		_ = s.Close()
		if conn, err := pgx.Connect(context.Background(), baseDSN); err == nil {
			_, _ = conn.Exec(context.Background(), "DROP SCHEMA "+schema+" CASCADE")
			_ = conn.Close(context.Background())
		}
	})

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestStoreConformance(t *testing.T) {
	storetest.Run(t, newStore)
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}
