package app

import (
	"context"
	"fmt"
	"time"

	"github.com/acadcopilot/copilot/internal/auth/store"
	"github.com/acadcopilot/copilot/internal/auth/store/drivers/postgres"
	"github.com/acadcopilot/copilot/internal/auth/store/drivers/sqlite"
)

const dbConnectTimeout = 10 * time.Second

// openStore connects the configured driver and brings the schema up to date.
func openStore(ctx context.Context, cfg Config) (store.Store, error) {
	var (
		db  store.Store
		err error
	)
	switch cfg.DatabaseDriver {
	case DriverPostgres:
		ctx, cancel := context.WithTimeout(ctx, dbConnectTimeout)
		defer cancel()
		db, err = postgres.NewStore(ctx, cfg.DatabaseURL)
	default:
		db, err = sqlite.NewStore(sqlite.FileDSN(cfg.DatabaseFile))
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.DatabaseDriver, err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply %s migrations: %w", cfg.DatabaseDriver, err)
	}
	return db, nil
}
