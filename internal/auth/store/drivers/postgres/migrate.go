package postgres

import (
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/acadcopilot/copilot/internal/auth/store"
	"github.com/acadcopilot/copilot/internal/auth/store/drivers/postgres/migrations"
)

// ApplyMigrations brings the schema up to date from the embedded migrations.
// The migration driver needs database/sql, so it borrows a handle backed by
// the store's pool.
func (s *Store) ApplyMigrations() error {
	db := stdlib.OpenDBFromPool(s.pool)
	defer db.Close()

	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		return err
	}

	_, err = store.Migrate(migrations.Migrations, "pgx5", driver)
	return err
}
