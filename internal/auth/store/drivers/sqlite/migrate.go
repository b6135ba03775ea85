package sqlite

import (
	"github.com/golang-migrate/migrate/v4/database/sqlite"

	"github.com/acadcopilot/copilot/internal/auth/store"
	"github.com/acadcopilot/copilot/internal/auth/store/drivers/sqlite/migrations"
)

// ApplyMigrations brings the schema up to date from the migrations embedded
// in the binary. Running it on a current schema is a no-op.
func (s *Store) ApplyMigrations() error {
	driver, err := sqlite.WithInstance(s.db, &sqlite.Config{})
	if err != nil {
		return err
	}

	_, err = store.Migrate(migrations.Migrations, "sqlite", driver)
	return err
}
