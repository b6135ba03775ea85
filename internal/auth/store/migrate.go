package store

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// ErrDirtySchema means a previous migration failed halfway and the schema
// needs manual repair before the service can start.
var ErrDirtySchema = errors.New("store: schema is dirty")

// Migrate applies every pending up migration in src through driver and
// returns the resulting schema version. Drivers call it from ApplyMigrations
// with their embedded migration files.
func Migrate(src fs.FS, databaseName string, driver database.Driver) (uint, error) {
	source, err := iofs.New(src, ".")
	if err != nil {
		return 0, fmt.Errorf("open migrations: %w", err)
	}

	instance, err := migrate.NewWithInstance("iofs", source, databaseName, driver)
	if err != nil {
		return 0, fmt.Errorf("init migrate: %w", err)
	}

	if err := instance.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, err := instance.Version()
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("%w at version %d", ErrDirtySchema, version)
	}
	return version, nil
}
