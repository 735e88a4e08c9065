package db

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"campaigns-api/db/migrations"
)

// ErrDirty is returned when a previous migration failed half-way and the
// schema needs manual repair.
var ErrDirty = errors.New("database is in dirty state")

// Migrate moves the schema at addr to version. A version of zero or less
// means migrations.Version. When down is set all migrations are reverted
// instead.
func Migrate(addr string, version int, down bool) error {
	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		return err
	}
	defer mg.Close()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	if dirty {
		return ErrDirty
	}

	if down {
		err = mg.Down()
	} else {
		if version <= 0 {
			version = migrations.Version
		}
		err = mg.Migrate(uint(version))
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
