package sqlitestore

import (
	"database/sql"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/domino14/cardvault/db"
)

// migrateUp runs the embedded migrations on an open database. The migrator
// is not closed since that would close conn as well.
func migrateUp(conn *sql.DB) error {
	src, err := iofs.New(db.SQLiteMigrations, "migrations/sqlite")
	if err != nil {
		return err
	}
	driver, err := sqlite3.WithInstance(conn, &sqlite3.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
