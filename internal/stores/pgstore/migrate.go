package pgstore

import (
	"errors"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"

	"github.com/domino14/cardvault/db"
)

// Migrate brings the database at dbURI up to the latest schema.
func Migrate(dbURI string) error {
	src, err := iofs.New(db.PostgresMigrations, "migrations/postgres")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, migrateURI(dbURI))
	if err != nil {
		return err
	}
	defer func() {
		e1, e2 := m.Close()
		if e1 != nil || e2 != nil {
			log.Err(errors.Join(e1, e2)).Msg("close-migrator")
		}
	}()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	v, dirty, err := m.Version()
	if err == nil {
		log.Info().Uint("version", v).Bool("dirty", dirty).Msg("migrated-postgres")
	}
	return nil
}

// The pgx/v5 migrate driver registers itself under its own scheme.
func migrateURI(dbURI string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dbURI, prefix) {
			return "pgx5://" + strings.TrimPrefix(dbURI, prefix)
		}
	}
	return dbURI
}
