package postgres

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations aplica todas las migraciones pendientes sobre la base indicada.
// Si el esquema ya está al día no hace nada. databaseURL es el mismo DSN del pool.
func RunMigrations(databaseURL string) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("crear fuente de migraciones: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, pgxURL(databaseURL))
	if err != nil {
		return fmt.Errorf("crear migrador: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}
	return nil
}

// pgxURL ajusta el scheme al que espera el driver pgx/v5 de golang-migrate.
func pgxURL(databaseURL string) string {
	const prefix = "postgres://"
	if len(databaseURL) > len(prefix) && databaseURL[:len(prefix)] == prefix {
		return "pgx5://" + databaseURL[len(prefix):]
	}
	const altPrefix = "postgresql://"
	if len(databaseURL) > len(altPrefix) && databaseURL[:len(altPrefix)] == altPrefix {
		return "pgx5://" + databaseURL[len(altPrefix):]
	}
	return databaseURL
}
