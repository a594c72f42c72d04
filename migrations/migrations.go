// Package migrations embeds the SQL schema and applies it with
// golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var files embed.FS

// Result reports the schema version before and after Up.
type Result struct {
	PreMigrationVersion  uint
	PostMigrationVersion uint
}

// Up applies every pending migration to db.
func Up(db *sql.DB) (Result, error) {
	var result Result

	source, err := iofs.New(files, ".")
	if err != nil {
		return result, fmt.Errorf("iofs.New: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return result, fmt.Errorf("postgres.WithInstance: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return result, fmt.Errorf("migrate.NewWithInstance: %w", err)
	}

	result.PreMigrationVersion, _, err = m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return result, fmt.Errorf("m.Version.preMigrationVersion: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return result, fmt.Errorf("m.Up: %w", err)
	}

	result.PostMigrationVersion, _, err = m.Version()
	if err != nil {
		return result, fmt.Errorf("m.Version.postMigrationVersion: %w", err)
	}

	return result, nil
}
