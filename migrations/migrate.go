// Package migrations embeds the goose schema migrations of the record store
// (PostgreSQL) and of the client cache (SQLite).
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Dialect selects the migration set and the goose dialect.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// ErrNilDB is returned when Migrate is called without a connection.
var ErrNilDB = errors.New("migration error: db is nil")

func (d Dialect) gooseDialect() (string, error) {
	switch d {
	case Postgres:
		return "pgx", nil
	case SQLite:
		return "sqlite3", nil
	}
	return "", fmt.Errorf("migration error: unknown dialect %q", d)
}

// Migrate applies every pending migration of the dialect's set.
func Migrate(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return ErrNilDB
	}

	gooseDialect, err := dialect.gooseDialect()
	if err != nil {
		return err
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, string(dialect)); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
