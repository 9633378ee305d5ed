// Package migrations aplica las migraciones SQL embebidas con goose.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var migrationsFS embed.FS

const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
)

// Up ejecuta las migraciones pendientes del dialecto (sqlite3 o postgres).
func Up(db *sql.DB, dialect string) error {
	dir, err := dirFor(dialect)
	if err != nil {
		return err
	}
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("run goose up migrations: %w", err)
	}
	return nil
}

func dirFor(dialect string) (string, error) {
	switch dialect {
	case DialectSQLite:
		return "sqlite", nil
	case DialectPostgres:
		return "postgres", nil
	default:
		return "", fmt.Errorf("dialecto de migración no soportado: %q", dialect)
	}
}
