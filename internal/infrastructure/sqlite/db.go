// Package sqlite guarda el documento completo en una sola fila de SQLite.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/jhoicas/fiyatvizyon-api/internal/infrastructure/migrations"
)

// Open abre la base, fija pragmas recomendados, valida la conexión y migra.
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if _, err := db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA busy_timeout = 5000;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set sqlite pragmas: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	if err := migrations.Up(db, migrations.DialectSQLite); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
