// Package migrations embeds and applies the database schema migrations:
// PostgreSQL for the server, SQLite for the client session store.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql
var postgresMigrations embed.FS

//go:embed sqlite/*.sql
var sqliteMigrations embed.FS

// goose keeps its base FS and dialect in package state
var gooseMu sync.Mutex

// Migrate applies the PostgreSQL migrations to db.
func Migrate(db *sql.DB) error {
	return migrate(db, postgresMigrations, "postgres", "pgx")
}

// MigrateSQLite applies the client SQLite migrations to db.
func MigrateSQLite(db *sql.DB) error {
	return migrate(db, sqliteMigrations, "sqlite", "sqlite3")
}

func migrate(db *sql.DB, migrations embed.FS, dir, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	sub, err := fs.Sub(migrations, dir)
	if err != nil {
		return fmt.Errorf("migration error opening %s migrations: %w", dir, err)
	}
	goose.SetBaseFS(sub)
	defer goose.SetBaseFS(nil)

	if err = goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err = goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
