// Package migrations embeds the SQL schema of the agent, one directory per
// dialect, and builds goose providers over it.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// ErrNilDB is returned by NewProvider when no database handle is given.
var ErrNilDB = errors.New("migration error: db is nil")

// FS returns the migration files of dialect.
func FS(dialect goose.Dialect) (fs.FS, error) {
	var dir string
	switch dialect {
	case goose.DialectPostgres:
		dir = "postgres"
	case goose.DialectSQLite3:
		dir = "sqlite"
	default:
		return nil, fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	sub, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return nil, fmt.Errorf("migration error opening %s migrations: %w", dir, err)
	}
	return sub, nil
}

// NewProvider returns a goose provider applying the embedded migrations of
// dialect to db. Every SQL migration runs in its own transaction.
func NewProvider(dialect goose.Dialect, db *sql.DB) (*goose.Provider, error) {
	if db == nil {
		return nil, ErrNilDB
	}

	fsys, err := FS(dialect)
	if err != nil {
		return nil, err
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("migration error creating provider: %w", err)
	}

	return provider, nil
}
