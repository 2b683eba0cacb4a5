package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Triva-Elevate/triva-datapublishagent/internal/config"
	"github.com/Triva-Elevate/triva-datapublishagent/internal/logger"
)

// NewConnectSQLite opens the SQLite database file named by cfg, creating it
// if needed. The pool is limited to one connection: SQLite allows a single
// writer and every page transaction holds the connection anyway.
func NewConnectSQLite(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	dsn := cfg.ConnectionString()

	// db will be in file
	if err := createLocalDBFileIfNotExists(dsn); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("file", dsn).Msg("connected to database successfully")

	return NewDB(conn, SQLite, log), nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	// URI and in-memory names are left to the driver
	if strings.HasPrefix(dbFile, "file:") || strings.HasPrefix(dbFile, ":memory:") {
		return nil
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
