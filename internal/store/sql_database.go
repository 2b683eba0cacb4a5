package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Triva-Elevate/triva-datapublishagent/internal/config"
	"github.com/Triva-Elevate/triva-datapublishagent/internal/logger"
)

// DB wraps the shared *sql.DB pool together with the dialect it speaks and
// the driver-specific error classifier.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an already opened pool. It is used by the connect functions
// and by tests that hand in a sqlmock connection.
func NewDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            dialect,
		errorClassificator: dialect.classifier(),
		logger:             log,
	}
}

// Connect opens the backend selected by cfg.DBType.
func Connect(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	switch cfg.DBType {
	case config.DBTypePostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DBTypeSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidDBType, cfg.DBType)
	}
}

// Dialect returns the SQL dialect of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Retryable reports whether err is a transient driver failure.
func (db *DB) Retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
