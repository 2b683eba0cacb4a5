package store

import (
	"context"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/Triva-Elevate/triva-datapublishagent/internal/logger"
	"github.com/Triva-Elevate/triva-datapublishagent/migrations"
)

// gooseVersionTable is the bookkeeping table created by the first migration.
const gooseVersionTable = "goose_db_version"

// schemaRepository is the goose backed implementation of [SchemaRepository].
type schemaRepository struct {
	db       *DB
	provider *goose.Provider
	target   int64
	logger   *logger.Logger
}

// NewSchemaRepository builds a goose provider over the embedded migrations
// of db's dialect. The target version is the highest embedded step.
func NewSchemaRepository(db *DB, logger *logger.Logger) (SchemaRepository, error) {
	provider, err := migrations.NewProvider(db.Dialect().Goose, db.DB)
	if err != nil {
		logger.Err(err).Msg("error loading migrations")
		return nil, err
	}

	var target int64
	for _, src := range provider.ListSources() {
		if src.Version > target {
			target = src.Version
		}
	}

	logger.Debug().Int64("target", target).Msg("creating schema repository")
	return &schemaRepository{
		db:       db,
		provider: provider,
		target:   target,
		logger:   logger,
	}, nil
}

// Versioned reports whether the goose version table exists. It only reads.
func (r *schemaRepository) Versioned(ctx context.Context) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, r.db.Dialect().tableExistsQuery, gooseVersionTable).Scan(&exists); err != nil {
		logger.FromContext(ctx).Err(err).Msg("error looking up schema version table")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return exists, nil
}

// Version returns the current schema version. It fails with
// ErrNoSchemaVersion when the store is not versioned yet.
func (r *schemaRepository) Version(ctx context.Context) (int64, error) {
	versioned, err := r.Versioned(ctx)
	if err != nil {
		return 0, err
	}
	if !versioned {
		return 0, ErrNoSchemaVersion
	}

	version, err := r.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return version, nil
}

// Target returns the highest embedded migration version.
func (r *schemaRepository) Target() int64 {
	return r.target
}

// ApplyNext applies the next pending migration in its own transaction.
// It returns goose.ErrNoNextVersion when nothing is pending.
func (r *schemaRepository) ApplyNext(ctx context.Context) (*goose.MigrationResult, error) {
	return r.provider.UpByOne(ctx)
}
