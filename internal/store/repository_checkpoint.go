// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Triva-Elevate Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/Triva-Elevate/triva-datapublishagent/internal/logger"
	"github.com/Triva-Elevate/triva-datapublishagent/models"
)

const versionSyncTable = "triva_versionsync"

// checkpointRepository is the SQL implementation of [CheckpointRepository]
// over the triva_versionsync table.
type checkpointRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCheckpointRepository constructs a [CheckpointRepository] on db.
func NewCheckpointRepository(db *DB, logger *logger.Logger) CheckpointRepository {
	logger.Debug().Msg("creating checkpoint repository")
	return &checkpointRepository{
		db:     db,
		logger: logger,
	}
}

// Get returns the stored version for key, or 0 when no row exists.
func (r *checkpointRepository) Get(ctx context.Context, key models.CheckpointKey) (uint64, error) {
	query, args, err := r.db.Dialect().Builder().
		Select("version").
		From(versionSyncTable).
		Where("dataset = ? AND clientid = ? AND projectid = ?", key.DatasetID, key.ClientID, key.ProjectID).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var version int64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("dataset", key.DatasetID).
			Msg("error reading sync version")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if version < 0 {
		return 0, nil
	}
	return uint64(version), nil
}

// Set stores version for key. Version 0 removes the row so that absence
// keeps meaning "never synced".
func (r *checkpointRepository) Set(ctx context.Context, key models.CheckpointKey, version uint64) error {
	if version > math.MaxInt64 {
		return fmt.Errorf("%w: %d", ErrVersionOutOfRange, version)
	}

	b := r.db.Dialect().Builder()

	var (
		query string
		args  []any
		err   error
	)
	if version == 0 {
		query, args, err = b.Delete(versionSyncTable).
			Where("dataset = ? AND clientid = ? AND projectid = ?", key.DatasetID, key.ClientID, key.ProjectID).
			ToSql()
	} else {
		query, args, err = b.Insert(versionSyncTable).
			Columns("dataset", "clientid", "projectid", "version").
			Values(key.DatasetID, key.ClientID, key.ProjectID, int64(version)).
			Suffix("ON CONFLICT (dataset, clientid, projectid) DO UPDATE SET version = EXCLUDED.version").
			ToSql()
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("dataset", key.DatasetID).
			Uint64("version", version).
			Msg("error writing sync version")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ResetAll deletes every stored version.
func (r *checkpointRepository) ResetAll(ctx context.Context) error {
	query, args, err := r.db.Dialect().Builder().Delete(versionSyncTable).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error resetting sync versions")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if n, err := res.RowsAffected(); err == nil {
		logger.FromContext(ctx).Info().Int64("rows", n).Msg("sync versions reset")
	}
	return nil
}
