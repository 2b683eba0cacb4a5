// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Triva-Elevate Authors

package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/Triva-Elevate/triva-datapublishagent/internal/logger"
)

// Dataset table names.
const (
	clientsTable                       = "triva_clients"
	projectsTable                      = "triva_projects"
	projectLaborAttribsTable           = "triva_project_labor_attribs"
	projectBreakRulesTable             = "triva_project_break_rules"
	projectTimeLimitsTable             = "triva_project_time_limits"
	teamsTable                         = "triva_teams"
	workersTable                       = "triva_workers"
	workerInvitesTable                 = "triva_worker_invites"
	workersOnProjectTable              = "triva_workers_on_project"
	workersOnProjectAssignedTimesTable = "triva_workers_on_project_assigned_times"
	workersOnTeamTable                 = "triva_workers_on_team"
	workersOnTeamAssignedTimesTable    = "triva_workers_on_team_assigned_times"
	workerDetectionsTable              = "triva_worker_detections"
	workerLaborTable                   = "triva_worker_labor"
	stationsTable                      = "triva_stations"
	weatherConditionsTable             = "triva_weather_conditions"
	weatherAlertsTable                 = "triva_weather_alerts"
)

// applyRepository is the SQL implementation of [ApplyRepository]. Every
// ApplyX method writes one page inside one transaction.
type applyRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewApplyRepository constructs an [ApplyRepository] on db.
func NewApplyRepository(db *DB, logger *logger.Logger) ApplyRepository {
	logger.Debug().Msg("creating apply repository")
	return &applyRepository{
		db:     db,
		logger: logger,
	}
}

// applyPage runs fn in one transaction. Any failure rolls the whole page
// back and is returned as *ApplyError.
func (r *applyRepository) applyPage(ctx context.Context, dataset string, items int, fn func(ctx context.Context, w *writer) error) error {
	log := logger.FromContext(ctx)

	err := WithTx(ctx, r.db.DB, func(ctx context.Context, tx DBTX) error {
		return fn(ctx, &writer{tx: tx, b: r.db.Dialect().Builder()})
	})
	if err != nil {
		retryable := r.db.Retryable(err)
		log.Err(err).
			Str("dataset", dataset).
			Int("items", items).
			Bool("retryable", retryable).
			Msg("page apply rolled back")
		return &ApplyError{Dataset: dataset, Err: err, Retryable: retryable}
	}

	log.Debug().Str("dataset", dataset).Int("items", items).Msg("page applied")
	return nil
}

// ListClientIDs returns the IDs of every stored client.
func (r *applyRepository) ListClientIDs(ctx context.Context) ([]string, error) {
	return r.listIDs(ctx, r.db.Dialect().Builder().
		Select("clientid").
		From(clientsTable).
		OrderBy("clientid"))
}

// ListProjectIDs returns the IDs of every stored project of clientID.
func (r *applyRepository) ListProjectIDs(ctx context.Context, clientID string) ([]string, error) {
	return r.listIDs(ctx, r.db.Dialect().Builder().
		Select("projectid").
		From(projectsTable).
		Where("clientid = ?", clientID).
		OrderBy("projectid"))
}

func (r *applyRepository) listIDs(ctx context.Context, q sq.SelectBuilder) ([]string, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("query", query).Msg("error listing ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

// record is an ordered column/value list of one row.
type record struct {
	cols []string
	vals []any
}

func newRecord() *record {
	return &record{}
}

func (r *record) add(col string, val any) *record {
	r.cols = append(r.cols, col)
	r.vals = append(r.vals, val)
	return r
}

// writer issues statements inside one page transaction.
type writer struct {
	tx DBTX
	b  sq.StatementBuilderType
}

func (w *writer) exec(ctx context.Context, s sq.Sqlizer) error {
	query, args, err := s.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = w.tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// upsert inserts rec into table, updating the non-key columns when a row
// with the same key already exists.
func (w *writer) upsert(ctx context.Context, table string, key []string, rec *record) error {
	return w.exec(ctx, w.b.Insert(table).
		Columns(rec.cols...).
		Values(rec.vals...).
		Suffix(onConflict(key, rec.cols)))
}

// delete removes the rows of table matching every key column.
func (w *writer) delete(ctx context.Context, table string, key []string, vals ...any) error {
	return w.exec(ctx, w.b.Delete(table).Where(keyEq(key, vals...)))
}

func keyEq(key []string, vals ...any) sq.Sqlizer {
	conds := make([]string, len(key))
	for i, col := range key {
		conds[i] = col + " = ?"
	}
	return sq.Expr(strings.Join(conds, " AND "), vals...)
}

func onConflict(key, cols []string) string {
	isKey := make(map[string]bool, len(key))
	for _, k := range key {
		isKey[k] = true
	}

	sets := make([]string, 0, len(cols))
	for _, c := range cols {
		if !isKey[c] {
			sets = append(sets, c+" = EXCLUDED."+c)
		}
	}

	conflict := "ON CONFLICT (" + strings.Join(key, ", ") + ")"
	if len(sets) == 0 {
		return conflict + " DO NOTHING"
	}
	return conflict + " DO UPDATE SET " + strings.Join(sets, ", ")
}
