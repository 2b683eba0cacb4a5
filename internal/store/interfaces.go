package store

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/Triva-Elevate/triva-datapublishagent/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DBTX is the subset of database/sql used by the repositories.
// Both *sql.DB and *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// CheckpointRepository persists the per-(dataset, client, project) sync
// versions. A missing row reads as version 0.
type CheckpointRepository interface {
	Get(ctx context.Context, key models.CheckpointKey) (uint64, error)
	Set(ctx context.Context, key models.CheckpointKey, version uint64) error
	ResetAll(ctx context.Context) error
}

// ApplyRepository writes one page of dataset items in one transaction.
// Deleted items are removed by natural key, the rest are upserted and their
// child collections replaced.
type ApplyRepository interface {
	ApplyClients(ctx context.Context, scope models.Scope, items []models.Client) error
	ApplyWorkers(ctx context.Context, scope models.Scope, items []models.Worker) error
	ApplyWorkerInvites(ctx context.Context, scope models.Scope, items []models.WorkerInvite) error
	ApplyProjects(ctx context.Context, scope models.Scope, items []models.Project) error
	ApplyStations(ctx context.Context, scope models.Scope, items []models.Station) error
	ApplyTeams(ctx context.Context, scope models.Scope, items []models.Team) error
	ApplyWorkersOnProject(ctx context.Context, scope models.Scope, items []models.WorkerOnProject) error
	ApplyWorkersOnTeam(ctx context.Context, scope models.Scope, items []models.WorkerOnTeam) error
	ApplyWorkerDetections(ctx context.Context, scope models.Scope, items []models.WorkerDetection) error
	ApplyWorkerLabor(ctx context.Context, scope models.Scope, items []models.WorkerLabor) error
	ApplyWeatherConditions(ctx context.Context, scope models.Scope, items []models.WeatherCondition) error
	ApplyWeatherAlerts(ctx context.Context, scope models.Scope, items []models.WeatherAlert) error

	ListClientIDs(ctx context.Context) ([]string, error)
	ListProjectIDs(ctx context.Context, clientID string) ([]string, error)
}

// SchemaRepository exposes the migration state of the store.
type SchemaRepository interface {
	// Versioned reports whether the migration version table exists.
	// It never writes.
	Versioned(ctx context.Context) (bool, error)
	// Version returns the highest applied migration version.
	Version(ctx context.Context) (int64, error)
	// Target returns the highest embedded migration version.
	Target() int64
	// ApplyNext applies the lowest pending migration in its own transaction.
	ApplyNext(ctx context.Context) (*goose.MigrationResult, error)
}
