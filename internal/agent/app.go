package agent

import (
	"context"
	"fmt"

	"github.com/Triva-Elevate/triva-datapublishagent/internal/config"
	"github.com/Triva-Elevate/triva-datapublishagent/internal/logger"
	"github.com/Triva-Elevate/triva-datapublishagent/internal/service"
	"github.com/Triva-Elevate/triva-datapublishagent/internal/store"
	"github.com/Triva-Elevate/triva-datapublishagent/internal/workers"
)

// App runs the agent commands against one store.
type App struct {
	services    *service.Services
	checkpoints store.CheckpointRepository

	remote config.Remote
	repeat int

	closeFn func() error
	logger  *logger.Logger
}

var _ Commands = (*App)(nil)

// NewApp constructs an App from already wired services.
func NewApp(services *service.Services, checkpoints store.CheckpointRepository, cfg *config.StructuredConfig, log *logger.Logger) *App {
	return &App{
		services:    services,
		checkpoints: checkpoints,
		remote:      cfg.Remote,
		repeat:      cfg.Sync.Repeat,
		closeFn:     func() error { return nil },
		logger:      log,
	}
}

// Open connects to the store selected by cfg and wires every service on it.
// The returned App owns the connection; call Close when done.
func Open(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	db, err := store.Connect(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	storages, err := store.NewStorages(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	services, err := service.NewServices(storages, cfg.Remote, cfg.Sync, log)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	app := NewApp(services, storages.Checkpoints, cfg, log)
	app.closeFn = db.Close
	return app, nil
}

// Close releases the store connection.
func (a *App) Close() error {
	return a.closeFn()
}

// SchemaUpdate implements [Commands].
func (a *App) SchemaUpdate(ctx context.Context) error {
	a.logger.Info().Msg("database schema update requested")

	st, err := a.services.Schema.Update(ctx)
	if err != nil {
		return err
	}

	a.logger.Info().Int64("version", st.Version).Msg("database schema update completed")
	return nil
}

// SchemaCheck implements [Commands].
func (a *App) SchemaCheck(ctx context.Context) error {
	a.logger.Info().Msg("database schema check requested")

	if err := a.services.Schema.Require(ctx); err != nil {
		return err
	}

	a.logger.Info().Msg("database schema is current")
	return nil
}

// SyncReset implements [Commands]. A store not at the agent's schema
// version is left untouched.
func (a *App) SyncReset(ctx context.Context) error {
	a.logger.Info().Msg("sync reset requested")

	if err := a.services.Schema.Require(ctx); err != nil {
		return fmt.Errorf("cannot reset sync: %w", err)
	}
	if err := a.checkpoints.ResetAll(ctx); err != nil {
		return err
	}

	a.logger.Info().Msg("sync checkpoints reset")
	return nil
}

// Update implements [Commands]. The schema is checked and the account
// logged in before the first cycle; the session is dropped on return.
func (a *App) Update(ctx context.Context) error {
	a.logger.Info().Msg("database update requested")

	if err := a.services.Schema.Require(ctx); err != nil {
		return fmt.Errorf("cannot update: %w", err)
	}
	if err := a.remote.ValidateCredentials(); err != nil {
		return fmt.Errorf("cannot update: %w", err)
	}

	if err := a.services.Auth.Login(ctx, a.remote.AccountID, a.remote.Password); err != nil {
		return err
	}
	defer a.services.Auth.Logout()
	a.logger.Info().Msgf("logged in to TRIVA using %s account", a.remote.AccountID)

	if err := workers.NewRepeater(a.services.Cycle, a.repeat, a.logger).Run(ctx); err != nil {
		return err
	}

	a.logger.Info().Msg("update completed")
	return nil
}
