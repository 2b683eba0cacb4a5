package service

import (
	"fmt"

	"github.com/Triva-Elevate/triva-datapublishagent/internal/adapter"
	"github.com/Triva-Elevate/triva-datapublishagent/internal/config"
	"github.com/Triva-Elevate/triva-datapublishagent/internal/logger"
	"github.com/Triva-Elevate/triva-datapublishagent/internal/store"
)

// Services aggregates the services used by the agent commands.
type Services struct {
	Auth   Authenticator
	Schema SchemaService
	Cycle  CycleRunner
}

// NewServices wires the remote adapters, the token manager, the dataset
// registry and the schema gate on top of storages.
func NewServices(storages *store.Storages, remote config.Remote, syncCfg config.Sync, log *logger.Logger) (*Services, error) {
	authAdapter, err := adapter.NewHTTPAuthAdapter(remote.LoginURL(), remote.RequestTimeout, log)
	if err != nil {
		return nil, fmt.Errorf("error creating auth adapter: %w", err)
	}
	tokens := NewTokenManager(authAdapter, log)

	deltaAdapter, err := adapter.NewHTTPDeltaAdapter(remote.DataPublishURL(), remote.AuthScheme, remote.RequestTimeout, tokens, log)
	if err != nil {
		return nil, fmt.Errorf("error creating delta adapter: %w", err)
	}

	engine := NewSyncEngine(deltaAdapter, storages.Checkpoints)
	orchestrator, err := NewOrchestrator(engine, NewDatasets(storages.Apply), syncCfg, log)
	if err != nil {
		return nil, err
	}

	return &Services{
		Auth:   tokens,
		Schema: NewSchemaGate(storages.Schema, log),
		Cycle:  orchestrator,
	}, nil
}
