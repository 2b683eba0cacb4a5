package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Triva-Elevate/triva-datapublishagent/internal/config"
	"github.com/Triva-Elevate/triva-datapublishagent/internal/logger"
	"github.com/Triva-Elevate/triva-datapublishagent/internal/utils"
	"github.com/Triva-Elevate/triva-datapublishagent/models"
)

// Orchestrator is the [CycleRunner] walking every dataset of every scope.
type Orchestrator struct {
	engine   *SyncEngine
	datasets *Datasets

	clientIDs  allowList
	projectIDs allowList
	enabled    allowList

	newRunID func() string
	logger   *logger.Logger
}

// NewOrchestrator constructs an Orchestrator honouring the scope and
// dataset filters of cfg. The clients and projects datasets always run
// because they discover the scopes.
func NewOrchestrator(engine *SyncEngine, datasets *Datasets, cfg config.Sync, log *logger.Logger) (*Orchestrator, error) {
	known := newAllowList(datasets.IDs())
	for _, id := range cfg.Datasets {
		if id != "" && !known.allows(id) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDataset, id)
		}
	}

	enabled := newAllowList(cfg.Datasets)
	if !enabled.empty() {
		enabled.add(datasets.Clients.ID(), datasets.Projects.ID())
	}

	return &Orchestrator{
		engine:     engine,
		datasets:   datasets,
		clientIDs:  newAllowList(cfg.ClientIDs),
		projectIDs: newAllowList(cfg.ProjectIDs),
		enabled:    enabled,
		newRunID:   utils.NewRunID,
		logger:     log,
	}, nil
}

// RunCycle implements [CycleRunner]. Datasets run one after another and the
// first failure ends the cycle.
func (o *Orchestrator) RunCycle(ctx context.Context) error {
	log := o.logger.Child("run_id", o.newRunID())
	ctx = log.WithContext(ctx)

	start := time.Now()
	log.Info().Msg("sync cycle started")

	res, err := o.sync(ctx, o.datasets.Clients, models.Scope{})
	if err != nil {
		return err
	}

	clients := o.clientIDs.filter(res.IDs)
	for _, clientID := range clients {
		if err = o.syncClient(ctx, clientID); err != nil {
			return err
		}
	}

	log.Info().
		Int("clients", len(clients)).
		Dur("elapsed", time.Since(start)).
		Msg("sync cycle complete")
	return nil
}

func (o *Orchestrator) syncClient(ctx context.Context, clientID string) error {
	scope := models.Scope{ClientID: clientID}
	for _, ds := range o.datasets.ClientScoped {
		if _, err := o.sync(ctx, ds, scope); err != nil {
			return err
		}
	}

	res, err := o.sync(ctx, o.datasets.Projects, scope)
	if err != nil {
		return err
	}

	for _, projectID := range o.projectIDs.filter(res.IDs) {
		scope := models.Scope{ClientID: clientID, ProjectID: projectID}
		for _, ds := range o.datasets.ProjectScoped {
			if _, err = o.sync(ctx, ds, scope); err != nil {
				return err
			}
		}
	}
	return nil
}

func (o *Orchestrator) sync(ctx context.Context, ds Dataset, scope models.Scope) (SyncResult, error) {
	if !o.enabled.empty() && !o.enabled.allows(ds.ID()) {
		logger.FromContext(ctx).Debug().
			Str("dataset", ds.ID()).
			Str("client_id", scope.ClientID).
			Str("project_id", scope.ProjectID).
			Msg("dataset disabled, skipped")
		return SyncResult{DatasetID: ds.ID(), Scope: scope, Skipped: true}, nil
	}

	res, err := ds.Sync(ctx, o.engine, scope)
	if err != nil {
		return res, fmt.Errorf("sync %s (client %q, project %q): %w", ds.ID(), scope.ClientID, scope.ProjectID, err)
	}
	return res, nil
}

// allowList is a set of IDs; an empty list allows everything in filter.
type allowList map[string]struct{}

func newAllowList(ids []string) allowList {
	l := make(allowList, len(ids))
	l.add(ids...)
	return l
}

func (l allowList) add(ids ...string) {
	for _, id := range ids {
		if id != "" {
			l[id] = struct{}{}
		}
	}
}

func (l allowList) empty() bool {
	return len(l) == 0
}

func (l allowList) allows(id string) bool {
	_, ok := l[id]
	return ok
}

// filter keeps the ids present in l, or all of them when l is empty.
func (l allowList) filter(ids []string) []string {
	if l.empty() {
		return ids
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if l.allows(id) {
			out = append(out, id)
		}
	}
	return out
}
