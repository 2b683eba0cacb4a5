// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Triva-Elevate Authors

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Triva-Elevate/triva-datapublishagent/internal/adapter"
	"github.com/Triva-Elevate/triva-datapublishagent/internal/logger"
	"github.com/Triva-Elevate/triva-datapublishagent/internal/store"
	"github.com/Triva-Elevate/triva-datapublishagent/models"
)

// ScopeLevel tells which IDs a dataset's resource path carries.
type ScopeLevel int

const (
	// ScopeGlobal datasets are fetched once per cycle.
	ScopeGlobal ScopeLevel = iota
	// ScopeClient datasets are fetched once per client.
	ScopeClient
	// ScopeProject datasets are fetched once per client project.
	ScopeProject
)

func (l ScopeLevel) String() string {
	switch l {
	case ScopeClient:
		return "client"
	case ScopeProject:
		return "project"
	default:
		return "global"
	}
}

// SyncResult summarises one dataset cycle for one scope.
type SyncResult struct {
	DatasetID   string
	Scope       models.Scope
	Pages       int
	Items       int
	FromVersion uint64
	ToVersion   uint64
	// Advanced is true when the stored checkpoint moved forward.
	Advanced bool
	// IDs holds the identifiers returned by the dataset's AfterSync hook.
	IDs []string
	// Skipped is true when the dataset has no Apply function.
	Skipped bool
}

// Dataset is the type-erased view of a [Descriptor] used by the
// orchestrator.
type Dataset interface {
	ID() string
	Level() ScopeLevel
	Sync(ctx context.Context, engine *SyncEngine, scope models.Scope) (SyncResult, error)
}

// Descriptor declares one dataset of the DataPublish API.
type Descriptor[T any] struct {
	// DatasetID is the checkpoint key of the dataset, e.g. "workers".
	DatasetID string
	// Resource is the first path segment, e.g. "Workers".
	Resource string
	// ItemsField names the array of items in a page body.
	ItemsField string
	PageLimit  int
	Scope      ScopeLevel

	// Apply writes one page. A nil Apply skips the dataset.
	Apply func(ctx context.Context, scope models.Scope, items []T) error
	// AfterSync, when set, runs after a completed cycle and returns the
	// identifiers of the child scopes to visit next.
	AfterSync func(ctx context.Context, scope models.Scope) ([]string, error)
}

// ID implements [Dataset].
func (d *Descriptor[T]) ID() string {
	return d.DatasetID
}

// Level implements [Dataset].
func (d *Descriptor[T]) Level() ScopeLevel {
	return d.Scope
}

// Sync implements [Dataset].
func (d *Descriptor[T]) Sync(ctx context.Context, engine *SyncEngine, scope models.Scope) (SyncResult, error) {
	if d.Apply == nil {
		logger.FromContext(ctx).Debug().Str("dataset", d.DatasetID).Msg("dataset has no apply, skipped")
		return SyncResult{DatasetID: d.DatasetID, Scope: scope, Skipped: true}, nil
	}
	return syncDataset(ctx, engine, d, scope)
}

// ResourcePath returns the resource with the scope IDs of the dataset's
// level appended. Segments are escaped by the adapter.
func (d *Descriptor[T]) ResourcePath(scope models.Scope) string {
	segs := []string{d.Resource}
	switch d.Scope {
	case ScopeClient:
		segs = append(segs, scope.ClientID)
	case ScopeProject:
		segs = append(segs, scope.ClientID, scope.ProjectID)
	}
	return strings.Join(segs, "/")
}

// SyncEngine runs the delta protocol of every dataset against the remote
// source and the checkpoint store.
type SyncEngine struct {
	deltas      adapter.DeltaAdapter
	checkpoints store.CheckpointRepository
}

// NewSyncEngine constructs a SyncEngine.
func NewSyncEngine(deltas adapter.DeltaAdapter, checkpoints store.CheckpointRepository) *SyncEngine {
	return &SyncEngine{deltas: deltas, checkpoints: checkpoints}
}

// syncDataset pulls every page of d's delta since the stored checkpoint,
// applying each page before asking for the next one. The checkpoint is
// written once, after the last page, and only when that page reported a
// final version.
func syncDataset[T any](ctx context.Context, e *SyncEngine, d *Descriptor[T], scope models.Scope) (SyncResult, error) {
	log := logger.FromContext(ctx)
	res := SyncResult{DatasetID: d.DatasetID, Scope: scope}
	key := scope.Key(d.DatasetID)

	current, err := e.checkpoints.Get(ctx, key)
	if err != nil {
		return res, err
	}
	res.FromVersion, res.ToVersion = current, current

	resource := d.ResourcePath(scope)
	var final *uint64
	for offset := 0; ; offset += d.PageLimit {
		if err = ctx.Err(); err != nil {
			return res, err
		}

		body, err := e.deltas.FetchPage(ctx, resource, current, offset, d.PageLimit)
		if err != nil {
			return res, err
		}

		page, err := models.DecodeDeltaPage[T](body, d.ItemsField)
		if err != nil {
			return res, fmt.Errorf("%w: %s at offset %d: %w", ErrProtocol, resource, offset, err)
		}
		res.Pages++

		if len(page.Items) > 0 {
			if err = d.Apply(ctx, scope, page.Items); err != nil {
				return res, err
			}
			res.Items += len(page.Items)
		}

		if !page.MoreUpdates {
			final = page.FinalVersion
			break
		}
	}

	switch {
	case final == nil:
		log.Debug().Str("dataset", d.DatasetID).Msg("no final version reported, checkpoint kept")
	case *final < current:
		log.Warn().
			Str("dataset", d.DatasetID).
			Uint64("current", current).
			Uint64("final", *final).
			Msg("final version is below checkpoint, not written")
	default:
		if err = e.checkpoints.Set(ctx, key, *final); err != nil {
			return res, err
		}
		res.ToVersion = *final
		res.Advanced = *final > current
	}

	if d.AfterSync != nil {
		if res.IDs, err = d.AfterSync(ctx, scope); err != nil {
			return res, err
		}
	}

	log.Info().
		Str("dataset", res.DatasetID).
		Str("client_id", scope.ClientID).
		Str("project_id", scope.ProjectID).
		Int("pages", res.Pages).
		Int("items", res.Items).
		Uint64("from_version", res.FromVersion).
		Uint64("to_version", res.ToVersion).
		Bool("advanced", res.Advanced).
		Int("ids", len(res.IDs)).
		Msg("dataset synced")

	return res, nil
}
