package service

import (
	"context"
	"fmt"

	"github.com/Triva-Elevate/triva-datapublishagent/internal/logger"
	"github.com/Triva-Elevate/triva-datapublishagent/internal/store"
	"github.com/Triva-Elevate/triva-datapublishagent/models"
)

// SchemaGate is the [SchemaService] deciding whether sync may run on the
// store and migrating it forward.
type SchemaGate struct {
	repo   store.SchemaRepository
	logger *logger.Logger
}

// NewSchemaGate constructs a SchemaGate over repo.
func NewSchemaGate(repo store.SchemaRepository, log *logger.Logger) *SchemaGate {
	return &SchemaGate{repo: repo, logger: log}
}

// Check implements [SchemaService]. It only reads. A store newer than the
// agent fails with ErrDriverDownlevel.
func (g *SchemaGate) Check(ctx context.Context) (models.SchemaStatus, error) {
	st := models.SchemaStatus{Target: g.repo.Target()}

	versioned, err := g.repo.Versioned(ctx)
	if err != nil {
		return st, err
	}
	if versioned {
		if st.Version, err = g.repo.Version(ctx); err != nil {
			return st, err
		}
		st.Versioned = true
	}

	g.logger.Info().
		Str("state", st.String()).
		Msgf("in database = %d, in driver = %d", st.Version, st.Target)

	if st.Version > st.Target {
		return st, fmt.Errorf("%w: in database = %d, in driver = %d", ErrDriverDownlevel, st.Version, st.Target)
	}
	return st, nil
}

// Require implements [SchemaService]. Anything but the target version,
// including an unversioned store, is ErrSchemaMismatch.
func (g *SchemaGate) Require(ctx context.Context) error {
	st, err := g.Check(ctx)
	if err != nil {
		return err
	}
	if !st.Current() {
		return fmt.Errorf("%w: database is %s, driver needs version %d; run schemaupdate", ErrSchemaMismatch, st, st.Target)
	}
	return nil
}

// Update implements [SchemaService]. Pending migrations are applied one at
// a time, each in its own transaction, and the stored version must move by
// exactly one per step.
func (g *SchemaGate) Update(ctx context.Context) (models.SchemaStatus, error) {
	st, err := g.Check(ctx)
	if err != nil {
		return st, err
	}

	for st.Version < st.Target {
		next := st.Version + 1

		res, err := g.repo.ApplyNext(ctx)
		if err != nil {
			g.logger.Err(err).Int64("version", next).Msg("schema step failed")
			return st, fmt.Errorf("schema step %d: %w", next, err)
		}

		version, err := g.repo.Version(ctx)
		if err != nil {
			return st, err
		}
		if version != next {
			return st, fmt.Errorf("%w: schema step %d left database at version %d", ErrSchemaMismatch, next, version)
		}
		st.Versioned, st.Version = true, version

		ev := g.logger.Info().Int64("version", version)
		if res != nil {
			if res.Source != nil {
				ev = ev.Str("source", res.Source.Path)
			}
			ev = ev.Dur("duration", res.Duration)
		}
		ev.Msg("schema step applied")
	}

	g.logger.Info().Int64("version", st.Version).Msg("schema is current")
	return st, nil
}
