package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Triva-Elevate/triva-datapublishagent/internal/logger"
	"github.com/Triva-Elevate/triva-datapublishagent/internal/mock"
	"github.com/Triva-Elevate/triva-datapublishagent/models"
)

func newTestSchemaGate(t *testing.T) (*SchemaGate, *mock.MockSchemaRepository) {
	t.Helper()
	repo := mock.NewMockSchemaRepository(gomock.NewController(t))
	return NewSchemaGate(repo, logger.Nop()), repo
}

func stepResult(version int64) *goose.MigrationResult {
	return &goose.MigrationResult{
		Source:   &goose.Source{Type: goose.TypeSQL, Path: fmt.Sprintf("%05d_step.sql", version), Version: version},
		Duration: 5 * time.Millisecond,
	}
}

func TestSchemaGate_Check(t *testing.T) {
	tests := []struct {
		name      string
		versioned bool
		version   int64
		want      models.SchemaStatus
		wantErr   error
	}{
		{name: "unversioned", want: models.SchemaStatus{Target: 3}},
		{name: "behind", versioned: true, version: 1, want: models.SchemaStatus{Versioned: true, Version: 1, Target: 3}},
		{name: "current", versioned: true, version: 3, want: models.SchemaStatus{Versioned: true, Version: 3, Target: 3}},
		{name: "newer than driver", versioned: true, version: 4, want: models.SchemaStatus{Versioned: true, Version: 4, Target: 3}, wantErr: ErrDriverDownlevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate, repo := newTestSchemaGate(t)
			ctx := context.Background()

			repo.EXPECT().Target().Return(int64(3))
			repo.EXPECT().Versioned(ctx).Return(tt.versioned, nil)
			if tt.versioned {
				repo.EXPECT().Version(ctx).Return(tt.version, nil)
			}

			st, err := gate.Check(ctx)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, st)
		})
	}
}

func TestSchemaGate_Check_VersionedError(t *testing.T) {
	gate, repo := newTestSchemaGate(t)
	ctx := context.Background()
	boom := errors.New("boom")

	repo.EXPECT().Target().Return(int64(3))
	repo.EXPECT().Versioned(ctx).Return(false, boom)

	_, err := gate.Check(ctx)
	assert.ErrorIs(t, err, boom)
}

func TestSchemaGate_Require(t *testing.T) {
	tests := []struct {
		name      string
		versioned bool
		version   int64
		wantErr   error
	}{
		{name: "current"},
		{name: "unversioned", wantErr: ErrSchemaMismatch},
		{name: "behind", versioned: true, version: 2, wantErr: ErrSchemaMismatch},
		{name: "newer", versioned: true, version: 5, wantErr: ErrDriverDownlevel},
	}
	tests[0].versioned, tests[0].version = true, 3

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate, repo := newTestSchemaGate(t)
			ctx := context.Background()

			repo.EXPECT().Target().Return(int64(3))
			repo.EXPECT().Versioned(ctx).Return(tt.versioned, nil)
			if tt.versioned {
				repo.EXPECT().Version(ctx).Return(tt.version, nil)
			}

			err := gate.Require(ctx)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSchemaGate_Update_FromEmpty(t *testing.T) {
	gate, repo := newTestSchemaGate(t)
	ctx := context.Background()

	repo.EXPECT().Target().Return(int64(3))
	repo.EXPECT().Versioned(ctx).Return(false, nil)
	gomock.InOrder(
		repo.EXPECT().ApplyNext(ctx).Return(stepResult(1), nil),
		repo.EXPECT().Version(ctx).Return(int64(1), nil),
		repo.EXPECT().ApplyNext(ctx).Return(stepResult(2), nil),
		repo.EXPECT().Version(ctx).Return(int64(2), nil),
		repo.EXPECT().ApplyNext(ctx).Return(stepResult(3), nil),
		repo.EXPECT().Version(ctx).Return(int64(3), nil),
	)

	st, err := gate.Update(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SchemaStatus{Versioned: true, Version: 3, Target: 3}, st)
	assert.True(t, st.Current())
}

func TestSchemaGate_Update_AlreadyCurrent(t *testing.T) {
	gate, repo := newTestSchemaGate(t)
	ctx := context.Background()

	repo.EXPECT().Target().Return(int64(3))
	repo.EXPECT().Versioned(ctx).Return(true, nil)
	repo.EXPECT().Version(ctx).Return(int64(3), nil)
	repo.EXPECT().ApplyNext(gomock.Any()).Times(0)

	st, err := gate.Update(ctx)
	require.NoError(t, err)
	assert.True(t, st.Current())
}

func TestSchemaGate_Update_Downlevel(t *testing.T) {
	gate, repo := newTestSchemaGate(t)
	ctx := context.Background()

	repo.EXPECT().Target().Return(int64(3))
	repo.EXPECT().Versioned(ctx).Return(true, nil)
	repo.EXPECT().Version(ctx).Return(int64(7), nil)
	repo.EXPECT().ApplyNext(gomock.Any()).Times(0)

	_, err := gate.Update(ctx)
	assert.ErrorIs(t, err, ErrDriverDownlevel)
}

func TestSchemaGate_Update_StepDidNotAdvanceByOne(t *testing.T) {
	gate, repo := newTestSchemaGate(t)
	ctx := context.Background()

	repo.EXPECT().Target().Return(int64(3))
	repo.EXPECT().Versioned(ctx).Return(true, nil)
	gomock.InOrder(
		repo.EXPECT().Version(ctx).Return(int64(1), nil),
		repo.EXPECT().ApplyNext(ctx).Return(stepResult(3), nil),
		repo.EXPECT().Version(ctx).Return(int64(3), nil),
	)

	st, err := gate.Update(ctx)
	require.ErrorIs(t, err, ErrSchemaMismatch)
	assert.Equal(t, int64(1), st.Version)
}

func TestSchemaGate_Update_StepFails(t *testing.T) {
	gate, repo := newTestSchemaGate(t)
	ctx := context.Background()
	boom := errors.New("syntax error at or near")

	repo.EXPECT().Target().Return(int64(3))
	repo.EXPECT().Versioned(ctx).Return(true, nil)
	gomock.InOrder(
		repo.EXPECT().Version(ctx).Return(int64(2), nil),
		repo.EXPECT().ApplyNext(ctx).Return(nil, boom),
	)

	st, err := gate.Update(ctx)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "schema step 3")
	assert.Equal(t, int64(2), st.Version)
}

func TestSchemaStatus_String(t *testing.T) {
	assert.Equal(t, "unversioned", models.SchemaStatus{Target: 3}.String())
	assert.Equal(t, "at version 2", models.SchemaStatus{Versioned: true, Version: 2, Target: 3}.String())
}
