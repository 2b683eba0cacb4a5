// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Triva-Elevate Authors

package migrations

import (
	"context"
	"database/sql"
	"io/fs"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_NilDB(t *testing.T) {
	var db *sql.DB

	_, err := NewProvider(goose.DialectSQLite3, db)
	assert.ErrorIs(t, err, ErrNilDB)
}

func TestFS_UnsupportedDialect(t *testing.T) {
	_, err := FS(goose.DialectMySQL)
	assert.Error(t, err)
}

func TestFS_DialectsCarrySameSteps(t *testing.T) {
	pg, err := FS(goose.DialectPostgres)
	require.NoError(t, err)
	lite, err := FS(goose.DialectSQLite3)
	require.NoError(t, err)

	pgFiles, err := fs.Glob(pg, "*.sql")
	require.NoError(t, err)
	liteFiles, err := fs.Glob(lite, "*.sql")
	require.NoError(t, err)

	assert.Equal(t, []string{"00001_base.sql", "00002_project_members.sql", "00003_activity_weather.sql"}, pgFiles)
	assert.Equal(t, pgFiles, liteFiles)
}

func TestNewProvider_SQLiteUpByOne(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "triva.db"))
	require.NoError(t, err)
	defer db.Close()

	provider, err := NewProvider(goose.DialectSQLite3, db)
	require.NoError(t, err)
	require.Len(t, provider.ListSources(), 3)

	ctx := context.Background()
	for want := int64(1); want <= 3; want++ {
		res, err := provider.UpByOne(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, res.Source.Version)

		got, err := provider.GetDBVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err = provider.UpByOne(ctx)
	assert.ErrorIs(t, err, goose.ErrNoNextVersion)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name LIKE 'triva_%'`).Scan(&n))
	assert.Equal(t, 18, n)
}
