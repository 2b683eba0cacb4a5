// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Triva-Elevate Authors

package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Triva-Elevate/triva-datapublishagent/internal/config"
	"github.com/Triva-Elevate/triva-datapublishagent/internal/logger"
	"github.com/Triva-Elevate/triva-datapublishagent/internal/service"
	"github.com/Triva-Elevate/triva-datapublishagent/internal/store"
	"github.com/Triva-Elevate/triva-datapublishagent/models"
)

// itemsFields maps every DataPublish resource to its page items field.
var itemsFields = map[string]string{
	"Clients":           "clientUpdates",
	"Workers":           "workerUpdates",
	"WorkerInvites":     "workerInviteUpdates",
	"Projects":          "projectUpdates",
	"Stations":          "stationUpdates",
	"Teams":             "teamUpdates",
	"WorkersOnProject":  "workerOnProjectUpdates",
	"WorkersOnTeam":     "workerOnTeamUpdates",
	"WorkerDetections":  "workerDetectionUpdates",
	"WorkerLabor":       "workerLaborUpdates",
	"WeatherConditions": "weatherConditionsUpdates",
	"WeatherAlerts":     "weatherAlertsUpdates",
}

// fakeAPI is an in-process TRIVA gateway serving one client with one
// project. Every dataset reports final version 1.
type fakeAPI struct {
	mu     sync.Mutex
	logins int
	// since records the sinceVersion of every delta request by path.
	since map[string]string
}

func (f *fakeAPI) routes(t *testing.T) http.Handler {
	r := chi.NewRouter()

	r.Post("/mobile-methods/login/Login", func(w http.ResponseWriter, req *http.Request) {
		var body models.LoginRequest
		assert.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, models.LoginRequest{UserID: "acct", Password: "pw"}, body)

		f.mu.Lock()
		f.logins++
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"IDToken":"id-1","RefreshToken":"refresh-1"}`))
	})

	r.Get("/DataPublish/*", func(w http.ResponseWriter, req *http.Request) {
		if req.Header.Get("Authorization") != "id-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		segs := strings.Split(chi.URLParam(req, "*"), "/")
		resource := segs[0]
		field, ok := itemsFields[resource]
		if !ok || len(segs) < 3 {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		f.mu.Lock()
		f.since[strings.Join(segs[:len(segs)-2], "/")] = segs[len(segs)-1]
		f.mu.Unlock()

		items := "[]"
		switch resource {
		case "Clients":
			items = `[{"clientID":"C1","clientName":"Acme","timezone":"America/Chicago","version":1}]`
		case "Projects":
			items = `[{"clientID":"C1","projectID":"P1","projectName":"Tower","version":1}]`
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{%q:%s,"moreUpdates":false,"finalVersion":1}`, field, items)
	})

	return r
}

func newSQLiteAgentConfig(t *testing.T, apiURL string) *config.StructuredConfig {
	t.Helper()
	return &config.StructuredConfig{
		Storage: config.Storage{
			DBType: config.DBTypeSQLite,
			DBName: filepath.Join(t.TempDir(), "agent.db"),
		},
		Remote: config.Remote{
			AccountID:      "acct",
			Password:       "pw",
			APIURL:         apiURL,
			RequestTimeout: 5 * time.Second,
		},
	}
}

func countRows(t *testing.T, cfg *config.StructuredConfig, table string) int {
	t.Helper()
	db, err := store.Connect(context.Background(), cfg.Storage, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func openApp(t *testing.T, cfg *config.StructuredConfig) *App {
	t.Helper()
	app, err := Open(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestAgent_SQLite_FullLifecycle(t *testing.T) {
	api := &fakeAPI{since: map[string]string{}}
	srv := httptest.NewServer(api.routes(t))
	defer srv.Close()

	cfg := newSQLiteAgentConfig(t, srv.URL)
	ctx := context.Background()

	app := openApp(t, cfg)

	// an unmigrated store refuses to sync
	require.ErrorIs(t, app.Update(ctx), service.ErrSchemaMismatch)
	require.ErrorIs(t, app.SchemaCheck(ctx), service.ErrSchemaMismatch)

	require.NoError(t, app.SchemaUpdate(ctx))
	require.NoError(t, app.SchemaCheck(ctx))

	require.NoError(t, app.Update(ctx))
	assert.Equal(t, 1, api.logins)
	assert.Equal(t, "0", api.since["Clients"])
	assert.Equal(t, "0", api.since["Workers/C1"])
	assert.Equal(t, "0", api.since["Projects/C1"])
	assert.Equal(t, "0", api.since["WeatherAlerts/C1/P1"])
	assert.Len(t, api.since, len(itemsFields))

	// second run resumes from the stored checkpoints
	require.NoError(t, app.Update(ctx))
	assert.Equal(t, 2, api.logins)
	for path, since := range api.since {
		assert.Equal(t, "1", since, path)
	}

	require.NoError(t, app.Close())
	assert.Equal(t, 1, countRows(t, cfg, "triva_clients"))
	assert.Equal(t, 1, countRows(t, cfg, "triva_projects"))
	assert.Equal(t, len(itemsFields), countRows(t, cfg, "triva_versionsync"))

	app = openApp(t, cfg)
	require.NoError(t, app.SyncReset(ctx))
	require.NoError(t, app.Close())
	assert.Equal(t, 0, countRows(t, cfg, "triva_versionsync"))
	assert.Equal(t, 1, countRows(t, cfg, "triva_clients"), "reset keeps synced data")
}

func TestAgent_SQLite_ClientFilter(t *testing.T) {
	api := &fakeAPI{since: map[string]string{}}
	srv := httptest.NewServer(api.routes(t))
	defer srv.Close()

	cfg := newSQLiteAgentConfig(t, srv.URL)
	cfg.Sync.ClientIDs = []string{"C9"}
	ctx := context.Background()

	app := openApp(t, cfg)
	require.NoError(t, app.SchemaUpdate(ctx))
	require.NoError(t, app.Update(ctx))

	assert.Equal(t, map[string]string{"Clients": "0"}, api.since)
}

func TestOpen_InvalidDBType(t *testing.T) {
	cfg := newSQLiteAgentConfig(t, "http://localhost")
	cfg.Storage.DBType = "oracle"

	_, err := Open(context.Background(), cfg, logger.Nop())
	assert.ErrorIs(t, err, config.ErrInvalidDBType)
}
