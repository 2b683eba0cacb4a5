package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_DefaultsOnly verifies that the defaults layer alone is a valid
// configuration.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, DBTypePostgres, cfg.Storage.DBType)
	assert.Equal(t, "localhost", cfg.Storage.Host)
	assert.Equal(t, "triva", cfg.Storage.DBName)
	assert.Equal(t, 30*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

// TestBuild_EmptyBuilderFailsValidation verifies that a config without any
// layer is rejected.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	_, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDBType)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierLayerWins verifies that the first layer setting a field
// takes priority and later layers only fill the gaps.
func TestBuild_EarlierLayerWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{Host: "flag-host"}},
		&StructuredConfig{Storage: Storage{Host: "env-host", UserID: "env-user"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag-host", cfg.Storage.Host)
	assert.Equal(t, "env-user", cfg.Storage.UserID)
	assert.Equal(t, "triva", cfg.Storage.DBName)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("TRIVA_DPA_HOST", "db.internal")
	t.Setenv("TRIVA_DPA_REPEAT", "30")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "db.internal", b.configs[0].Storage.Host)
	assert.Equal(t, 30, b.configs[0].Sync.Repeat)
}

// TestWithEnv_SetsErrorOnBadValue verifies that a value that cannot be
// converted is reported.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("TRIVA_DPA_PORT", "not-a-port")

	b := newConfigBuilder()
	b.withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_NilIsSkipped verifies that a nil flag layer adds nothing.
func TestWithFlags_NilIsSkipped(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.DBName = "json-db"
	payload.Sync.ClientIDs = []string{"C1", "C2"}
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-db", b.configs[1].Storage.DBName)
	assert.Equal(t, []string{"C1", "C2"}, b.configs[1].Sync.ClientIDs)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesHighestPriorityPath verifies that the first layer naming
// a JSON file decides which file is read.
func TestWithJSON_UsesHighestPriorityPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.Storage.DBName = "first"
	second := StructuredJSONConfig{}
	second.Storage.DBName = "second"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "first", b.configs[2].Storage.DBName)
}

// ── Load ──────────────────────────────────────────────────────────────────────

// TestLoad_Precedence verifies flags > env > json > defaults.
func TestLoad_Precedence(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.Host = "json-host"
	payload.Storage.UserID = "json-user"
	payload.Storage.DBName = "json-db"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("TRIVA_DPA_HOST", "env-host")
	t.Setenv("TRIVA_DPA_USERID", "env-user")
	t.Setenv("TRIVA_DPA_CONFIG", path)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagCfg := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--host", "flag-host"}))

	cfg, err := Load(flagCfg)
	require.NoError(t, err)

	assert.Equal(t, "flag-host", cfg.Storage.Host)
	assert.Equal(t, "env-user", cfg.Storage.UserID)
	assert.Equal(t, "json-db", cfg.Storage.DBName)
	assert.Equal(t, DBTypePostgres, cfg.Storage.DBType)
}
